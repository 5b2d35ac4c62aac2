package handler

import (
	"net/http"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateTerminal(c *ginext.Context) {
	var req dto.CreateTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	terminal, err := h.terminalService.Create(c.Request.Context(), c.Param("code"), req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTerminalResponse(terminal))
}

func (h *Handler) ListTerminals(c *ginext.Context) {
	terminals, err := h.terminalService.ListByEvent(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TerminalResponse, 0, len(terminals))
	for _, t := range terminals {
		resp = append(resp, dto.ToTerminalResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateTerminal(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	terminal, err := h.terminalService.Update(c.Request.Context(), id, domain.TerminalPatch{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTerminalResponse(terminal))
}

func (h *Handler) ArchiveTerminal(c *ginext.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.terminalService.Archive(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "terminal archived"})
}
