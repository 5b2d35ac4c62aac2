package handler

import (
	"net/http"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// ValidateAccess answers every failure, including an unreadable body, with
// the same 404.
func (h *Handler) ValidateAccess(c *ginext.Context) {
	var req dto.ValidateAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrAccessDenied)
		return
	}

	grant, err := h.accessService.Validate(c.Request.Context(), req.EventCode, req.TerminalCode)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToValidateAccessResponse(grant))
}

func (h *Handler) RecordScan(c *ginext.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	scan, err := h.scanService.Record(c.Request.Context(), domain.ScanInput{
		EventCode:    req.EventCode,
		TerminalCode: req.TerminalCode,
		GuestCode:    req.GuestCode,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToScanResponse(scan))
}

func (h *Handler) GetHistory(c *ginext.Context) {
	logs, err := h.scanService.History(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HistoryEntryResponse, 0, len(logs))
	for i := range logs {
		resp = append(resp, dto.ToHistoryEntryResponse(&logs[i]))
	}

	c.JSON(http.StatusOK, resp)
}
