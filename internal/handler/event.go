package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stpnv0/EventGate/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid startsAt format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		EventCode:   req.EventCode,
		Name:        req.Name,
		Description: req.Description,
		Venue:       req.Venue,
		StartsAt:    startsAt,
	}
	if req.EndsAt != nil {
		endsAt, err := time.Parse(time.RFC3339, *req.EndsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid endsAt format, expected RFC3339",
			})
			return
		}
		input.EndsAt = &endsAt
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEventByCode(c *ginext.Context) {
	agg, err := h.eventService.GetAggregate(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventAggregateResponse(agg))
}

// Tables

func (h *Handler) CreateTable(c *ginext.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	table, err := h.tableService.Create(c.Request.Context(), c.Param("code"), domain.CreateTableInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTableResponse(table))
}

func (h *Handler) ListTables(c *ginext.Context) {
	tables, err := h.tableService.ListByEvent(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		resp = append(resp, dto.ToTableResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Invitations and staff

func (h *Handler) CreateInvitation(c *ginext.Context) {
	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateInvitationInput{
		GuestName:   req.GuestName,
		GuestCount:  req.GuestCount,
		Allocations: make([]domain.AllocationInput, 0, len(req.Allocations)),
	}
	for _, a := range req.Allocations {
		input.Allocations = append(input.Allocations, domain.AllocationInput{
			TableID:    a.TableID,
			GuestName:  a.GuestName,
			SeatNumber: a.SeatNumber,
		})
	}

	inv, err := h.invitationService.Create(c.Request.Context(), c.Param("code"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvitationResponse(inv))
}

func (h *Handler) CreateAssignment(c *ginext.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	a, err := h.assignmentService.Assign(c.Request.Context(), c.Param("code"), req.UserID, domain.Role(req.Role))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(a))
}
