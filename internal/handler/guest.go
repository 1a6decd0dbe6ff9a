package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/filter"
	"github.com/apper-canvas/eventflow-ether-cell/internal/handler/dto"
)

func (h *Handler) CreateGuest(c *ginext.Context) {
	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateGuestInput{
		EventID: req.EventID,
		Name:    req.Name,
		Email:   req.Email,
	}

	guest, err := h.guestService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGuestResponse(guest))
}

func (h *Handler) ListGuests(c *ginext.Context) {
	f := filter.GuestFilter{
		Search:  c.Query("search"),
		Status:  domain.RSVPStatus(c.Query("status")),
		EventID: c.Query("event"),
	}

	guests, err := h.guestService.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GuestResponse, 0, len(guests))
	for _, g := range guests {
		resp = append(resp, dto.ToGuestResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateGuest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guest id"})
		return
	}

	var req dto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateGuestInput{
		ID:      id,
		EventID: req.EventID,
		Name:    req.Name,
		Email:   req.Email,
	}

	guest, err := h.guestService.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}

func (h *Handler) DeleteGuest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guest id"})
		return
	}

	if err := h.guestService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) SetGuestRSVP(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guest id"})
		return
	}

	var req dto.SetRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	guest, err := h.guestService.SetRSVP(c.Request.Context(), id, domain.RSVPStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}
