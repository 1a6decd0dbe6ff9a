package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/handler/dto"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Venue:       req.Venue,
		Status:      domain.EventStatus(req.Status),
		Budget:      req.Budget,
		GuestCount:  req.GuestCount,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context(), c.Query("search"))
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

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.UpdateEventInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Venue:       req.Venue,
		Status:      domain.EventStatus(req.Status),
		Budget:      req.Budget,
		GuestCount:  req.GuestCount,
	}

	event, err := h.eventService.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Calendar returns the month's events and due payments bucketed by day.
// Defaults to the current month.
func (h *Handler) Calendar(c *ginext.Context) {
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if y := c.Query("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid year"})
			return
		}
		year = v
	}
	if m := c.Query("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid month"})
			return
		}
		month = time.Month(v)
	}

	days, err := h.eventService.Calendar(c.Request.Context(), year, month)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CalendarDayResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, dto.ToCalendarDayResponse(d, now))
	}

	c.JSON(http.StatusOK, resp)
}
