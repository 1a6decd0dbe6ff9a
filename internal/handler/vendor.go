package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/filter"
	"github.com/apper-canvas/eventflow-ether-cell/internal/handler/dto"
)

func (h *Handler) CreateVendor(c *ginext.Context) {
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateVendorInput{
		Name:            req.Name,
		Company:         req.Company,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialty:       req.Specialty,
		Location:        req.Location,
		Description:     req.Description,
		Website:         req.Website,
		PriceRange:      domain.PriceRange(req.PriceRange),
		Availability:    domain.Availability(req.Availability),
		PortfolioImages: req.PortfolioImages,
	}

	vendor, err := h.vendorService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

func (h *Handler) GetVendor(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vendor id"})
		return
	}

	vendor, err := h.vendorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

func (h *Handler) ListVendors(c *ginext.Context) {
	f := filter.VendorFilter{
		Search:       c.Query("search"),
		Specialty:    c.Query("specialty"),
		Availability: domain.Availability(c.Query("availability")),
		PriceRange:   domain.PriceRange(c.Query("price_range")),
	}

	if min := c.Query("min_rating"); min != "" {
		v, err := strconv.ParseFloat(min, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_rating"})
			return
		}
		f.MinRating = v
	}

	vendors, err := h.vendorService.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		resp = append(resp, dto.ToVendorResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateVendor(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vendor id"})
		return
	}

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateVendorInput{
		ID:              id,
		Name:            req.Name,
		Company:         req.Company,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialty:       req.Specialty,
		Location:        req.Location,
		Description:     req.Description,
		Website:         req.Website,
		PriceRange:      domain.PriceRange(req.PriceRange),
		Availability:    domain.Availability(req.Availability),
		PortfolioImages: req.PortfolioImages,
	}

	vendor, err := h.vendorService.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

func (h *Handler) DeleteVendor(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vendor id"})
		return
	}

	if err := h.vendorService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) RateVendor(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vendor id"})
		return
	}

	var req dto.RateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	vendor, err := h.vendorService.Rate(c.Request.Context(), id, req.Rating)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

func (h *Handler) SetVendorAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vendor id"})
		return
	}

	var req dto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	vendor, err := h.vendorService.SetAvailability(c.Request.Context(), id, domain.Availability(req.Availability))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}
