package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/handler/dto"
)

func (h *Handler) CreateBudgetItem(c *ginext.Context) {
	var req dto.CreateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBudgetItemInput{
		EventID:         req.EventID,
		Name:            req.Name,
		Category:        req.Category,
		AllocatedAmount: req.AllocatedAmount,
		SpentAmount:     req.SpentAmount,
	}

	item, err := h.budgetService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBudgetItemResponse(item))
}

func (h *Handler) ListBudgetItems(c *ginext.Context) {
	items, err := h.budgetService.List(c.Request.Context(), c.Query("event"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BudgetItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.ToBudgetItemResponse(item))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBudgetItem(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid budget item id"})
		return
	}

	var req dto.UpdateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateBudgetItemInput{
		ID:              id,
		EventID:         req.EventID,
		Name:            req.Name,
		Category:        req.Category,
		AllocatedAmount: req.AllocatedAmount,
		SpentAmount:     req.SpentAmount,
	}

	item, err := h.budgetService.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetItemResponse(item))
}

func (h *Handler) DeleteBudgetItem(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid budget item id"})
		return
	}

	if err := h.budgetService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) SetBudgetItemSpent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid budget item id"})
		return
	}

	var req dto.SetSpentAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.budgetService.SetSpentAmount(c.Request.Context(), id, req.SpentAmount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetItemResponse(item))
}

func (h *Handler) BudgetSummary(c *ginext.Context) {
	summary, err := h.budgetService.Summary(c.Request.Context(), c.Query("event"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(summary))
}
