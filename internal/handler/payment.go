package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/filter"
	"github.com/apper-canvas/eventflow-ether-cell/internal/handler/dto"
)

func (h *Handler) CreatePayment(c *ginext.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid due_date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreatePaymentInput{
		EventID:       req.EventID,
		Type:          domain.PaymentType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		DueDate:       dueDate,
		ClientName:    req.ClientName,
		VendorName:    req.VendorName,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	}

	payment, err := h.paymentService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment, time.Now().UTC()))
}

func (h *Handler) GetPayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment, time.Now().UTC()))
}

func (h *Handler) ListPayments(c *ginext.Context) {
	f := filter.PaymentFilter{
		Search:  c.Query("search"),
		Type:    domain.PaymentType(c.Query("type")),
		Status:  domain.PaymentStatus(c.Query("status")),
		EventID: c.Query("event"),
	}

	if from := c.Query("due_from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid due_from format, expected YYYY-MM-DD",
			})
			return
		}
		f.DueFrom = &t
	}
	if to := c.Query("due_to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid due_to format, expected YYYY-MM-DD",
			})
			return
		}
		f.DueTo = &t
	}

	payments, err := h.paymentService.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments, time.Now().UTC()))
}

func (h *Handler) UpdatePayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid due_date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.UpdatePaymentInput{
		ID:            id,
		EventID:       req.EventID,
		Type:          domain.PaymentType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		DueDate:       dueDate,
		ClientName:    req.ClientName,
		VendorName:    req.VendorName,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	}

	payment, err := h.paymentService.Update(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment, time.Now().UTC()))
}

func (h *Handler) DeletePayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// BulkDeletePayments deletes each requested payment independently and
// reports the ids that could not be deleted.
func (h *Handler) BulkDeletePayments(c *ginext.Context) {
	var req dto.BulkDeletePaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	deleted, failed := h.paymentService.DeleteMany(c.Request.Context(), req.IDs)

	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted, Failed: failed})
}

func (h *Handler) SetPaymentStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	var req dto.SetPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.SetStatus(c.Request.Context(), id, domain.PaymentStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment, time.Now().UTC()))
}

func (h *Handler) ReceivePayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.paymentService.Receive(c.Request.Context(), id, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		h.handleError(c, err)
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChargeResponse{
		Payment: dto.ToPaymentResponse(payment, time.Now().UTC()),
		Result:  result,
	})
}

func (h *Handler) PayVendor(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.paymentService.Pay(c.Request.Context(), id, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		h.handleError(c, err)
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PayoutResponse{
		Payment: dto.ToPaymentResponse(payment, time.Now().UTC()),
		Result:  result,
	})
}

func (h *Handler) PaymentAnalytics(c *ginext.Context) {
	summary, err := h.paymentService.Analytics(c.Request.Context(), c.Query("event"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentSummaryResponse(summary))
}
