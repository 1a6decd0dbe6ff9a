package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/apper-canvas/eventflow-ether-cell/internal/analytics"
	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
	"github.com/apper-canvas/eventflow-ether-cell/internal/filter"
	"github.com/apper-canvas/eventflow-ether-cell/internal/service/ports"
)

type PaymentService struct {
	repo     ports.PaymentRepo
	gateway  ports.PaymentGateway
	notifier ports.PaymentNotifier
	logger   logger.Logger
}

func NewPaymentService(
	repo ports.PaymentRepo,
	gateway ports.PaymentGateway,
	notifier ports.PaymentNotifier,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		repo:     repo,
		gateway:  gateway,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *PaymentService) Create(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error) {
	if input.EventID == "" {
		return nil, fmt.Errorf("%w: event is required", domain.ErrValidation)
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due_date is required", domain.ErrValidation)
	}
	if input.Type == "" {
		input.Type = domain.PaymentTypeClient
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown payment type %q", domain.ErrValidation, input.Type)
	}
	if input.PaymentMethod != "" && !input.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, input.PaymentMethod)
	}

	payment := &domain.Payment{
		ID:            uuid.New().String(),
		EventID:       input.EventID,
		Type:          input.Type,
		Amount:        input.Amount,
		Description:   input.Description,
		Status:        domain.PaymentStatusPending,
		DueDate:       input.DueDate,
		PaymentMethod: input.PaymentMethod,
		ClientName:    input.ClientName,
		VendorName:    input.VendorName,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("payment created",
		logger.String("payment_id", payment.ID),
		logger.String("event_id", payment.EventID),
		logger.String("type", string(payment.Type)),
		logger.String("amount", payment.Amount.String()),
	)

	return payment, nil
}

func (s *PaymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

// List loads payments (server-side restricted to the filter's event) and
// applies the remaining predicates in memory.
func (s *PaymentService) List(ctx context.Context, f filter.PaymentFilter) ([]*domain.Payment, error) {
	payments, err := s.repo.List(ctx, f.EventID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return filter.Payments(payments, f, time.Now().UTC()), nil
}

func (s *PaymentService) Update(ctx context.Context, input domain.UpdatePaymentInput) (*domain.Payment, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	if input.EventID == "" {
		return nil, fmt.Errorf("%w: event is required", domain.ErrValidation)
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due_date is required", domain.ErrValidation)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown payment type %q", domain.ErrValidation, input.Type)
	}
	if input.PaymentMethod != "" && !input.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, input.PaymentMethod)
	}

	payment := &domain.Payment{
		ID:            input.ID,
		EventID:       input.EventID,
		Type:          input.Type,
		Amount:        input.Amount,
		Description:   input.Description,
		DueDate:       input.DueDate,
		PaymentMethod: input.PaymentMethod,
		ClientName:    input.ClientName,
		VendorName:    input.VendorName,
	}
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	return s.repo.GetByID(ctx, input.ID)
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	s.logger.Info("payment deleted", logger.String("payment_id", id))
	return nil
}

// DeleteMany deletes each id independently: a failure on one does not roll
// back the others. It returns the deleted count and the ids that failed.
func (s *PaymentService) DeleteMany(ctx context.Context, ids []string) (int, []string) {
	deleted := 0
	var failed []string
	for _, id := range ids {
		if err := s.repo.Delete(ctx, id); err != nil {
			s.logger.Error("bulk delete: payment not deleted",
				logger.String("payment_id", id),
				logger.String("error", err.Error()),
			)
			failed = append(failed, id)
			continue
		}
		deleted++
	}
	return deleted, failed
}

// SetStatus applies a manual status change. Only stored statuses are
// accepted; overdue is derived at read time and can never be written.
func (s *PaymentService) SetStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error) {
	if !status.Stored() {
		return nil, fmt.Errorf("%w: status %q cannot be stored", domain.ErrValidation, status)
	}

	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if !domain.CanChangeStatus(payment.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusChange, payment.Status, status)
	}

	if err = s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	s.logger.Info("payment status changed",
		logger.String("payment_id", id),
		logger.String("from", string(payment.Status)),
		logger.String("to", string(status)),
	)

	return s.repo.GetByID(ctx, id)
}

// Receive runs the incoming-payment workflow for a client payment. On
// gateway failure nothing is persisted and the payment stays pending.
func (s *PaymentService) Receive(ctx context.Context, id string, method domain.PaymentMethod) (*domain.ChargeResult, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment.Type != domain.PaymentTypeClient {
		return nil, fmt.Errorf("%w: only client payments can be received", domain.ErrValidation)
	}
	if payment.Status != domain.PaymentStatusPending {
		return nil, domain.ErrPaymentNotPending
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, method)
	}

	result, err := s.gateway.Charge(ctx, payment, method)
	if err != nil {
		s.logger.Error("payment receiving failed",
			logger.String("payment_id", id),
			logger.String("error", err.Error()),
		)
		return nil, err
	}

	receipt := domain.PaymentReceipt{
		Method:        method,
		TransactionID: result.TransactionID,
		ProcessingFee: result.ProcessingFee,
		NetAmount:     result.NetAmount,
	}
	if err = s.repo.MarkPaid(ctx, id, receipt); err != nil {
		return nil, fmt.Errorf("record receipt: %w", err)
	}

	s.logger.Info("payment received",
		logger.String("payment_id", id),
		logger.String("transaction_id", result.TransactionID),
		logger.String("method", string(method)),
	)

	paid, err := s.repo.GetByID(ctx, id)
	if err == nil {
		go s.notifier.NotifyPaymentReceived(context.WithoutCancel(ctx), paid)
	}

	return result, nil
}

// Pay runs the outgoing-payment workflow for a vendor payment.
func (s *PaymentService) Pay(ctx context.Context, id string, method domain.PaymentMethod) (*domain.PayoutResult, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment.Type != domain.PaymentTypeVendor {
		return nil, fmt.Errorf("%w: only vendor payments can be paid out", domain.ErrValidation)
	}
	if payment.Status != domain.PaymentStatusPending {
		return nil, domain.ErrPaymentNotPending
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, method)
	}

	result, err := s.gateway.Payout(ctx, payment, method)
	if err != nil {
		s.logger.Error("vendor payment failed",
			logger.String("payment_id", id),
			logger.String("error", err.Error()),
		)
		return nil, err
	}

	receipt := domain.PaymentReceipt{
		Method:             method,
		TransactionID:      result.TransactionID,
		ConfirmationNumber: result.ConfirmationNumber,
	}
	if err = s.repo.MarkPaid(ctx, id, receipt); err != nil {
		return nil, fmt.Errorf("record payout: %w", err)
	}

	s.logger.Info("vendor paid",
		logger.String("payment_id", id),
		logger.String("transaction_id", result.TransactionID),
		logger.String("confirmation_number", result.ConfirmationNumber),
	)

	paid, err := s.repo.GetByID(ctx, id)
	if err == nil {
		go s.notifier.NotifyVendorPaid(context.WithoutCancel(ctx), paid)
	}

	return result, nil
}

// Analytics recomputes the payment summary from the full (optionally
// event-scoped) payment set. No caching: the set is small per event.
func (s *PaymentService) Analytics(ctx context.Context, eventID string) (analytics.PaymentSummary, error) {
	payments, err := s.repo.List(ctx, eventID)
	if err != nil {
		return analytics.PaymentSummary{}, fmt.Errorf("list payments: %w", err)
	}
	return analytics.SummarizePayments(payments, time.Now().UTC()), nil
}

// NotifyOverdue finds pending payments past their due date and sends
// reminders. Statuses are never rewritten: overdue stays derived.
func (s *PaymentService) NotifyOverdue(ctx context.Context) ([]*domain.Payment, error) {
	due, err := s.repo.ListDue(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list due payments: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("overdue payments found", logger.Int("count", len(due)))
		go s.notifyOverdue(context.WithoutCancel(ctx), due)
	}

	return due, nil
}

func (s *PaymentService) notifyOverdue(ctx context.Context, payments []*domain.Payment) {
	for _, p := range payments {
		s.notifier.NotifyPaymentOverdue(ctx, p)
	}
}
