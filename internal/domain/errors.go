package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrGuestNotFound      = errors.New("guest not found")
	ErrBudgetItemNotFound = errors.New("budget item not found")
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrPaymentNotFound    = errors.New("payment not found")
)

var (
	ErrPaymentNotPending   = errors.New("payment is not in pending status")
	ErrInvalidStatusChange = errors.New("invalid payment status change")
	ErrProcessingFailed    = errors.New("payment processing failed")
)

var (
	ErrValidation = errors.New("validation error")
)
