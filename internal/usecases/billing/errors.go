package billing

import "errors"

var (
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrUnsupportedCurrency  = errors.New("unsupported currency")
	ErrMissingCustomer      = errors.New("customer id is required")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPaymentNotRetryable  = errors.New("only failed payments can be retried")
	ErrMaxAttemptsReached   = errors.New("maximum payment attempts reached")
)
