package billing

import (
	"context"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// PaymentProcessor é o simulador de cobranças usado pelo painel de billing
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error)
	RetryPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetPayment(paymentID string) (*domain.Payment, error)
	ListPayments() []domain.Payment
	Notifications(unreadOnly bool) []domain.PaymentNotification
	MarkNotificationRead(notificationID string) error
	QueueStatus() domain.QueueStatus
	Reset()
}
