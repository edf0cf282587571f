package billing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/format"
	"github.com/vfg2006/campaign-analytics-api/pkg/metrics"
)

const (
	DefaultSuccessRate     = 0.9
	DefaultProcessingDelay = 500 * time.Millisecond
	DefaultMaxAttempts     = 3
)

var failureReasons = []string{
	"Card declined",
	"Insufficient funds",
	"Expired card",
	"Payment gateway timeout",
}

var supportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"BRL": true,
	"JPY": true,
}

// Processor simula o processamento de cobranças em memória. Uma instância
// é criada na inicialização e compartilhada pelos handlers.
type Processor struct {
	mu            sync.Mutex
	payments      map[string]*domain.Payment
	order         []string
	notifications []*domain.PaymentNotification

	successRate float64
	delay       time.Duration
	maxAttempts int

	random  func() float64
	newID   func() string
	now     func() time.Time
	metrics *metrics.Metrics
}

func NewProcessor(successRate float64, delay time.Duration) *Processor {
	if successRate < 0 || successRate > 1 {
		successRate = DefaultSuccessRate
	}
	if delay < 0 {
		delay = 0
	}

	return &Processor{
		payments:    make(map[string]*domain.Payment),
		successRate: successRate,
		delay:       delay,
		maxAttempts: DefaultMaxAttempts,
		random:      rand.Float64,
		newID:       uuid.NewString,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithRandom troca a fonte de aleatoriedade que decide sucesso e motivo da falha
func (p *Processor) WithRandom(random func() float64) *Processor {
	p.random = random
	return p
}

func (p *Processor) WithMetrics(m *metrics.Metrics) *Processor {
	p.metrics = m
	return p
}

// ProcessPayment valida o pedido, enfileira a cobrança e processa em seguida
func (p *Processor) ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	p.mu.Lock()
	payment := &domain.Payment{
		ID:          p.newID(),
		CustomerID:  req.CustomerID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		PlanID:      req.PlanID,
		Status:      domain.PaymentPending,
		CreatedAt:   p.now(),
	}
	p.payments[payment.ID] = payment
	p.order = append(p.order, payment.ID)
	p.startAttempt(payment)
	p.mu.Unlock()

	return p.process(ctx, payment)
}

// RetryPayment reprocessa uma cobrança que falhou, respeitando o limite de tentativas
func (p *Processor) RetryPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	p.mu.Lock()
	payment, ok := p.payments[paymentID]
	if !ok {
		p.mu.Unlock()
		return nil, ErrPaymentNotFound
	}
	if payment.Status != domain.PaymentFailed && payment.Status != domain.PaymentPending {
		p.mu.Unlock()
		return nil, ErrPaymentNotRetryable
	}
	if payment.Attempts >= p.maxAttempts {
		p.mu.Unlock()
		return nil, ErrMaxAttemptsReached
	}
	// a tentativa é registrada junto com a verificação; uma segunda chamada
	// concorrente já encontra a cobrança em processamento
	p.startAttempt(payment)
	p.mu.Unlock()

	return p.process(ctx, payment)
}

// startAttempt deve ser chamado com o lock adquirido
func (p *Processor) startAttempt(payment *domain.Payment) {
	payment.Status = domain.PaymentProcessing
	payment.Attempts++
	payment.FailureReason = ""
}

// tracked indica se a cobrança ainda pertence ao processador (Reset a descarta).
// Deve ser chamado com o lock adquirido.
func (p *Processor) tracked(payment *domain.Payment) bool {
	current, ok := p.payments[payment.ID]
	return ok && current == payment
}

func (p *Processor) process(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if err := wait(ctx, p.delay); err != nil {
		p.mu.Lock()
		defer p.mu.Unlock()

		if !p.tracked(payment) {
			return nil, ErrPaymentNotFound
		}
		payment.Status = domain.PaymentPending
		snapshot := *payment

		logrus.WithError(err).WithField("payment_id", payment.ID).Warn("billing: processamento interrompido")
		return &snapshot, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.tracked(payment) {
		logrus.WithField("payment_id", payment.ID).Warn("billing: cobrança descartada durante o processamento")
		return nil, ErrPaymentNotFound
	}

	processedAt := p.now()
	payment.ProcessedAt = &processedAt

	amount := format.Currency(payment.Amount, payment.Currency)
	if p.random() < p.successRate {
		payment.Status = domain.PaymentSucceeded
		p.notify(payment.ID, domain.SeverityInfo, "Payment successful",
			fmt.Sprintf("Payment of %s was processed successfully.", amount))
	} else {
		payment.Status = domain.PaymentFailed
		payment.FailureReason = failureReasons[int(p.random()*float64(len(failureReasons)))%len(failureReasons)]

		severity := domain.SeverityWarning
		if payment.Attempts >= p.maxAttempts {
			severity = domain.SeverityError
		}
		p.notify(payment.ID, severity, "Payment failed",
			fmt.Sprintf("Payment of %s failed: %s.", amount, payment.FailureReason))
	}

	p.metrics.IncPayment(string(payment.Status))

	logrus.WithFields(logrus.Fields{
		"payment_id": payment.ID,
		"status":     payment.Status,
		"attempts":   payment.Attempts,
	}).Info("billing: cobrança processada")

	snapshot := *payment
	return &snapshot, nil
}

// notify deve ser chamado com o lock adquirido
func (p *Processor) notify(paymentID string, severity domain.NotificationSeverity, title, message string) {
	p.notifications = append(p.notifications, &domain.PaymentNotification{
		ID:        p.newID(),
		PaymentID: paymentID,
		Severity:  severity,
		Title:     title,
		Message:   message,
		CreatedAt: p.now(),
	})
}

func (p *Processor) GetPayment(paymentID string) (*domain.Payment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	payment, ok := p.payments[paymentID]
	if !ok {
		return nil, ErrPaymentNotFound
	}

	snapshot := *payment
	return &snapshot, nil
}

// ListPayments retorna as cobranças da mais recente para a mais antiga
func (p *Processor) ListPayments() []domain.Payment {
	p.mu.Lock()
	defer p.mu.Unlock()

	payments := make([]domain.Payment, 0, len(p.order))
	for i := len(p.order) - 1; i >= 0; i-- {
		payments = append(payments, *p.payments[p.order[i]])
	}
	return payments
}

// Notifications retorna as notificações da mais recente para a mais antiga
func (p *Processor) Notifications(unreadOnly bool) []domain.PaymentNotification {
	p.mu.Lock()
	defer p.mu.Unlock()

	notifications := make([]domain.PaymentNotification, 0, len(p.notifications))
	for i := len(p.notifications) - 1; i >= 0; i-- {
		n := p.notifications[i]
		if unreadOnly && n.Read {
			continue
		}
		notifications = append(notifications, *n)
	}
	return notifications
}

func (p *Processor) MarkNotificationRead(notificationID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, n := range p.notifications {
		if n.ID == notificationID {
			n.Read = true
			return nil
		}
	}
	return ErrNotificationNotFound
}

func (p *Processor) QueueStatus() domain.QueueStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	var status domain.QueueStatus
	for _, payment := range p.payments {
		switch payment.Status {
		case domain.PaymentPending:
			status.Pending++
		case domain.PaymentProcessing:
			status.Processing++
		case domain.PaymentSucceeded:
			status.Succeeded++
		case domain.PaymentFailed:
			status.Failed++
		}
	}

	for _, n := range p.notifications {
		if !n.Read {
			status.Unread++
		}
	}

	return status
}

// Reset limpa cobranças e notificações
func (p *Processor) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.payments = make(map[string]*domain.Payment)
	p.order = nil
	p.notifications = nil
}

func validateRequest(req *domain.PaymentRequest) error {
	req.CustomerID = strings.TrimSpace(req.CustomerID)
	if req.CustomerID == "" {
		return ErrMissingCustomer
	}

	if req.Amount <= 0 {
		return ErrInvalidAmount
	}

	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if req.Currency == "" {
		req.Currency = "USD"
	}
	if !supportedCurrencies[req.Currency] {
		return fmt.Errorf("%w: %s", ErrUnsupportedCurrency, req.Currency)
	}

	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
