package billing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// sequence devolve os valores em ordem, repetindo o último
func sequence(values ...float64) func() float64 {
	var mu sync.Mutex
	i := 0
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func newTestProcessor(random func() float64) *Processor {
	p := NewProcessor(0.9, 0).WithRandom(random)
	seq := 0
	var mu sync.Mutex
	p.newID = func() string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	p.now = func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) }
	return p
}

func validRequest() domain.PaymentRequest {
	return domain.PaymentRequest{CustomerID: "cus_1", Amount: 49.9, Currency: "usd", PlanID: "pro"}
}

func TestProcessor_ProcessPayment(t *testing.T) {
	tests := []struct {
		name     string
		random   func() float64
		req      domain.PaymentRequest
		validate func(t *testing.T, p *Processor, payment *domain.Payment, err error)
	}{
		{
			name:   "cobrança aprovada",
			random: sequence(0.1),
			req:    validRequest(),
			validate: func(t *testing.T, p *Processor, payment *domain.Payment, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.PaymentSucceeded, payment.Status)
				assert.Equal(t, "USD", payment.Currency)
				assert.Equal(t, 1, payment.Attempts)
				require.NotNil(t, payment.ProcessedAt)

				notifications := p.Notifications(false)
				require.Len(t, notifications, 1)
				assert.Equal(t, domain.SeverityInfo, notifications[0].Severity)
				assert.Equal(t, payment.ID, notifications[0].PaymentID)
				assert.Contains(t, notifications[0].Message, "$49.90")
			},
		},
		{
			name:   "cobrança recusada",
			random: sequence(0.95, 0.3),
			req:    validRequest(),
			validate: func(t *testing.T, p *Processor, payment *domain.Payment, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.PaymentFailed, payment.Status)
				assert.Equal(t, "Insufficient funds", payment.FailureReason)

				notifications := p.Notifications(true)
				require.Len(t, notifications, 1)
				assert.Equal(t, domain.SeverityWarning, notifications[0].Severity)
				assert.Equal(t, "Payment failed", notifications[0].Title)
			},
		},
		{
			name:   "valor inválido",
			random: sequence(0.1),
			req:    domain.PaymentRequest{CustomerID: "cus_1", Amount: 0},
			validate: func(t *testing.T, p *Processor, payment *domain.Payment, err error) {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.Nil(t, payment)
				assert.Empty(t, p.ListPayments())
			},
		},
		{
			name:   "cliente ausente",
			random: sequence(0.1),
			req:    domain.PaymentRequest{CustomerID: "  ", Amount: 10},
			validate: func(t *testing.T, _ *Processor, _ *domain.Payment, err error) {
				assert.ErrorIs(t, err, ErrMissingCustomer)
			},
		},
		{
			name:   "moeda não suportada",
			random: sequence(0.1),
			req:    domain.PaymentRequest{CustomerID: "cus_1", Amount: 10, Currency: "xyz"},
			validate: func(t *testing.T, _ *Processor, _ *domain.Payment, err error) {
				assert.ErrorIs(t, err, ErrUnsupportedCurrency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProcessor(tt.random)
			payment, err := p.ProcessPayment(context.Background(), tt.req)
			tt.validate(t, p, payment, err)
		})
	}
}

func TestProcessor_RetryPayment(t *testing.T) {
	p := newTestProcessor(sequence(0.99))
	p.maxAttempts = 2

	payment, err := p.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, domain.PaymentFailed, payment.Status)

	retried, err := p.RetryPayment(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, retried.Attempts)
	assert.Equal(t, domain.PaymentFailed, retried.Status)

	// última tentativa gera notificação de erro
	assert.Equal(t, domain.SeverityError, p.Notifications(false)[0].Severity)

	_, err = p.RetryPayment(context.Background(), payment.ID)
	assert.ErrorIs(t, err, ErrMaxAttemptsReached)

	_, err = p.RetryPayment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestProcessor_RetrySucceededPayment(t *testing.T) {
	p := newTestProcessor(sequence(0.1))

	payment, err := p.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = p.RetryPayment(context.Background(), payment.ID)
	assert.ErrorIs(t, err, ErrPaymentNotRetryable)
}

func TestProcessor_CancelledContextKeepsPaymentPending(t *testing.T) {
	p := NewProcessor(1, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	payment, err := p.ProcessPayment(ctx, validRequest())

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, payment)
	assert.Equal(t, domain.PaymentPending, payment.Status)
	assert.Equal(t, 1, p.QueueStatus().Pending)
}

func TestProcessor_NotificationsAndQueue(t *testing.T) {
	p := newTestProcessor(sequence(0.1, 0.95, 0.0))

	first, err := p.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := p.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.QueueStatus{Succeeded: 1, Failed: 1, Unread: 2}, p.QueueStatus())

	payments := p.ListPayments()
	require.Len(t, payments, 2)
	assert.Equal(t, second.ID, payments[0].ID)
	assert.Equal(t, first.ID, payments[1].ID)

	notifications := p.Notifications(false)
	require.Len(t, notifications, 2)
	require.NoError(t, p.MarkNotificationRead(notifications[0].ID))
	assert.ErrorIs(t, p.MarkNotificationRead("missing"), ErrNotificationNotFound)

	assert.Len(t, p.Notifications(true), 1)
	assert.Equal(t, 1, p.QueueStatus().Unread)

	got, err := p.GetPayment(first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSucceeded, got.Status)

	// a cópia retornada não altera o estado interno
	got.Status = domain.PaymentFailed
	again, _ := p.GetPayment(first.ID)
	assert.Equal(t, domain.PaymentSucceeded, again.Status)
}

func TestProcessor_Reset(t *testing.T) {
	p := newTestProcessor(sequence(0.1))

	_, err := p.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)

	p.Reset()

	assert.Empty(t, p.ListPayments())
	assert.Empty(t, p.Notifications(false))
	assert.Equal(t, domain.QueueStatus{}, p.QueueStatus())
}

func TestProcessor_Concurrent(t *testing.T) {
	p := NewProcessor(0.5, 0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.ProcessPayment(context.Background(), validRequest())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	status := p.QueueStatus()
	assert.Equal(t, 20, status.Succeeded+status.Failed)
	assert.Len(t, p.Notifications(false), 20)
}

func TestProcessor_ConcurrentRetriesStartOneAttempt(t *testing.T) {
	p := newTestProcessor(sequence(0.99))
	p.delay = 20 * time.Millisecond

	payment, err := p.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, domain.PaymentFailed, payment.Status)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		started  int
		notReady int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.RetryPayment(context.Background(), payment.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				started++
			case errors.Is(err, ErrPaymentNotRetryable):
				notReady++
			default:
				t.Errorf("erro inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, started)
	assert.Equal(t, 9, notReady)

	got, err := p.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Attempts)
	assert.LessOrEqual(t, got.Attempts, p.maxAttempts)
}

func TestProcessor_ResetDuringProcessing(t *testing.T) {
	p := newTestProcessor(sequence(0.1))
	p.delay = 50 * time.Millisecond

	type result struct {
		payment *domain.Payment
		err     error
	}
	done := make(chan result, 1)
	go func() {
		payment, err := p.ProcessPayment(context.Background(), validRequest())
		done <- result{payment, err}
	}()

	require.Eventually(t, func() bool { return p.QueueStatus().Processing == 1 }, time.Second, time.Millisecond)
	p.Reset()

	res := <-done
	assert.ErrorIs(t, res.err, ErrPaymentNotFound)
	assert.Nil(t, res.payment)
	assert.Empty(t, p.ListPayments())
	assert.Empty(t, p.Notifications(false))
}
