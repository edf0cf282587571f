package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/billing"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/billing/mocks"
	"go.uber.org/mock/gomock"
)

func TestBillingHandlers(t *testing.T) {
	payment := &domain.Payment{ID: "pay-1", CustomerID: "cus-1", Amount: 49.9, Currency: "USD", Status: domain.PaymentSucceeded, Attempts: 1}

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		setup    func(m *mocks.MockPaymentProcessor)
		status   int
		code     string
		validate func(t *testing.T, body []byte)
	}{
		{
			name:   "cria pagamento",
			method: http.MethodPost,
			target: "/v1/billing/payments",
			body:   `{"customerId":"cus-1","amount":49.9,"currency":"usd"}`,
			setup: func(m *mocks.MockPaymentProcessor) {
				m.EXPECT().ProcessPayment(gomock.Any(), domain.PaymentRequest{CustomerID: "cus-1", Amount: 49.9, Currency: "usd"}).
					Return(payment, nil)
			},
			status: http.StatusCreated,
			validate: func(t *testing.T, body []byte) {
				var got domain.Payment
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "pay-1", got.ID)
				assert.Equal(t, domain.PaymentSucceeded, got.Status)
			},
		},
		{
			name:   "valor inválido",
			method: http.MethodPost,
			target: "/v1/billing/payments",
			body:   `{"customerId":"cus-1","amount":0}`,
			setup: func(m *mocks.MockPaymentProcessor) {
				m.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(nil, billing.ErrInvalidAmount)
			},
			status: http.StatusBadRequest,
			code:   "PAY_001",
		},
		{
			name:   "pagamento inexistente",
			method: http.MethodGet,
			target: "/v1/billing/payments/nope",
			setup: func(m *mocks.MockPaymentProcessor) {
				m.EXPECT().GetPayment("nope").Return(nil, billing.ErrPaymentNotFound)
			},
			status: http.StatusNotFound,
			code:   "PAY_002",
		},
		{
			name:   "retentativa de pagamento aprovado",
			method: http.MethodPost,
			target: "/v1/billing/payments/pay-1/retry",
			setup: func(m *mocks.MockPaymentProcessor) {
				m.EXPECT().RetryPayment(gomock.Any(), "pay-1").Return(nil, billing.ErrPaymentNotRetryable)
			},
			status: http.StatusConflict,
			code:   "PAY_003",
		},
		{
			name:   "limite de tentativas",
			method: http.MethodPost,
			target: "/v1/billing/payments/pay-1/retry",
			setup: func(m *mocks.MockPaymentProcessor) {
				m.EXPECT().RetryPayment(gomock.Any(), "pay-1").Return(nil, billing.ErrMaxAttemptsReached)
			},
			status: http.StatusConflict,
			code:   "PAY_004",
		},
		{
			name:   "lista pagamentos",
			method: http.MethodGet,
			target: "/v1/billing/payments",
			setup: func(m *mocks.MockPaymentProcessor) {
				m.EXPECT().ListPayments().Return([]domain.Payment{*payment})
			},
			status: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"id":"pay-1"`)
			},
		},
		{
			name:   "notificações não lidas",
			method: http.MethodGet,
			target: "/v1/billing/notifications?unread=true",
			setup: func(m *mocks.MockPaymentProcessor) {
				m.EXPECT().Notifications(true).Return([]domain.PaymentNotification{{ID: "n1", Severity: domain.SeverityWarning}})
			},
			status: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"severity":"warning"`)
			},
		},
		{
			name:   "marca notificação como lida",
			method: http.MethodPost,
			target: "/v1/billing/notifications/n1/read",
			setup: func(m *mocks.MockPaymentProcessor) {
				m.EXPECT().MarkNotificationRead("n1").Return(nil)
			},
			status: http.StatusNoContent,
		},
		{
			name:   "notificação inexistente",
			method: http.MethodPost,
			target: "/v1/billing/notifications/n9/read",
			setup: func(m *mocks.MockPaymentProcessor) {
				m.EXPECT().MarkNotificationRead("n9").Return(billing.ErrNotificationNotFound)
			},
			status: http.StatusNotFound,
			code:   "RES_001",
		},
		{
			name:   "status da fila",
			method: http.MethodGet,
			target: "/v1/billing/queue",
			setup: func(m *mocks.MockPaymentProcessor) {
				m.EXPECT().QueueStatus().Return(domain.QueueStatus{Succeeded: 2, Failed: 1, Unread: 3})
			},
			status: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"pending":0,"processing":0,"succeeded":2,"failed":1,"unreadNotifications":3}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			processor := mocks.NewMockPaymentProcessor(ctrl)
			tt.setup(processor)

			var body []byte
			if tt.body != "" {
				body = []byte(tt.body)
			}

			rec := serve(Billing(processor), tt.method, tt.target, body)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeAPIError(t, rec).Code)
			}
			if tt.validate != nil {
				tt.validate(t, rec.Body.Bytes())
			}
		})
	}
}
