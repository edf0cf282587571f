package domain

import "time"

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentSucceeded  PaymentStatus = "succeeded"
	PaymentFailed     PaymentStatus = "failed"
)

// PaymentRequest é o pedido de cobrança de uma assinatura
type PaymentRequest struct {
	CustomerID  string  `json:"customerId"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
	PlanID      string  `json:"planId,omitempty"`
}

// Payment é o estado de uma cobrança processada pelo simulador
type Payment struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Description   string        `json:"description,omitempty"`
	PlanID        string        `json:"planId,omitempty"`
	Status        PaymentStatus `json:"status"`
	FailureReason string        `json:"failureReason,omitempty"`
	Attempts      int           `json:"attempts"`
	CreatedAt     time.Time     `json:"createdAt"`
	ProcessedAt   *time.Time    `json:"processedAt,omitempty"`
}

type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeverityWarning NotificationSeverity = "warning"
	SeverityError   NotificationSeverity = "error"
)

// PaymentNotification avisa o usuário sobre o resultado de uma cobrança
type PaymentNotification struct {
	ID        string               `json:"id"`
	PaymentID string               `json:"paymentId"`
	Severity  NotificationSeverity `json:"severity"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Read      bool                 `json:"read"`
	CreatedAt time.Time            `json:"createdAt"`
}

// QueueStatus resume a fila de cobranças
type QueueStatus struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Succeeded  int `json:"succeeded"`
	Failed     int `json:"failed"`
	Unread     int `json:"unreadNotifications"`
}
