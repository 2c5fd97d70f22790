package structs

import (
	"time"

	"github.com/google/uuid"
)

// Event routing keys published to the kitchen/display exchange.
const (
	EventOrderUpdated     = "table.order.updated"
	EventPaymentProcessed = "table.payment.processed"
	EventTableReleased    = "table.released"
)

type OrderUpdatedEvent struct {
	TableID    uuid.UUID `json:"table_id"`
	TableName  string    `json:"table_name"`
	LineCount  int       `json:"line_count"`
	Status     string    `json:"status"`
	WaiterName string    `json:"waiter_name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PaymentProcessedEvent struct {
	TableID       uuid.UUID `json:"table_id"`
	TableName     string    `json:"table_name"`
	Total         uint64    `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type TableReleasedEvent struct {
	TableID    uuid.UUID `json:"table_id"`
	TableName  string    `json:"table_name"`
	OccurredAt time.Time `json:"occurred_at"`
}
