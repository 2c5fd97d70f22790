package structs

import (
	"mesero_server/structs/tables"

	"github.com/google/uuid"
)

// UpdateOrderRequest replaces a table's order wholesale. Lines with a quantity
// at or below zero are accepted and dropped during normalization; callers use
// that to remove items.
type UpdateOrderRequest struct {
	Order      []tables.OrderLine `json:"order" validate:"dive"`
	WaiterName string             `json:"waiter_name" validate:"omitempty,min=2,max=100"`
}

type PaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,min=2,max=40"`
}

type FinalizePaymentRequest struct {
	SettlementToken uuid.UUID `json:"settlement_token" validate:"omitempty"`
}

type LoginRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Pin  string `json:"pin" validate:"required,numeric,min=4,max=8"`
}
