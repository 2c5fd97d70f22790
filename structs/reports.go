package structs

import (
	"mesero_server/structs/tables"

	"github.com/google/uuid"
)

// Receipt is what the cashier sees after a successful charge. Order is an
// independent copy of the ledger snapshot so UI rendering cannot mutate ledger
// state. SettlementToken must be presented to finalize the payment.
type Receipt struct {
	TableName       string       `json:"table_name"`
	Order           tables.Order `json:"order"`
	Total           uint64       `json:"total"` // cents
	SettlementToken uuid.UUID    `json:"settlement_token"`
}

// ShiftSummary aggregates the current shift's ledger for reporting and the
// close-shift email.
type ShiftSummary struct {
	TotalSales        uint64            `json:"total_sales"` // cents
	TotalTransactions int               `json:"total_transactions"`
	AverageTicket     uint64            `json:"average_ticket"` // cents
	ByPaymentMethod   map[string]uint64 `json:"by_payment_method"`
	SalesByDay        []DailySales      `json:"sales_by_day"`
	BestSellers       []ItemSales       `json:"best_sellers"`
}

type DailySales struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Total uint64 `json:"total"`
}

type ItemSales struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
}
