package services

import (
	"context"
	"mesero_server/store"
	"mesero_server/structs/tables"
	"testing"
	"time"

	"github.com/google/uuid"
)

func seedTransaction(t *testing.T, st *store.Store, method string, total uint64, ts time.Time, order tables.Order) {
	t.Helper()
	err := st.Transactions.Insert(context.Background(), &tables.Transaction{
		ID:            uuid.New(),
		TableID:       uuid.New(),
		TableName:     "Mesa 1",
		Order:         order,
		Total:         total,
		PaymentMethod: method,
		Timestamp:     ts,
	})
	if err != nil {
		t.Fatalf("seeding transaction: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	day1 := time.Date(2026, 8, 29, 13, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 30, 20, 30, 0, 0, time.UTC)

	ceviche := menuLine("Ceviche", 1800, 1)

	list := []tables.Transaction{
		{Total: 1000, PaymentMethod: "Efectivo", Timestamp: day1, Order: tables.Order{ceviche}},
		{Total: 2000, PaymentMethod: "Tarjeta", Timestamp: day1},
		{Total: 500, PaymentMethod: "Yape", Timestamp: day2, Order: tables.Order{ceviche}},
	}

	summary := Summarize(list)

	if summary.TotalSales != 3500 {
		t.Errorf("TotalSales = %d, want 3500", summary.TotalSales)
	}
	if summary.TotalTransactions != 3 {
		t.Errorf("TotalTransactions = %d, want 3", summary.TotalTransactions)
	}
	if summary.AverageTicket != 1166 {
		t.Errorf("AverageTicket = %d, want 1166", summary.AverageTicket)
	}
	if summary.ByPaymentMethod["Efectivo"] != 1000 ||
		summary.ByPaymentMethod["Tarjeta"] != 2000 ||
		summary.ByPaymentMethod["Yape"] != 500 {
		t.Errorf("ByPaymentMethod = %v", summary.ByPaymentMethod)
	}

	if len(summary.SalesByDay) != 2 {
		t.Fatalf("SalesByDay has %d entries, want 2", len(summary.SalesByDay))
	}
	if summary.SalesByDay[0].Day != "2026-08-29" || summary.SalesByDay[0].Total != 3000 {
		t.Errorf("SalesByDay[0] = %+v, want 2026-08-29 / 3000", summary.SalesByDay[0])
	}
	if summary.SalesByDay[1].Day != "2026-08-30" || summary.SalesByDay[1].Total != 500 {
		t.Errorf("SalesByDay[1] = %+v, want 2026-08-30 / 500", summary.SalesByDay[1])
	}

	if len(summary.BestSellers) != 1 || summary.BestSellers[0].Quantity != 2 {
		t.Errorf("BestSellers = %+v, want Ceviche with quantity 2", summary.BestSellers)
	}
}

func TestSummarizeEmptyLedger(t *testing.T) {
	summary := Summarize(nil)

	if summary.TotalSales != 0 || summary.TotalTransactions != 0 || summary.AverageTicket != 0 {
		t.Errorf("empty ledger summary = %+v, want zeros", summary)
	}
	if summary.ByPaymentMethod == nil {
		t.Error("ByPaymentMethod should be an empty map, not nil")
	}
}

func TestSummarizeBestSellersCap(t *testing.T) {
	var order tables.Order
	for i := 0; i < 15; i++ {
		order = append(order, menuLine("Plato", 1000, i+1))
	}
	list := []tables.Transaction{{Total: 1000, PaymentMethod: "Efectivo", Timestamp: time.Now(), Order: order}}

	summary := Summarize(list)
	if len(summary.BestSellers) != 10 {
		t.Fatalf("BestSellers has %d entries, want 10", len(summary.BestSellers))
	}
	if summary.BestSellers[0].Quantity != 15 {
		t.Errorf("top seller quantity = %d, want 15", summary.BestSellers[0].Quantity)
	}
}

func TestTransactionListFilters(t *testing.T) {
	ctx := context.Background()
	sm, st := newTestManager(t)

	day1 := time.Date(2026, 8, 29, 13, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 30, 20, 30, 0, 0, time.UTC)
	seedTransaction(t, st, "Efectivo", 1000, day1, nil)
	seedTransaction(t, st, "Tarjeta", 2000, day1, nil)
	seedTransaction(t, st, "Efectivo", 500, day2, nil)

	tests := []struct {
		name string
		opts *ListOptions
		want int
	}{
		{"no filter", nil, 3},
		{"by payment method", &ListOptions{PaymentMethod: "Efectivo"}, 2},
		{"by day", &ListOptions{Day: "2026-08-29"}, 2},
		{"method and day", &ListOptions{PaymentMethod: "Efectivo", Day: "2026-08-29"}, 1},
		{"no matches", &ListOptions{PaymentMethod: "Cheque"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := sm.TransactionService.List(ctx, tt.opts)
			if err != nil {
				t.Fatalf("List() error: %v", err)
			}
			if len(list) != tt.want {
				t.Errorf("List() returned %d transactions, want %d", len(list), tt.want)
			}
		})
	}
}

func TestTransactionClear(t *testing.T) {
	ctx := context.Background()
	sm, st := newTestManager(t)
	seedTransaction(t, st, "Efectivo", 1000, time.Now(), nil)

	if err := sm.TransactionService.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	list, err := sm.TransactionService.List(ctx, nil)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("ledger has %d transactions after close, want 0", len(list))
	}

	summary, err := sm.TransactionService.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	if summary.TotalSales != 0 {
		t.Errorf("summary after close = %d, want 0", summary.TotalSales)
	}
}
