package services

import (
	"context"
	"errors"
	"mesero_server/lib"
	"mesero_server/structs/tables"
	"testing"

	"github.com/google/uuid"
)

func TestUpdateOrderOccupiesTable(t *testing.T) {
	ctx := context.Background()
	sm, st := newTestManager(t)
	table := seedTable(t, st, "Mesa 1", nil, "")

	got, err := sm.OrderService.UpdateOrder(ctx, table.ID, tables.Order{menuLine("Ceviche", 1800, 2)}, "Juan")
	if err != nil {
		t.Fatalf("UpdateOrder() error: %v", err)
	}
	if got.Status != tables.StatusOccupied {
		t.Errorf("Status = %v, want %v", got.Status, tables.StatusOccupied)
	}
	if got.WaiterName != "Juan" {
		t.Errorf("WaiterName = %q, want %q", got.WaiterName, "Juan")
	}

	stored, err := st.Tables.Get(ctx, table.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(stored.Order) != 1 || stored.Order[0].Quantity != 2 {
		t.Errorf("stored order = %+v, want one line quantity 2", stored.Order)
	}
}

func TestUpdateOrderReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	sm, st := newTestManager(t)
	table := seedTable(t, st, "Mesa 1", tables.Order{menuLine("Ceviche", 1800, 2)}, "Juan")

	replacement := tables.Order{menuLine("Lomo Saltado", 2500, 1)}
	got, err := sm.OrderService.UpdateOrder(ctx, table.ID, replacement, "")
	if err != nil {
		t.Fatalf("UpdateOrder() error: %v", err)
	}
	if len(got.Order) != 1 || got.Order[0].Name != "Lomo Saltado" {
		t.Errorf("order = %+v, want the replacement only", got.Order)
	}
	if got.WaiterName != "Juan" {
		t.Errorf("WaiterName = %q, want previous waiter kept", got.WaiterName)
	}
}

func TestUpdateOrderEmptyFreesTable(t *testing.T) {
	ctx := context.Background()
	sm, st := newTestManager(t)
	table := seedTable(t, st, "Mesa 1", tables.Order{menuLine("Ceviche", 1800, 1)}, "Juan")

	got, err := sm.OrderService.UpdateOrder(ctx, table.ID, tables.Order{}, "")
	if err != nil {
		t.Fatalf("UpdateOrder() error: %v", err)
	}
	if got.Status != tables.StatusFree {
		t.Errorf("Status = %v, want %v", got.Status, tables.StatusFree)
	}
	if got.WaiterName != "" {
		t.Errorf("WaiterName = %q, want cleared", got.WaiterName)
	}
}

func TestUpdateOrderNormalizesDuplicates(t *testing.T) {
	ctx := context.Background()
	sm, st := newTestManager(t)
	table := seedTable(t, st, "Mesa 1", nil, "")

	line := menuLine("Chicha", 600, 1)
	dup := line
	dup.Quantity = 2

	got, err := sm.OrderService.UpdateOrder(ctx, table.ID, tables.Order{line, dup}, "Juan")
	if err != nil {
		t.Fatalf("UpdateOrder() error: %v", err)
	}
	if len(got.Order) != 1 || got.Order[0].Quantity != 3 {
		t.Errorf("order = %+v, want one merged line quantity 3", got.Order)
	}
}

func TestUpdateOrderUnknownTable(t *testing.T) {
	sm, _ := newTestManager(t)

	_, err := sm.OrderService.UpdateOrder(context.Background(), uuid.New(), tables.Order{}, "")
	if !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("UpdateOrder() error = %v, want %v", err, lib.ErrNotFound)
	}
}
