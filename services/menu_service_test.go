package services

import (
	"context"
	"errors"
	"mesero_server/lib"
	"mesero_server/structs/tables"
	"testing"

	"github.com/google/uuid"
)

func TestMenuUpsertAndGet(t *testing.T) {
	ctx := context.Background()
	sm, _ := newTestManager(t)

	item, err := sm.MenuService.Upsert(ctx, &tables.MenuItem{
		Name:     "Ceviche",
		Price:    1800,
		Category: tables.CategoryEntradas,
	})
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if item.ID == uuid.Nil {
		t.Fatal("Upsert() did not mint an id")
	}

	got, err := sm.MenuService.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Name != "Ceviche" || got.Price != 1800 {
		t.Errorf("Get() = %+v", got)
	}

	// price update in place
	item.Price = 2000
	if _, err := sm.MenuService.Upsert(ctx, item); err != nil {
		t.Fatalf("update Upsert() error: %v", err)
	}
	got, _ = sm.MenuService.Get(ctx, item.ID)
	if got.Price != 2000 {
		t.Errorf("price after update = %d, want 2000", got.Price)
	}
}

func TestMenuDelete(t *testing.T) {
	ctx := context.Background()
	sm, _ := newTestManager(t)

	item, err := sm.MenuService.Upsert(ctx, &tables.MenuItem{
		Name:     "Pisco Sour",
		Price:    1000,
		Category: tables.CategoryBebidas,
	})
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	if err := sm.MenuService.Delete(ctx, item.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := sm.MenuService.Get(ctx, item.ID); !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("Get() after delete = %v, want %v", err, lib.ErrNotFound)
	}

	if err := sm.MenuService.Delete(ctx, uuid.New()); !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("Delete() unknown id = %v, want %v", err, lib.ErrNotFound)
	}
}

// Menu edits never rewrite lines already placed on a table.
func TestMenuEditKeepsOrderSnapshots(t *testing.T) {
	ctx := context.Background()
	sm, st := newTestManager(t)

	item, err := sm.MenuService.Upsert(ctx, &tables.MenuItem{
		Name:     "Lomo Saltado",
		Price:    2500,
		Category: tables.CategoryPlatosPrincipales,
	})
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	table := seedTable(t, st, "Mesa 1", nil, "")
	if _, err := sm.OrderService.UpdateOrder(ctx, table.ID, tables.Order{item.Line(1, "")}, "Juan"); err != nil {
		t.Fatalf("UpdateOrder() error: %v", err)
	}

	item.Price = 9999
	if _, err := sm.MenuService.Upsert(ctx, item); err != nil {
		t.Fatalf("price change error: %v", err)
	}

	stored, _ := st.Tables.Get(ctx, table.ID)
	if stored.Order[0].Price != 2500 {
		t.Errorf("order line price = %d, want the 2500 snapshot", stored.Order[0].Price)
	}
}
