package store

import (
	"context"
	"errors"
	"mesero_server/lib"
	"mesero_server/structs/tables"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemoryTableIsolation(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	table := &tables.DiningTable{
		ID:     uuid.New(),
		Name:   "Mesa 1",
		Status: tables.StatusOccupied,
		Order:  tables.Order{{MenuItemID: uuid.New(), Name: "Ceviche", Price: 1800, Quantity: 1}},
	}
	if err := st.Tables.Insert(ctx, table); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	// mutating the record returned by Get must not touch stored state
	got, err := st.Tables.Get(ctx, table.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	got.Order[0].Quantity = 99

	fresh, _ := st.Tables.Get(ctx, table.ID)
	if fresh.Order[0].Quantity != 1 {
		t.Errorf("stored order mutated through a returned copy: quantity = %d", fresh.Order[0].Quantity)
	}

	// same for the record passed to Insert
	table.Order[0].Quantity = 50
	fresh, _ = st.Tables.Get(ctx, table.ID)
	if fresh.Order[0].Quantity != 1 {
		t.Errorf("stored order aliases the inserted record: quantity = %d", fresh.Order[0].Quantity)
	}
}

func TestMemoryTableErrors(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	table := &tables.DiningTable{ID: uuid.New(), Name: "Mesa 1", Status: tables.StatusFree}
	if err := st.Tables.Insert(ctx, table); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	if err := st.Tables.Insert(ctx, table); !errors.Is(err, lib.ErrConflict) {
		t.Errorf("duplicate Insert() = %v, want %v", err, lib.ErrConflict)
	}
	if _, err := st.Tables.Get(ctx, uuid.New()); !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("Get() unknown = %v, want %v", err, lib.ErrNotFound)
	}
	if err := st.Tables.Update(ctx, &tables.DiningTable{ID: uuid.New()}); !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("Update() unknown = %v, want %v", err, lib.ErrNotFound)
	}
	if err := st.Tables.Delete(ctx, uuid.New()); !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("Delete() unknown = %v, want %v", err, lib.ErrNotFound)
	}
}

func TestMemoryTransactionOrdering(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	for i, method := range []string{"Efectivo", "Tarjeta", "Yape"} {
		err := st.Transactions.Insert(ctx, &tables.Transaction{
			ID:            uuid.New(),
			TableID:       uuid.New(),
			TableName:     "Mesa 1",
			Total:         uint64(1000 * (i + 1)),
			PaymentMethod: method,
			Timestamp:     time.Now(),
		})
		if err != nil {
			t.Fatalf("Insert() error: %v", err)
		}
	}

	list, err := st.Transactions.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"Efectivo", "Tarjeta", "Yape"}
	for i := range want {
		if list[i].PaymentMethod != want[i] {
			t.Errorf("list[%d].PaymentMethod = %q, want %q (insertion order)", i, list[i].PaymentMethod, want[i])
		}
	}

	if err := st.Transactions.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	list, _ = st.Transactions.List(ctx)
	if len(list) != 0 {
		t.Errorf("ledger has %d records after Clear(), want 0", len(list))
	}
}

func TestMemorySeedDemo(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()
	SeedDemo(st)

	tableList, err := st.Tables.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(tableList) != 12 {
		t.Errorf("seeded %d tables, want 12", len(tableList))
	}

	menuList, err := st.Menu.List(ctx)
	if err != nil {
		t.Fatalf("Menu.List() error: %v", err)
	}
	if len(menuList) != 12 {
		t.Errorf("seeded %d menu items, want 12", len(menuList))
	}

	employees, err := st.Employees.List(ctx)
	if err != nil {
		t.Fatalf("Employees.List() error: %v", err)
	}
	if len(employees) != 3 {
		t.Errorf("seeded %d employees, want 3", len(employees))
	}

	// seeded occupied tables must read occupied through their order lines
	var occupied int
	for i := range tableList {
		if tableList[i].EffectiveStatus() == tables.StatusOccupied {
			occupied++
			if len(tableList[i].Order) == 0 {
				t.Errorf("table %q occupied without order lines", tableList[i].Name)
			}
		}
	}
	if occupied == 0 {
		t.Error("demo seed has no occupied tables")
	}
}
