package services

import (
	"context"
	"errors"
	"mesero_server/lib"
	"mesero_server/structs/tables"
	"testing"

	"github.com/google/uuid"
)

func TestTableServiceAddNumbering(t *testing.T) {
	ctx := context.Background()
	sm, st := newTestManager(t)

	seedTable(t, st, "Mesa 1", nil, "")
	seedTable(t, st, "Mesa 3", nil, "")

	table, err := sm.TableService.Add(ctx)
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if table.Name != "Mesa 4" {
		t.Errorf("Add() name = %q, want %q (one past the highest, not count+1)", table.Name, "Mesa 4")
	}
	if table.Status != tables.StatusFree {
		t.Errorf("new table status = %v, want %v", table.Status, tables.StatusFree)
	}
}

func TestTableServiceAddEmptyRegistry(t *testing.T) {
	ctx := context.Background()
	sm, _ := newTestManager(t)

	table, err := sm.TableService.Add(ctx)
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if table.Name != "Mesa 1" {
		t.Errorf("Add() name = %q, want %q", table.Name, "Mesa 1")
	}
}

func TestTableServiceListSorting(t *testing.T) {
	ctx := context.Background()
	sm, st := newTestManager(t)

	seedTable(t, st, "Mesa 10", nil, "")
	seedTable(t, st, "Mesa 2", nil, "")
	seedTable(t, st, "Terraza", nil, "")
	seedTable(t, st, "Mesa 1", nil, "")

	list, err := sm.TableService.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("List() returned %d tables, want 4", len(list))
	}

	wantOrder := []string{"Mesa 1", "Mesa 2", "Mesa 10"}
	for i, want := range wantOrder {
		if list[i].Name != want {
			t.Errorf("list[%d].Name = %q, want %q", i, list[i].Name, want)
		}
	}
	if list[3].Name != "Terraza" {
		t.Errorf("unparsable name should sort last, got %q", list[3].Name)
	}
}

func TestTableServiceDeleteGating(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		order   tables.Order
		status  tables.TableStatus
		wantErr error
	}{
		{
			name:    "free table deletes",
			status:  tables.StatusFree,
			wantErr: nil,
		},
		{
			name:    "reserved table is refused",
			status:  tables.StatusReserved,
			wantErr: lib.ErrConflict,
		},
		{
			name:    "table with order lines is refused",
			order:   tables.Order{menuLine("Ceviche", 1800, 1)},
			status:  tables.StatusFree,
			wantErr: lib.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm, st := newTestManager(t)
			table := seedTable(t, st, "Mesa 1", tt.order, "")
			if len(tt.order) == 0 {
				table.Status = tt.status
				if err := st.Tables.Update(ctx, table); err != nil {
					t.Fatalf("updating status: %v", err)
				}
			}

			err := sm.TableService.Delete(ctx, table.ID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Delete() error = %v, want %v", err, tt.wantErr)
			}

			_, getErr := st.Tables.Get(ctx, table.ID)
			if tt.wantErr == nil && !errors.Is(getErr, lib.ErrNotFound) {
				t.Errorf("table still present after delete")
			}
			if tt.wantErr != nil && getErr != nil {
				t.Errorf("refused delete removed the table anyway: %v", getErr)
			}
		})
	}
}

func TestTableServiceDeleteUnknown(t *testing.T) {
	sm, _ := newTestManager(t)

	err := sm.TableService.Delete(context.Background(), uuid.New())
	if !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("Delete() on unknown id = %v, want %v", err, lib.ErrNotFound)
	}
}
