package services

import (
	"context"
	"mesero_server/store"
	"mesero_server/structs"
	"mesero_server/structs/tables"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// newTestManager wires the full service graph against the in-memory backend,
// with caching, email and events disabled.
func newTestManager(t *testing.T) (*ServiceManager, *store.Store) {
	t.Helper()

	cfg := &structs.Config{
		Storage: &structs.StorageConfig{Backend: "memory"},
		Cache:   &structs.CacheConfig{Enabled: false},
		Auth: &structs.AuthConfig{
			AccessTokenSecret: "test_secret",
			AccessTokenExpiry: time.Hour,
		},
		Email:  &structs.EmailConfig{},
		Events: &structs.EventsConfig{},
	}

	st := store.NewMemory()
	sm := NewServiceManager(gecho.NewDefaultLogger(), cfg, st, nil, nil)
	return sm, st
}

func seedTable(t *testing.T, st *store.Store, name string, order tables.Order, waiter string) *tables.DiningTable {
	t.Helper()

	table := &tables.DiningTable{
		ID:     uuid.New(),
		Name:   name,
		Status: tables.StatusFree,
		Order:  tables.Order{},
	}
	table.ApplyOrder(order, waiter)

	if err := st.Tables.Insert(context.Background(), table); err != nil {
		t.Fatalf("seeding table %q: %v", name, err)
	}
	return table
}

func menuLine(name string, price uint64, quantity int) tables.OrderLine {
	return tables.OrderLine{
		MenuItemID: uuid.New(),
		Name:       name,
		Price:      price,
		Category:   tables.CategoryPlatosPrincipales,
		Quantity:   quantity,
	}
}
