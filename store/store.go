// Package store is the storage boundary of the system. Every business rule
// lives above these interfaces; the postgres and memory backends stay
// interchangeable and the memory backend doubles as the test fake.
package store

import (
	"context"
	"mesero_server/database"
	"mesero_server/structs"
	"mesero_server/structs/tables"

	"github.com/google/uuid"
)

// TableStore owns the dining table collection. Get returns lib.ErrNotFound
// for an unknown id; Update replaces the whole record.
type TableStore interface {
	List(ctx context.Context) ([]tables.DiningTable, error)
	Get(ctx context.Context, id uuid.UUID) (*tables.DiningTable, error)
	Insert(ctx context.Context, table *tables.DiningTable) error
	Update(ctx context.Context, table *tables.DiningTable) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MenuStore interface {
	List(ctx context.Context) ([]tables.MenuItem, error)
	Get(ctx context.Context, id uuid.UUID) (*tables.MenuItem, error)
	Upsert(ctx context.Context, item *tables.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionStore is the append-only ledger; List preserves insertion order
// and Clear wipes the whole shift.
type TransactionStore interface {
	List(ctx context.Context) ([]tables.Transaction, error)
	Insert(ctx context.Context, txn *tables.Transaction) error
	Clear(ctx context.Context) error
}

type EmployeeStore interface {
	List(ctx context.Context) ([]tables.Employee, error)
	Get(ctx context.Context, id uuid.UUID) (*tables.Employee, error)
	Upsert(ctx context.Context, employee *tables.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store bundles the four independent collections.
type Store struct {
	Tables       TableStore
	Menu         MenuStore
	Transactions TransactionStore
	Employees    EmployeeStore
}

// New selects the backend configured by STORAGE_BACKEND. db may be nil for
// the memory backend.
func New(cfg *structs.Config, db *database.DB) *Store {
	if cfg.Storage.Backend == "memory" {
		st := NewMemory()
		if cfg.Storage.SeedDemo {
			SeedDemo(st)
		}
		return st
	}
	return NewPostgres(db)
}
