package store

import (
	"context"
	"mesero_server/lib"
	"mesero_server/structs/tables"
	"sync"

	"github.com/google/uuid"
)

// NewMemory builds mutex-guarded in-memory collections. Readers get copies;
// a returned record never aliases stored state.
func NewMemory() *Store {
	return &Store{
		Tables:       &memTableStore{records: map[uuid.UUID]tables.DiningTable{}},
		Menu:         &memMenuStore{records: map[uuid.UUID]tables.MenuItem{}},
		Transactions: &memTransactionStore{},
		Employees:    &memEmployeeStore{records: map[uuid.UUID]tables.Employee{}},
	}
}

type memTableStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]tables.DiningTable
}

func copyTable(t tables.DiningTable) tables.DiningTable {
	t.Order = t.Order.Clone()
	return t
}

func (s *memTableStore) List(ctx context.Context) ([]tables.DiningTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tables.DiningTable, 0, len(s.records))
	for _, t := range s.records {
		out = append(out, copyTable(t))
	}
	return out, nil
}

func (s *memTableStore) Get(ctx context.Context, id uuid.UUID) (*tables.DiningTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.records[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	t = copyTable(t)
	return &t, nil
}

func (s *memTableStore) Insert(ctx context.Context, table *tables.DiningTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[table.ID]; ok {
		return lib.ErrConflict
	}
	s.records[table.ID] = copyTable(*table)
	return nil
}

func (s *memTableStore) Update(ctx context.Context, table *tables.DiningTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[table.ID]; !ok {
		return lib.ErrNotFound
	}
	s.records[table.ID] = copyTable(*table)
	return nil
}

func (s *memTableStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return lib.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

type memMenuStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]tables.MenuItem
}

func (s *memMenuStore) List(ctx context.Context) ([]tables.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tables.MenuItem, 0, len(s.records))
	for _, m := range s.records {
		out = append(out, m)
	}
	return out, nil
}

func (s *memMenuStore) Get(ctx context.Context, id uuid.UUID) (*tables.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.records[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &m, nil
}

func (s *memMenuStore) Upsert(ctx context.Context, item *tables.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[item.ID] = *item
	return nil
}

func (s *memMenuStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return lib.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// memTransactionStore keeps the ledger as a slice to preserve insertion order.
type memTransactionStore struct {
	mu      sync.RWMutex
	records []tables.Transaction
}

func (s *memTransactionStore) List(ctx context.Context) ([]tables.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tables.Transaction, 0, len(s.records))
	for _, txn := range s.records {
		txn.Order = txn.Order.Clone()
		out = append(out, txn)
	}
	return out, nil
}

func (s *memTransactionStore) Insert(ctx context.Context, txn *tables.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := *txn
	record.Order = record.Order.Clone()
	s.records = append(s.records, record)
	return nil
}

func (s *memTransactionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}

type memEmployeeStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]tables.Employee
}

func (s *memEmployeeStore) List(ctx context.Context) ([]tables.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tables.Employee, 0, len(s.records))
	for _, e := range s.records {
		out = append(out, e)
	}
	return out, nil
}

func (s *memEmployeeStore) Get(ctx context.Context, id uuid.UUID) (*tables.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.records[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &e, nil
}

func (s *memEmployeeStore) Upsert(ctx context.Context, employee *tables.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[employee.ID] = *employee
	return nil
}

func (s *memEmployeeStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return lib.ErrNotFound
	}
	delete(s.records, id)
	return nil
}
