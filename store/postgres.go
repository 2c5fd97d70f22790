package store

import (
	"context"
	"mesero_server/database"
	"mesero_server/lib"
	"mesero_server/structs/tables"

	"github.com/google/uuid"
)

// NewPostgres wires the four collections onto bun-backed tables.
func NewPostgres(db *database.DB) *Store {
	return &Store{
		Tables:       &pgTableStore{db: db},
		Menu:         &pgMenuStore{db: db},
		Transactions: &pgTransactionStore{db: db},
		Employees:    &pgEmployeeStore{db: db},
	}
}

type pgTableStore struct {
	db *database.DB
}

func (s *pgTableStore) List(ctx context.Context) ([]tables.DiningTable, error) {
	list, err := database.Query[tables.DiningTable](s.db).All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return list, nil
}

func (s *pgTableStore) Get(ctx context.Context, id uuid.UUID) (*tables.DiningTable, error) {
	table, err := database.Query[tables.DiningTable](s.db).Where("id", id).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if table == nil {
		return nil, lib.ErrNotFound
	}
	return table, nil
}

func (s *pgTableStore) Insert(ctx context.Context, table *tables.DiningTable) error {
	_, err := database.Query[tables.DiningTable](s.db).Insert(ctx, table)
	return lib.MapPgError(err)
}

func (s *pgTableStore) Update(ctx context.Context, table *tables.DiningTable) error {
	rows, err := database.Query[tables.DiningTable](s.db).Where("id", table.ID).Update(ctx, table)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}

func (s *pgTableStore) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.DiningTable](s.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}

type pgMenuStore struct {
	db *database.DB
}

func (s *pgMenuStore) List(ctx context.Context) ([]tables.MenuItem, error) {
	list, err := database.Query[tables.MenuItem](s.db).OrderBy("category", database.ASC).OrderBy("name", database.ASC).All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return list, nil
}

func (s *pgMenuStore) Get(ctx context.Context, id uuid.UUID) (*tables.MenuItem, error) {
	item, err := database.Query[tables.MenuItem](s.db).Where("id", id).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if item == nil {
		return nil, lib.ErrNotFound
	}
	return item, nil
}

func (s *pgMenuStore) Upsert(ctx context.Context, item *tables.MenuItem) error {
	rows, err := database.Query[tables.MenuItem](s.db).Where("id", item.ID).Update(ctx, item)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		_, err = database.Query[tables.MenuItem](s.db).Insert(ctx, item)
		return lib.MapPgError(err)
	}
	return nil
}

func (s *pgMenuStore) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.MenuItem](s.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}

type pgTransactionStore struct {
	db *database.DB
}

func (s *pgTransactionStore) List(ctx context.Context) ([]tables.Transaction, error) {
	list, err := database.Query[tables.Transaction](s.db).OrderBy("timestamp", database.ASC).All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return list, nil
}

func (s *pgTransactionStore) Insert(ctx context.Context, txn *tables.Transaction) error {
	_, err := database.Query[tables.Transaction](s.db).Insert(ctx, txn)
	return lib.MapPgError(err)
}

func (s *pgTransactionStore) Clear(ctx context.Context) error {
	return lib.MapPgError(database.Query[tables.Transaction](s.db).Truncate(ctx))
}

type pgEmployeeStore struct {
	db *database.DB
}

func (s *pgEmployeeStore) List(ctx context.Context) ([]tables.Employee, error) {
	list, err := database.Query[tables.Employee](s.db).OrderBy("name", database.ASC).All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return list, nil
}

func (s *pgEmployeeStore) Get(ctx context.Context, id uuid.UUID) (*tables.Employee, error) {
	employee, err := database.Query[tables.Employee](s.db).Where("id", id).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if employee == nil {
		return nil, lib.ErrNotFound
	}
	return employee, nil
}

func (s *pgEmployeeStore) Upsert(ctx context.Context, employee *tables.Employee) error {
	rows, err := database.Query[tables.Employee](s.db).Where("id", employee.ID).Update(ctx, employee)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		_, err = database.Query[tables.Employee](s.db).Insert(ctx, employee)
		return lib.MapPgError(err)
	}
	return nil
}

func (s *pgEmployeeStore) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.Employee](s.db).Where("id", id).Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}
	return nil
}
