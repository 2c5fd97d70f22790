package services

import (
	"context"
	"encoding/json"
	"fmt"
	"mesero_server/lib"
	"mesero_server/store"
	"mesero_server/structs/tables"
	"sort"
	"strings"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// TableService is the table registry: listing, lookup, creation and the
// delete gate.
type TableService struct {
	logger *gecho.Logger
	store  *store.Store
	cache  *CacheService
}

func NewTableService(logger *gecho.Logger, st *store.Store, cache *CacheService) *TableService {
	return &TableService{
		logger: logger,
		store:  st,
		cache:  cache,
	}
}

// List returns all tables ordered by the numeric suffix of their name.
// Unparsable names sort after parsable ones, in id order; a bad name never
// fails the listing.
func (ts *TableService) List(ctx context.Context) ([]tables.DiningTable, error) {
	if cached, err := ts.cache.Get(cacheKeyTableList); err == nil && cached != "" {
		var list []tables.DiningTable
		if err := json.Unmarshal([]byte(cached), &list); err == nil {
			return list, nil
		}
	}

	list, err := ts.store.Tables.List(ctx)
	if err != nil {
		return nil, err
	}
	sortTables(list)

	if payload, err := json.Marshal(list); err == nil {
		if err := ts.cache.Set(cacheKeyTableList, payload); err != nil {
			ts.logger.Warn("Failed to cache table list", gecho.Field("error", err))
		}
	}

	return list, nil
}

func sortTables(list []tables.DiningTable) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].Number(), list[j].Number()
		if a >= 0 && b >= 0 && a != b {
			return a < b
		}
		if (a >= 0) != (b >= 0) {
			return a >= 0
		}
		return strings.Compare(list[i].ID.String(), list[j].ID.String()) < 0
	})
}

func (ts *TableService) Get(ctx context.Context, id uuid.UUID) (*tables.DiningTable, error) {
	return ts.store.Tables.Get(ctx, id)
}

// Add creates "Mesa {n}" where n is one greater than the highest numeric
// suffix currently in the registry, so deleting a mid-range table never
// mints a duplicate name.
func (ts *TableService) Add(ctx context.Context) (*tables.DiningTable, error) {
	list, err := ts.store.Tables.List(ctx)
	if err != nil {
		return nil, err
	}

	highest := 0
	for i := range list {
		if n := list[i].Number(); n > highest {
			highest = n
		}
	}

	table := &tables.DiningTable{
		ID:     uuid.New(),
		Name:   fmt.Sprintf("Mesa %d", highest+1),
		Status: tables.StatusFree,
		Order:  tables.Order{},
	}

	if err := ts.store.Tables.Insert(ctx, table); err != nil {
		return nil, err
	}

	ts.cache.InvalidateTableList()
	ts.logger.Info("Table added", gecho.Field("table_id", table.ID), gecho.Field("name", table.Name))
	return table, nil
}

// Delete removes a table. A table whose effective status is not free (it
// holds order lines, or is stored occupied or reserved) is rejected with a
// conflict.
func (ts *TableService) Delete(ctx context.Context, id uuid.UUID) error {
	table, err := ts.store.Tables.Get(ctx, id)
	if err != nil {
		return err
	}

	if table.EffectiveStatus() != tables.StatusFree {
		return lib.ErrConflict
	}

	if err := ts.store.Tables.Delete(ctx, id); err != nil {
		return err
	}

	ts.cache.InvalidateTable(id)
	ts.logger.Info("Table deleted", gecho.Field("table_id", id), gecho.Field("name", table.Name))
	return nil
}
