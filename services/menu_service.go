package services

import (
	"context"
	"encoding/json"
	"mesero_server/store"
	"mesero_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// MenuService is the catalog: read-mostly, mutated only by administrative
// upsert and delete. Edits never rewrite order lines already recorded on a
// table or in the ledger; those hold snapshots.
type MenuService struct {
	logger *gecho.Logger
	store  *store.Store
	cache  *CacheService
}

func NewMenuService(logger *gecho.Logger, st *store.Store, cache *CacheService) *MenuService {
	return &MenuService{
		logger: logger,
		store:  st,
		cache:  cache,
	}
}

func (ms *MenuService) List(ctx context.Context) ([]tables.MenuItem, error) {
	if cached, err := ms.cache.Get(cacheKeyMenuList); err == nil && cached != "" {
		var list []tables.MenuItem
		if err := json.Unmarshal([]byte(cached), &list); err == nil {
			return list, nil
		}
	}

	list, err := ms.store.Menu.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(list); err == nil {
		if err := ms.cache.Set(cacheKeyMenuList, payload); err != nil {
			ms.logger.Warn("Failed to cache menu", gecho.Field("error", err))
		}
	}

	return list, nil
}

func (ms *MenuService) Get(ctx context.Context, id uuid.UUID) (*tables.MenuItem, error) {
	return ms.store.Menu.Get(ctx, id)
}

// Upsert saves an item, minting an id for a new one.
func (ms *MenuService) Upsert(ctx context.Context, item *tables.MenuItem) (*tables.MenuItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	if err := ms.store.Menu.Upsert(ctx, item); err != nil {
		return nil, err
	}

	ms.cache.InvalidateMenu()
	ms.logger.Info("Menu item saved", gecho.Field("item_id", item.ID), gecho.Field("name", item.Name))
	return item, nil
}

func (ms *MenuService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ms.store.Menu.Delete(ctx, id); err != nil {
		return err
	}

	ms.cache.InvalidateMenu()
	ms.logger.Info("Menu item deleted", gecho.Field("item_id", id))
	return nil
}
