package services

import (
	"context"
	"mesero_server/messaging"
	"mesero_server/store"
	"mesero_server/structs"
	"mesero_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// OrderService applies order updates to tables. The update is a wholesale
// replace: the caller composes the new line list (add, increment, remove)
// and the service derives status and waiter from the result.
type OrderService struct {
	logger *gecho.Logger
	store  *store.Store
	cache  *CacheService
	events *messaging.Publisher
}

func NewOrderService(logger *gecho.Logger, st *store.Store, cache *CacheService, events *messaging.Publisher) *OrderService {
	return &OrderService{
		logger: logger,
		store:  st,
		cache:  cache,
		events: events,
	}
}

// UpdateOrder replaces the table's order and recomputes its stored status
// and waiter name. Unknown tables fail with NotFound and nothing is written.
func (os *OrderService) UpdateOrder(ctx context.Context, tableID uuid.UUID, newOrder tables.Order, waiterName string) (*tables.DiningTable, error) {
	table, err := os.store.Tables.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	table.ApplyOrder(newOrder, waiterName)

	if err := os.store.Tables.Update(ctx, table); err != nil {
		return nil, err
	}

	os.cache.InvalidateTable(tableID)
	os.publishOrderUpdated(ctx, table)

	os.logger.Debug("Order updated",
		gecho.Field("table_id", tableID),
		gecho.Field("lines", len(table.Order)),
		gecho.Field("status", table.Status),
	)

	return table, nil
}

func (os *OrderService) publishOrderUpdated(ctx context.Context, table *tables.DiningTable) {
	err := os.events.Publish(ctx, structs.EventOrderUpdated, structs.OrderUpdatedEvent{
		TableID:    table.ID,
		TableName:  table.Name,
		LineCount:  len(table.Order),
		Status:     string(table.EffectiveStatus()),
		WaiterName: table.WaiterName,
		OccurredAt: time.Now(),
	})
	if err != nil {
		os.logger.Warn("Failed to publish order event", gecho.Field("error", err), gecho.Field("table_id", table.ID))
	}
}
