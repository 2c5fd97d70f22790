package services

import (
	"context"
	"mesero_server/lib"
	"mesero_server/messaging"
	"mesero_server/store"
	"mesero_server/structs"
	"mesero_server/structs/tables"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// PaymentService runs the two-phase settlement. Phase 1 records the charge
// and leaves the table untouched so concurrent viewers keep a payable table;
// phase 2 releases it once the cashier dismisses the receipt. The settlement
// token returned by phase 1 and consumed by phase 2 is what stops a stray
// finalize from wiping a live order.
type PaymentService struct {
	logger *gecho.Logger
	store  *store.Store
	cache  *CacheService
	events *messaging.Publisher

	mu      sync.Mutex
	pending map[uuid.UUID]uuid.UUID // table id -> settlement token
}

func NewPaymentService(logger *gecho.Logger, st *store.Store, cache *CacheService, events *messaging.Publisher) *PaymentService {
	return &PaymentService{
		logger:  logger,
		store:   st,
		cache:   cache,
		events:  events,
		pending: make(map[uuid.UUID]uuid.UUID),
	}
}

// ProcessPayment charges the table's current order: it appends an immutable
// transaction to the ledger and returns a receipt. The table keeps its order
// and occupied status until FinalizePayment. Calling this twice records two
// transactions; the newer settlement token supersedes the older.
func (ps *PaymentService) ProcessPayment(ctx context.Context, tableID uuid.UUID, paymentMethod string) (*structs.Receipt, error) {
	table, err := ps.store.Tables.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	if len(table.Order) == 0 {
		return nil, lib.ErrEmptyOrder
	}

	total := table.Order.Total()

	txn := &tables.Transaction{
		ID:            uuid.New(),
		TableID:       table.ID,
		TableName:     table.Name,
		Order:         table.Order.Clone(),
		Total:         total,
		PaymentMethod: paymentMethod,
		Timestamp:     time.Now(),
	}

	if err := ps.store.Transactions.Insert(ctx, txn); err != nil {
		return nil, err
	}

	token := uuid.New()
	ps.mu.Lock()
	ps.pending[tableID] = token
	ps.mu.Unlock()

	ps.publishPaymentProcessed(ctx, txn)

	ps.logger.Info("Payment processed",
		gecho.Field("table_id", tableID),
		gecho.Field("total", total),
		gecho.Field("payment_method", paymentMethod),
	)

	// The receipt carries its own copy so UI rendering can never touch the
	// ledger snapshot.
	return &structs.Receipt{
		TableName:       table.Name,
		Order:           table.Order.Clone(),
		Total:           total,
		SettlementToken: token,
	}, nil
}

// FinalizePayment releases the table after the receipt is dismissed: order
// cleared, status free, waiter cleared. An already-released table is an
// idempotent success. A table still holding an order is released only when
// the token matches the most recent charge; otherwise the call is a
// conflict and the order stays intact.
func (ps *PaymentService) FinalizePayment(ctx context.Context, tableID uuid.UUID, token uuid.UUID) error {
	table, err := ps.store.Tables.Get(ctx, tableID)
	if err != nil {
		return err
	}

	if len(table.Order) == 0 {
		ps.mu.Lock()
		delete(ps.pending, tableID)
		ps.mu.Unlock()
		return nil
	}

	ps.mu.Lock()
	expected, ok := ps.pending[tableID]
	ps.mu.Unlock()
	if !ok || expected != token {
		ps.logger.Warn("Finalize rejected without a matching settlement",
			gecho.Field("table_id", tableID),
		)
		return lib.ErrConflict
	}

	table.ApplyOrder(tables.Order{}, "")

	if err := ps.store.Tables.Update(ctx, table); err != nil {
		return err
	}

	ps.mu.Lock()
	delete(ps.pending, tableID)
	ps.mu.Unlock()

	ps.cache.InvalidateTable(tableID)
	ps.publishTableReleased(ctx, table)

	ps.logger.Info("Table released", gecho.Field("table_id", tableID), gecho.Field("name", table.Name))
	return nil
}

func (ps *PaymentService) publishPaymentProcessed(ctx context.Context, txn *tables.Transaction) {
	err := ps.events.Publish(ctx, structs.EventPaymentProcessed, structs.PaymentProcessedEvent{
		TableID:       txn.TableID,
		TableName:     txn.TableName,
		Total:         txn.Total,
		PaymentMethod: txn.PaymentMethod,
		OccurredAt:    time.Now(),
	})
	if err != nil {
		ps.logger.Warn("Failed to publish payment event", gecho.Field("error", err), gecho.Field("table_id", txn.TableID))
	}
}

func (ps *PaymentService) publishTableReleased(ctx context.Context, table *tables.DiningTable) {
	err := ps.events.Publish(ctx, structs.EventTableReleased, structs.TableReleasedEvent{
		TableID:    table.ID,
		TableName:  table.Name,
		OccurredAt: time.Now(),
	})
	if err != nil {
		ps.logger.Warn("Failed to publish release event", gecho.Field("error", err), gecho.Field("table_id", table.ID))
	}
}
