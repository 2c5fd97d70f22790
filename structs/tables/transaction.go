package tables

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is an immutable record of a settled charge. Order is a snapshot
// copy of the table's order at charge time and Total is computed once, never
// recomputed.
type Transaction struct {
	tableName     struct{}  `bun:"table:transactions,alias:tx"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	TableID       uuid.UUID `bun:"table_id,notnull,type:uuid" json:"table_id"`
	TableName     string    `bun:"table_name,notnull" json:"table_name"`
	Order         Order     `bun:"order_lines,type:jsonb" json:"order"`
	Total         uint64    `bun:"total,notnull" json:"total"` // cents
	PaymentMethod string    `bun:"payment_method,notnull" json:"payment_method"`
	Timestamp     time.Time `bun:"timestamp,notnull,default:current_timestamp" json:"timestamp"`
}
