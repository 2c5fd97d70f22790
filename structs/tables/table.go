package tables

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type TableStatus string

const (
	StatusFree     TableStatus = "free"
	StatusOccupied TableStatus = "occupied"
	StatusReserved TableStatus = "reserved"
)

// OrderLine is one menu item on a table's order. Name, price and category are
// snapshots taken when the line was added; later menu edits never rewrite them.
type OrderLine struct {
	MenuItemID uuid.UUID    `json:"menu_item_id" validate:"required"`
	Name       string       `json:"name" validate:"required,min=2,max=100"`
	Price      uint64       `json:"price"` // stored in cents
	Category   MenuCategory `json:"category"`
	Quantity   int          `json:"quantity"`
	Notes      string       `json:"notes,omitempty" validate:"omitempty,max=200"` // empty string and absent are equivalent
}

// Order is the list of lines attached to a table, at most one line per menu item.
type Order []OrderLine

// DiningTable is one physical table. Status is the *stored* status; every
// display or gating decision goes through EffectiveStatus instead.
type DiningTable struct {
	tableName  struct{}    `bun:"table:dining_tables,alias:dt"`
	ID         uuid.UUID   `bun:"id,pk,type:uuid" json:"id"`
	Name       string      `bun:"name,notnull" json:"name"`
	Status     TableStatus `bun:"status,notnull,default:'free'" json:"status" validate:"omitempty,oneof=free occupied reserved"`
	Order      Order       `bun:"order_lines,type:jsonb" json:"order"`
	WaiterName string      `bun:"waiter_name" json:"waiter_name,omitempty"`
}

// EffectiveStatus derives the status every view must use: a table holding
// order lines reads as occupied no matter what is stored.
func (t *DiningTable) EffectiveStatus() TableStatus {
	if len(t.Order) > 0 {
		return StatusOccupied
	}
	return t.Status
}

// ApplyOrder replaces the order wholesale and recomputes the stored status and
// waiter name. An empty order frees the table and clears the waiter; a
// non-empty order occupies it and adopts waiterName when one is given.
func (t *DiningTable) ApplyOrder(newOrder Order, waiterName string) {
	t.Order = newOrder.Normalize()
	if len(t.Order) == 0 {
		t.Status = StatusFree
		t.WaiterName = ""
		return
	}
	t.Status = StatusOccupied
	if waiterName != "" {
		t.WaiterName = waiterName
	}
}

// Number extracts the numeric suffix of a "Mesa N" name. Returns -1 when the
// name does not parse; callers fall back to id ordering, never an error.
func (t *DiningTable) Number() int {
	parts := strings.Fields(t.Name)
	if len(parts) < 2 {
		return -1
	}
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return -1
	}
	return n
}

// Normalize collapses duplicate menu item ids (summing quantities, first
// non-empty notes wins) and drops lines whose quantity ended up at or below
// zero. Stored orders are always normalized.
func (o Order) Normalize() Order {
	if len(o) == 0 {
		return Order{}
	}
	out := make(Order, 0, len(o))
	index := make(map[uuid.UUID]int, len(o))
	for _, line := range o {
		if i, ok := index[line.MenuItemID]; ok {
			out[i].Quantity += line.Quantity
			if out[i].Notes == "" {
				out[i].Notes = line.Notes
			}
			continue
		}
		index[line.MenuItemID] = len(out)
		out = append(out, line)
	}
	filtered := out[:0]
	for _, line := range out {
		if line.Quantity > 0 {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

// Total is the sum of price*quantity over all lines, in cents.
func (o Order) Total() uint64 {
	var total uint64
	for _, line := range o {
		total += line.Price * uint64(line.Quantity)
	}
	return total
}

// Clone deep-copies the order so ledger snapshots and receipts never alias a
// table's live order.
func (o Order) Clone() Order {
	out := make(Order, len(o))
	copy(out, o)
	return out
}

// WithItem adds one unit of item. An existing line is incremented in place,
// keeping its notes.
func (o Order) WithItem(item MenuItem) Order {
	out := o.Clone()
	for i := range out {
		if out[i].MenuItemID == item.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, item.Line(1, ""))
}

// WithQuantity sets the quantity of a line; a quantity at or below zero
// removes the line entirely.
func (o Order) WithQuantity(menuItemID uuid.UUID, quantity int) Order {
	out := make(Order, 0, len(o))
	for _, line := range o {
		if line.MenuItemID == menuItemID {
			line.Quantity = quantity
		}
		if line.Quantity > 0 {
			out = append(out, line)
		}
	}
	return out
}

// WithNotes updates a line's notes without touching its quantity.
func (o Order) WithNotes(menuItemID uuid.UUID, notes string) Order {
	out := o.Clone()
	for i := range out {
		if out[i].MenuItemID == menuItemID {
			out[i].Notes = notes
		}
	}
	return out
}
