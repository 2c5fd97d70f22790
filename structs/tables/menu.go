package tables

import (
	"github.com/google/uuid"
)

type MenuCategory string

const (
	CategoryEntradas          MenuCategory = "Entradas"
	CategoryPlatosPrincipales MenuCategory = "Platos Principales"
	CategoryPostres           MenuCategory = "Postres"
	CategoryBebidas           MenuCategory = "Bebidas"
)

type MenuItem struct {
	tableName struct{}     `bun:"table:menu_items,alias:mi"`
	ID        uuid.UUID    `bun:"id,pk,type:uuid" json:"id" validate:"omitempty"`
	Name      string       `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Price     uint64       `bun:"price,notnull" json:"price"` // stored in cents
	Category  MenuCategory `bun:"category,notnull" json:"category" validate:"required,oneof='Entradas' 'Platos Principales' 'Postres' 'Bebidas'"`
}

// Line snapshots the item into an order line at its current name and price.
func (m MenuItem) Line(quantity int, notes string) OrderLine {
	return OrderLine{
		MenuItemID: m.ID,
		Name:       m.Name,
		Price:      m.Price,
		Category:   m.Category,
		Quantity:   quantity,
		Notes:      notes,
	}
}
