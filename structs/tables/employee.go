package tables

import (
	"github.com/google/uuid"
)

type EmployeeRole string

const (
	RoleWaiter  EmployeeRole = "waiter"
	RoleCashier EmployeeRole = "cashier"
)

type Employee struct {
	tableName struct{}     `bun:"table:employees,alias:e"`
	ID        uuid.UUID    `bun:"id,pk,type:uuid" json:"id" validate:"omitempty"`
	Name      string       `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Role      EmployeeRole `bun:"role,notnull" json:"role" validate:"required,oneof=waiter cashier"`
	Pin       string       `bun:"pin,notnull" json:"pin" validate:"required,numeric,min=4,max=8"`
}
