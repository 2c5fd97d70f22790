package store

import (
	"context"
	"fmt"
	"mesero_server/structs/tables"

	"github.com/google/uuid"
)

// SeedDemo loads the demo restaurant into a store: a twelve-item Peruvian
// menu, twelve tables (three mid-service), and three staff members. Used by
// the memory backend for local development and demos.
func SeedDemo(st *Store) {
	ctx := context.Background()

	menu := []tables.MenuItem{
		{ID: uuid.New(), Name: "Ceviche Clásico", Price: 1800, Category: tables.CategoryEntradas},
		{ID: uuid.New(), Name: "Causa Limeña", Price: 1400, Category: tables.CategoryEntradas},
		{ID: uuid.New(), Name: "Papa a la Huancaína", Price: 1200, Category: tables.CategoryEntradas},
		{ID: uuid.New(), Name: "Lomo Saltado", Price: 2200, Category: tables.CategoryPlatosPrincipales},
		{ID: uuid.New(), Name: "Ají de Gallina", Price: 1950, Category: tables.CategoryPlatosPrincipales},
		{ID: uuid.New(), Name: "Arroz con Pollo", Price: 1700, Category: tables.CategoryPlatosPrincipales},
		{ID: uuid.New(), Name: "Suspiro a la Limeña", Price: 900, Category: tables.CategoryPostres},
		{ID: uuid.New(), Name: "Picarones", Price: 850, Category: tables.CategoryPostres},
		{ID: uuid.New(), Name: "Mazamorra Morada", Price: 750, Category: tables.CategoryPostres},
		{ID: uuid.New(), Name: "Chicha Morada", Price: 400, Category: tables.CategoryBebidas},
		{ID: uuid.New(), Name: "Inca Kola", Price: 350, Category: tables.CategoryBebidas},
		{ID: uuid.New(), Name: "Pisco Sour", Price: 1000, Category: tables.CategoryBebidas},
	}
	for i := range menu {
		_ = st.Menu.Upsert(ctx, &menu[i])
	}

	type seedOrder struct {
		order  tables.Order
		waiter string
	}
	orders := map[int]seedOrder{
		2: {
			order: tables.Order{
				menu[3].Line(1, "Término medio"),
				menu[4].Line(1, ""),
				menu[10].Line(2, "Con hielo"),
			},
			waiter: "Juan Pérez",
		},
		5: {
			order: tables.Order{
				menu[0].Line(2, "Sin ají"),
				menu[9].Line(1, ""),
				menu[11].Line(1, ""),
			},
			waiter: "Carlos Rivas",
		},
		8: {
			order: tables.Order{
				menu[6].Line(2, ""),
				menu[7].Line(2, "Miel extra"),
			},
			waiter: "Juan Pérez",
		},
	}
	reserved := map[int]bool{4: true, 10: true}

	for n := 1; n <= 12; n++ {
		table := tables.DiningTable{
			ID:     uuid.New(),
			Name:   fmt.Sprintf("Mesa %d", n),
			Status: tables.StatusFree,
			Order:  tables.Order{},
		}
		if reserved[n] {
			table.Status = tables.StatusReserved
		}
		if seed, ok := orders[n]; ok {
			table.ApplyOrder(seed.order, seed.waiter)
		}
		_ = st.Tables.Insert(ctx, &table)
	}

	staff := []tables.Employee{
		{ID: uuid.New(), Name: "Juan Pérez", Role: tables.RoleWaiter, Pin: "1234"},
		{ID: uuid.New(), Name: "María García", Role: tables.RoleCashier, Pin: "5678"},
		{ID: uuid.New(), Name: "Carlos Rivas", Role: tables.RoleWaiter, Pin: "1111"},
	}
	for i := range staff {
		_ = st.Employees.Upsert(ctx, &staff[i])
	}
}
