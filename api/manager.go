package api

import (
	"mesero_server/api/auth"
	"mesero_server/api/employees"
	"mesero_server/api/health"
	"mesero_server/api/menu"
	"mesero_server/api/tables"
	"mesero_server/api/transactions"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	tableRoutes       *tables.TableRoutesManager
	transactionRoutes *transactions.TransactionRoutesManager
	menuRoutes        *menu.MenuRoutesManager
	employeeRoutes    *employees.EmployeeRoutesManager
	authRoutes        *auth.AuthRoutesManager
	healthRoutes      *health.HealthRoutesManager
}

func NewRouterManager(
	tableRoutes *tables.TableRoutesManager,
	transactionRoutes *transactions.TransactionRoutesManager,
	menuRoutes *menu.MenuRoutesManager,
	employeeRoutes *employees.EmployeeRoutesManager,
	authRoutes *auth.AuthRoutesManager,
	healthRoutes *health.HealthRoutesManager,
) *routerManager {
	return &routerManager{
		tableRoutes:       tableRoutes,
		transactionRoutes: transactionRoutes,
		menuRoutes:        menuRoutes,
		employeeRoutes:    employeeRoutes,
		authRoutes:        authRoutes,
		healthRoutes:      healthRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.tableRoutes.RegisterRoutes(r)
	rm.transactionRoutes.RegisterRoutes(r)
	rm.menuRoutes.RegisterRoutes(r)
	rm.employeeRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
