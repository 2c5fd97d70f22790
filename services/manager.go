package services

import (
	"mesero_server/database"
	"mesero_server/messaging"
	"mesero_server/store"
	"mesero_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService        *AuthService
	CacheService       *CacheService
	EmailService       *EmailService
	HealthService      *HealthService
	TableService       *TableService
	OrderService       *OrderService
	PaymentService     *PaymentService
	TransactionService *TransactionService
	MenuService        *MenuService
	EmployeeService    *EmployeeService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, st *store.Store, db *database.DB, events *messaging.Publisher) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, cfg, db)
	tableService := NewTableService(logger, st, cacheService)
	orderService := NewOrderService(logger, st, cacheService, events)
	paymentService := NewPaymentService(logger, st, cacheService, events)
	transactionService := NewTransactionService(logger, st, emailService)
	menuService := NewMenuService(logger, st, cacheService)
	employeeService := NewEmployeeService(logger, st)
	authService := NewAuthService(logger, cfg, employeeService)

	return &ServiceManager{
		AuthService:        authService,
		CacheService:       cacheService,
		EmailService:       emailService,
		HealthService:      healthService,
		TableService:       tableService,
		OrderService:       orderService,
		PaymentService:     paymentService,
		TransactionService: transactionService,
		MenuService:        menuService,
		EmployeeService:    employeeService,
	}
}
