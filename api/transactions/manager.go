package transactions

import (
	"mesero_server/api/middleware"
	"mesero_server/services"
	"mesero_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type TransactionRoutesManager struct {
	logger             *gecho.Logger
	transactionService *services.TransactionService
	mw                 *middleware.Middleware
}

func NewTransactionRoutesManager(
	logger *gecho.Logger,
	transactionService *services.TransactionService,
	mw *middleware.Middleware,
) *TransactionRoutesManager {
	return &TransactionRoutesManager{
		logger:             logger,
		transactionService: transactionService,
		mw:                 mw,
	}
}

func (trm *TransactionRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/transactions", trm.FetchTransactions)
	r.Get("/transactions/summary", trm.GetShiftSummary)

	// Closing the shift wipes the ledger, so only cashiers may do it.
	r.With(trm.mw.Authenticated, trm.mw.RequireRole(string(tables.RoleCashier))).
		Delete("/transactions", trm.CloseShift)
}
