package tables

import (
	"mesero_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type TableRoutesManager struct {
	logger         *gecho.Logger
	tableService   *services.TableService
	orderService   *services.OrderService
	paymentService *services.PaymentService
}

func NewTableRoutesManager(
	logger *gecho.Logger,
	tableService *services.TableService,
	orderService *services.OrderService,
	paymentService *services.PaymentService,
) *TableRoutesManager {
	return &TableRoutesManager{
		logger:         logger,
		tableService:   tableService,
		orderService:   orderService,
		paymentService: paymentService,
	}
}

func (trm *TableRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/tables", trm.FetchAllTables)
	r.Get("/tables/{id}", trm.FetchTableByID)
	r.Post("/tables", trm.AddTable)
	r.Delete("/tables/{id}", trm.DeleteTable)

	r.Put("/tables/{id}/order", trm.UpdateOrder)
	r.Post("/tables/{id}/payment", trm.ProcessPayment)
	r.Post("/tables/{id}/payment/finalize", trm.FinalizePayment)
}
