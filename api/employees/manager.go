package employees

import (
	"mesero_server/api/middleware"
	"mesero_server/services"
	"mesero_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type EmployeeRoutesManager struct {
	logger          *gecho.Logger
	employeeService *services.EmployeeService
	mw              *middleware.Middleware
}

func NewEmployeeRoutesManager(
	logger *gecho.Logger,
	employeeService *services.EmployeeService,
	mw *middleware.Middleware,
) *EmployeeRoutesManager {
	return &EmployeeRoutesManager{
		logger:          logger,
		employeeService: employeeService,
		mw:              mw,
	}
}

// Staff management is restricted to cashiers.
func (erm *EmployeeRoutesManager) RegisterRoutes(r chi.Router) {
	cashierOnly := r.With(erm.mw.Authenticated, erm.mw.RequireRole(string(tables.RoleCashier)))

	cashierOnly.Get("/employees", erm.FetchAllEmployees)
	cashierOnly.Post("/employees", erm.UpsertEmployee)
	cashierOnly.Delete("/employees/{id}", erm.DeleteEmployee)
}
