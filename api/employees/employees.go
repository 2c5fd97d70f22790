package employees

import (
	"mesero_server/handling"
	"mesero_server/lib"
	"mesero_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchAllEmployees handles GET /employees
func (erm *EmployeeRoutesManager) FetchAllEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := erm.employeeService.List(ctx)
	if err != nil {
		handling.RespondServiceError(w, erm.logger, err, "Failed to fetch employees")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"employees": list,
			"count":     len(list),
		}),
		gecho.Send(),
	)
}

// UpsertEmployee handles POST /employees. A zero ID registers a new employee,
// a known ID updates the existing record.
func (erm *EmployeeRoutesManager) UpsertEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := lib.ExtractAndValidateBody[tables.Employee](r)
	if err != nil {
		handling.RespondBodyError(w, err)
		return
	}

	employee, err := erm.employeeService.Upsert(ctx, body)
	if err != nil {
		handling.RespondServiceError(w, erm.logger, err, "Failed to save employee")
		return
	}

	erm.logger.Info("Employee saved",
		gecho.Field("employee_id", employee.ID),
		gecho.Field("role", employee.Role),
	)

	gecho.Success(w,
		gecho.WithMessage("Empleado guardado"),
		gecho.WithData(map[string]any{
			"employee": employee,
		}),
		gecho.Send(),
	)
}

// DeleteEmployee handles DELETE /employees/{id}
func (erm *EmployeeRoutesManager) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		erm.logger.Warn("Invalid employee ID format", gecho.Field("id", idStr))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid employee ID"),
			gecho.Send(),
		)
		return
	}

	if err := erm.employeeService.Delete(ctx, id); err != nil {
		handling.RespondServiceError(w, erm.logger, err, "Employee not found")
		return
	}

	erm.logger.Info("Employee deleted", gecho.Field("employee_id", id))

	gecho.Success(w,
		gecho.WithMessage("Empleado eliminado"),
		gecho.Send(),
	)
}
