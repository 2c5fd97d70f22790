package services

import (
	"context"
	"mesero_server/lib"
	"mesero_server/store"
	"mesero_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// EmployeeService is plain staff CRUD plus the PIN check used by login.
type EmployeeService struct {
	logger *gecho.Logger
	store  *store.Store
}

func NewEmployeeService(logger *gecho.Logger, st *store.Store) *EmployeeService {
	return &EmployeeService{
		logger: logger,
		store:  st,
	}
}

func (es *EmployeeService) List(ctx context.Context) ([]tables.Employee, error) {
	return es.store.Employees.List(ctx)
}

func (es *EmployeeService) Upsert(ctx context.Context, employee *tables.Employee) (*tables.Employee, error) {
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}

	if err := es.store.Employees.Upsert(ctx, employee); err != nil {
		return nil, err
	}

	es.logger.Info("Employee saved", gecho.Field("employee_id", employee.ID), gecho.Field("role", employee.Role))
	return employee, nil
}

func (es *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := es.store.Employees.Delete(ctx, id); err != nil {
		return err
	}

	es.logger.Info("Employee deleted", gecho.Field("employee_id", id))
	return nil
}

// Authenticate matches a staff member by exact name and PIN.
func (es *EmployeeService) Authenticate(ctx context.Context, name, pin string) (*tables.Employee, error) {
	list, err := es.store.Employees.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Name == name && list[i].Pin == pin {
			return &list[i], nil
		}
	}

	return nil, lib.ErrInvalidCredentials
}
