package services

import (
	"context"
	"mesero_server/lib"
	"mesero_server/structs"
	"mesero_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// AuthService turns a successful PIN check into a signed access token.
type AuthService struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	employeeService *EmployeeService
}

func NewAuthService(logger *gecho.Logger, cfg *structs.Config, employeeService *EmployeeService) *AuthService {
	return &AuthService{
		logger:          logger,
		cfg:             cfg,
		employeeService: employeeService,
	}
}

func (as *AuthService) Login(ctx context.Context, name, pin string) (string, *tables.Employee, error) {
	employee, err := as.employeeService.Authenticate(ctx, name, pin)
	if err != nil {
		return "", nil, err
	}

	token, err := lib.GenerateAccessToken(employee, as.cfg.Auth.AccessTokenSecret, as.cfg.Auth.AccessTokenExpiry)
	if err != nil {
		return "", nil, err
	}

	as.logger.Info("Employee logged in", gecho.Field("employee_id", employee.ID), gecho.Field("role", employee.Role))
	return token, employee, nil
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}
