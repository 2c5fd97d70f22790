package auth

import (
	"mesero_server/handling"
	"mesero_server/lib"
	"mesero_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// Login handles POST /auth/login. Staff authenticate with their name and PIN
// and receive a short-lived access token.
func (arm *AuthRoutesManager) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		handling.RespondBodyError(w, err)
		return
	}

	token, employee, err := arm.authService.Login(ctx, body.Name, body.Pin)
	if err != nil {
		handling.RespondServiceError(w, arm.logger, err, "Credenciales inválidas")
		return
	}

	arm.logger.Info("Employee logged in",
		gecho.Field("employee_id", employee.ID),
		gecho.Field("role", employee.Role),
	)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"access_token": token,
			"employee": map[string]any{
				"id":   employee.ID,
				"name": employee.Name,
				"role": employee.Role,
			},
		}),
		gecho.Send(),
	)
}
