package middleware

import (
	"mesero_server/services"
	"mesero_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	cfg         *structs.Config
	logger      *gecho.Logger
	authService *services.AuthService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, authService *services.AuthService) *Middleware {
	return &Middleware{
		cfg:         cfg,
		logger:      logger,
		authService: authService,
	}
}
