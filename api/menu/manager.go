package menu

import (
	"mesero_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type MenuRoutesManager struct {
	logger      *gecho.Logger
	menuService *services.MenuService
}

func NewMenuRoutesManager(
	logger *gecho.Logger,
	menuService *services.MenuService,
) *MenuRoutesManager {
	return &MenuRoutesManager{
		logger:      logger,
		menuService: menuService,
	}
}

func (mrm *MenuRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/menu", mrm.FetchMenu)
	r.Get("/menu/{id}", mrm.FetchMenuItemByID)
	r.Post("/menu", mrm.UpsertMenuItem)
	r.Delete("/menu/{id}", mrm.DeleteMenuItem)
}
