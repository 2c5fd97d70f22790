package menu

import (
	"mesero_server/handling"
	"mesero_server/lib"
	"mesero_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchMenu handles GET /menu
func (mrm *MenuRoutesManager) FetchMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := mrm.menuService.List(ctx)
	if err != nil {
		handling.RespondServiceError(w, mrm.logger, err, "Failed to fetch menu")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"menu":  items,
			"count": len(items),
		}),
		gecho.Send(),
	)
}

// FetchMenuItemByID handles GET /menu/{id}
func (mrm *MenuRoutesManager) FetchMenuItemByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := mrm.parseMenuItemID(w, r)
	if !ok {
		return
	}

	item, err := mrm.menuService.Get(ctx, id)
	if err != nil {
		handling.RespondServiceError(w, mrm.logger, err, "Menu item not found")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"item": item,
		}),
		gecho.Send(),
	)
}

// UpsertMenuItem handles POST /menu. A zero ID creates a new item, a known ID
// updates it in place.
func (mrm *MenuRoutesManager) UpsertMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := lib.ExtractAndValidateBody[tables.MenuItem](r)
	if err != nil {
		handling.RespondBodyError(w, err)
		return
	}

	item, err := mrm.menuService.Upsert(ctx, body)
	if err != nil {
		handling.RespondServiceError(w, mrm.logger, err, "Failed to save menu item")
		return
	}

	mrm.logger.Info("Menu item saved",
		gecho.Field("item_id", item.ID),
		gecho.Field("name", item.Name),
	)

	gecho.Success(w,
		gecho.WithMessage("Plato guardado"),
		gecho.WithData(map[string]any{
			"item": item,
		}),
		gecho.Send(),
	)
}

// DeleteMenuItem handles DELETE /menu/{id}. Order lines already placed keep
// their snapshot of the item, so deleting is always safe.
func (mrm *MenuRoutesManager) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := mrm.parseMenuItemID(w, r)
	if !ok {
		return
	}

	if err := mrm.menuService.Delete(ctx, id); err != nil {
		handling.RespondServiceError(w, mrm.logger, err, "Menu item not found")
		return
	}

	mrm.logger.Info("Menu item deleted", gecho.Field("item_id", id))

	gecho.Success(w,
		gecho.WithMessage("Plato eliminado"),
		gecho.Send(),
	)
}

func (mrm *MenuRoutesManager) parseMenuItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")

	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		mrm.logger.Warn("Invalid menu item ID format", gecho.Field("id", idStr))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid menu item ID"),
			gecho.Send(),
		)
		return uuid.Nil, false
	}

	return id, true
}
