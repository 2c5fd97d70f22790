package tables

import (
	"mesero_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchAllTables handles GET /tables, returning the floor sorted by table number
func (trm *TableRoutesManager) FetchAllTables(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := trm.tableService.List(ctx)
	if err != nil {
		handling.RespondServiceError(w, trm.logger, err, "Failed to fetch tables")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"tables": list,
			"count":  len(list),
		}),
		gecho.Send(),
	)
}

// FetchTableByID handles GET /tables/{id}
func (trm *TableRoutesManager) FetchTableByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := trm.parseTableID(w, r)
	if !ok {
		return
	}

	table, err := trm.tableService.Get(ctx, id)
	if err != nil {
		handling.RespondServiceError(w, trm.logger, err, "Table not found")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"table": table,
		}),
		gecho.Send(),
	)
}

// AddTable handles POST /tables. The new table's name is derived from the
// highest existing table number, so no request body is needed.
func (trm *TableRoutesManager) AddTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	table, err := trm.tableService.Add(ctx)
	if err != nil {
		handling.RespondServiceError(w, trm.logger, err, "Failed to add table")
		return
	}

	trm.logger.Info("Table added", gecho.Field("table_id", table.ID), gecho.Field("name", table.Name))

	gecho.Success(w,
		gecho.WithMessage("Mesa agregada"),
		gecho.WithData(map[string]any{
			"table": table,
		}),
		gecho.Send(),
	)
}

// DeleteTable handles DELETE /tables/{id}. Occupied and reserved tables are
// refused so a table never disappears mid-service.
func (trm *TableRoutesManager) DeleteTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := trm.parseTableID(w, r)
	if !ok {
		return
	}

	if err := trm.tableService.Delete(ctx, id); err != nil {
		handling.RespondServiceError(w, trm.logger, err, "Solo se pueden eliminar mesas libres")
		return
	}

	trm.logger.Info("Table deleted", gecho.Field("table_id", id))

	gecho.Success(w,
		gecho.WithMessage("Mesa eliminada"),
		gecho.Send(),
	)
}

func (trm *TableRoutesManager) parseTableID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")

	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		trm.logger.Warn("Invalid table ID format", gecho.Field("id", idStr))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid table ID"),
			gecho.Send(),
		)
		return uuid.Nil, false
	}

	return id, true
}
