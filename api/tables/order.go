package tables

import (
	"mesero_server/handling"
	"mesero_server/lib"
	"mesero_server/structs"
	structtables "mesero_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// UpdateOrder handles PUT /tables/{id}/order. The body carries the complete
// desired order; the previous one is discarded. An empty order frees the
// table and clears its waiter.
func (trm *TableRoutesManager) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := trm.parseTableID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderRequest](r)
	if err != nil {
		handling.RespondBodyError(w, err)
		return
	}

	table, err := trm.orderService.UpdateOrder(ctx, id, structtables.Order(body.Order), body.WaiterName)
	if err != nil {
		handling.RespondServiceError(w, trm.logger, err, "Table not found")
		return
	}

	trm.logger.Debug("Order updated",
		gecho.Field("table_id", table.ID),
		gecho.Field("lines", len(table.Order)),
		gecho.Field("status", table.Status),
	)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"table": table,
		}),
		gecho.Send(),
	)
}
