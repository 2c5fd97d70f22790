package transactions

import (
	"mesero_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchTransactions handles GET /transactions with optional payment_method and
// day filters.
func (trm *TransactionRoutesManager) FetchTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseTransactionListOptions(r)
	if err != nil {
		trm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	list, err := trm.transactionService.List(ctx, opts)
	if err != nil {
		handling.RespondServiceError(w, trm.logger, err, "Failed to fetch transactions")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"transactions": list,
			"count":        len(list),
		}),
		gecho.Send(),
	)
}

// GetShiftSummary handles GET /transactions/summary.
func (trm *TransactionRoutesManager) GetShiftSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := trm.transactionService.Summary(ctx)
	if err != nil {
		handling.RespondServiceError(w, trm.logger, err, "Failed to build summary")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"summary": summary,
		}),
		gecho.Send(),
	)
}

// CloseShift handles DELETE /transactions. The ledger is summarized, the
// report is mailed out and the ledger is wiped for the next shift.
func (trm *TransactionRoutesManager) CloseShift(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := trm.transactionService.Clear(ctx); err != nil {
		handling.RespondServiceError(w, trm.logger, err, "Failed to close shift")
		return
	}

	trm.logger.Info("Shift closed, transaction ledger cleared")

	gecho.Success(w,
		gecho.WithMessage("Turno cerrado"),
		gecho.Send(),
	)
}
