package tables

import (
	"mesero_server/handling"
	"mesero_server/lib"
	"mesero_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ProcessPayment handles POST /tables/{id}/payment. It records the charge in
// the ledger and returns a receipt with a settlement token, but leaves the
// table occupied until the payment is finalized.
func (trm *TableRoutesManager) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := trm.parseTableID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.PaymentRequest](r)
	if err != nil {
		handling.RespondBodyError(w, err)
		return
	}

	receipt, err := trm.paymentService.ProcessPayment(ctx, id, body.PaymentMethod)
	if err != nil {
		handling.RespondServiceError(w, trm.logger, err, "Failed to process payment")
		return
	}

	trm.logger.Info("Payment processed",
		gecho.Field("table_id", id),
		gecho.Field("total", receipt.Total),
		gecho.Field("payment_method", body.PaymentMethod),
	)

	gecho.Success(w,
		gecho.WithMessage("Pago registrado"),
		gecho.WithData(map[string]any{
			"receipt": receipt,
		}),
		gecho.Send(),
	)
}

// FinalizePayment handles POST /tables/{id}/payment/finalize, releasing the
// table once the cashier confirms the settlement.
func (trm *TableRoutesManager) FinalizePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := trm.parseTableID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.FinalizePaymentRequest](r)
	if err != nil {
		handling.RespondBodyError(w, err)
		return
	}

	if err := trm.paymentService.FinalizePayment(ctx, id, body.SettlementToken); err != nil {
		handling.RespondServiceError(w, trm.logger, err, "El pago no coincide con la mesa")
		return
	}

	trm.logger.Info("Payment finalized", gecho.Field("table_id", id))

	gecho.Success(w,
		gecho.WithMessage("Mesa liberada"),
		gecho.Send(),
	)
}
