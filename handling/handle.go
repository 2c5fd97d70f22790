package handling

import (
	"errors"
	"mesero_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// RespondServiceError maps the domain error taxonomy onto HTTP responses.
// Anything outside the taxonomy is a persistence failure and comes back as a
// 500 with the detail logged, not leaked.
func RespondServiceError(w http.ResponseWriter, logger *gecho.Logger, err error, msg string) {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrEmptyOrder):
		gecho.Conflict(w, gecho.WithMessage("La orden está vacía"), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrInvalidCredentials):
		gecho.Unauthorized(w, gecho.WithMessage("Credenciales inválidas"), gecho.Send())
	default:
		logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))
		gecho.InternalServerError(w, gecho.Send())
	}
}

// RespondBodyError handles request decoding/validation failures, keeping the
// structured field errors when validation produced them.
func RespondBodyError(w http.ResponseWriter, err error) {
	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		gecho.BadRequest(w, gecho.WithMessage("Datos inválidos"), gecho.WithData(ve), gecho.Send())
		return
	}
	gecho.BadRequest(w, gecho.WithMessage("Cuerpo de la petición inválido"), gecho.Send())
}
