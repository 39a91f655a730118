package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/takumi55d/cloudflare-notes-todos/services/api/core"
	"github.com/takumi55d/cloudflare-notes-todos/services/api/pkg/res"
)

const msgInternal = "internal server error"

// WriteErr maps a core error kind onto an HTTP status. Anything it does not
// recognise is logged and answered with a generic 500.
func WriteErr(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, core.ErrValidation), errors.Is(err, core.ErrInvalidID):
		res.Error(w, message(err), http.StatusBadRequest)
	case errors.Is(err, core.ErrNotFound):
		res.Error(w, message(err), http.StatusNotFound)
	default:
		log.Error("request failed", "error", err)
		res.Error(w, msgInternal, http.StatusInternalServerError)
	}
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	res.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// message prefers the client-facing text of a *core.Error anywhere in the chain.
func message(err error) string {
	var ce *core.Error
	if errors.As(err, &ce) {
		return ce.Msg
	}
	return err.Error()
}
