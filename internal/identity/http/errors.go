package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campfirehq/identity/internal/identity/service"
	"github.com/campfirehq/identity/pkg/identitysdk"
)

// writeServiceError translates service-layer failures into the wire error
// shape. Anything unrecognised is logged and collapsed into a 500 so store
// internals never leak to the caller.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		identitysdk.NewValidationError(verr.Fields...).WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		identitysdk.ErrUserExists.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		identitysdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		identitysdk.ErrUserNotFound.WriteError(w)
	default:
		log.Error("request failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
	}
}

// decodeBody parses a JSON request body into dst. A malformed body is a
// validation failure, not a server error.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		identitysdk.NewValidationError(identitysdk.FieldError{
			Field:   "body",
			Message: "Request body must be valid JSON",
		}).WriteError(w)
		return false
	}
	return true
}
