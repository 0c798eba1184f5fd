package api

import (
	"errors"
	"net/http"
	"time"

	"flighttrack/logbook/internal/auth"
	"flighttrack/logbook/internal/common"
	"flighttrack/logbook/internal/constants"
	"flighttrack/logbook/internal/services"
)

// Handlers bundles every HTTP handler with its dependencies.
type Handlers struct {
	deps *Dependencies
}

func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{deps: deps}
}

// ownerID resolves the request owner from the auth claims. An empty
// result is rejected by every service with STORE_UNAVAILABLE.
func ownerID(r *http.Request) string {
	claims := auth.GetUserClaims(r.Context())
	if claims == nil {
		return ""
	}
	return claims.OwnerID()
}

// httpStatusFor maps service error codes to HTTP status codes.
func httpStatusFor(code string) int {
	switch code {
	case constants.ErrCodeUnavailable:
		return http.StatusUnauthorized
	case constants.ErrCodeNotFound:
		return http.StatusNotFound
	case constants.ErrCodeImportEmpty, constants.ErrCodeBadRequest, constants.ErrCodeReminderDateMissing:
		return http.StatusBadRequest
	case constants.ErrCodeImportCollision:
		return http.StatusConflict
	case constants.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError unwraps a LogbookError and writes the mapped
// status; unknown errors become a plain 500.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	var lbErr *services.LogbookError
	if errors.As(err, &lbErr) {
		common.RespondError(w, initTime, err, lbErr.Message, httpStatusFor(lbErr.Code))
		return
	}
	common.RespondError(w, initTime, err, "", http.StatusInternalServerError)
}
