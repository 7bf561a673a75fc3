package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/chinookhq/chinook-api/internal/logger"
	"github.com/chinookhq/chinook-api/internal/telemetry"
	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// writeStoreError maps a store error onto a problem response. Domain
// errors keep their message; anything else is logged and reported as 500
// without leaking driver details.
func writeStoreError(ctx context.Context, w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		NotFound(w, capitalize(err.Error()))
	case errors.Is(err, models.ErrDuplicate), errors.Is(err, models.ErrInUse):
		Conflict(w, capitalize(err.Error()))
	case errors.Is(err, models.ErrInvalidReference):
		UnprocessableEntity(w, capitalize(err.Error()))
	case errors.Is(err, models.ErrInvalidFilter):
		BadRequest(w, capitalize(err.Error()))
	case errors.Is(err, context.DeadlineExceeded):
		telemetry.RecordError(ctx, err)
		logger.WarnCtx(ctx, "Request timed out", "action", action, logger.Err(err))
		ServiceUnavailable(w, "Request timed out")
	default:
		telemetry.RecordError(ctx, err)
		logger.ErrorCtx(ctx, "Store operation failed", "action", action, logger.Err(err))
		InternalServerError(w, "Failed to "+action)
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
