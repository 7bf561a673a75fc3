package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
	"github.com/chinookhq/chinook-api/pkg/catalog/store"
)

// maxBodyBytes caps request bodies; the largest entity is well under 4 KiB.
const maxBodyBytes = 1 << 20

// decodeJSONBody decodes a JSON request body into the provided pointer.
// Returns true if successful, false if decoding fails (error response is written automatically).
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		BadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// validateEntity runs the entity's struct validation and writes a 422 on
// failure.
func validateEntity(w http.ResponseWriter, e models.Entity) bool {
	err := models.Validate(e)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		UnprocessableEntity(w, err.Error())
		return false
	}

	params := make([]InvalidParam, 0, len(verrs))
	for _, fe := range verrs {
		params = append(params, InvalidParam{Name: fe.Field(), Reason: validationReason(fe)})
	}
	UnprocessableEntity(w, fmt.Sprintf("%d field(s) failed validation", len(params)), params...)
	return false
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed '%s' validation", fe.Tag())
	}
}

// parseIDParam reads a positive integer path parameter. On failure a 400 is
// written and false returned.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		BadRequest(w, fmt.Sprintf("Invalid %s: %q", name, raw))
		return 0, false
	}
	return id, true
}

// parseListOptions reads skip, limit and the collection's filters from the
// query string. Unknown parameters are ignored.
func parseListOptions(w http.ResponseWriter, r *http.Request, filters []string) (store.ListOptions, bool) {
	q := r.URL.Query()
	opts := store.ListOptions{Skip: 0, Limit: store.DefaultLimit}

	if raw := q.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			BadRequest(w, "skip must be a non-negative integer")
			return opts, false
		}
		opts.Skip = skip
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > store.MaxLimit {
			BadRequest(w, fmt.Sprintf("limit must be an integer between 1 and %d", store.MaxLimit))
			return opts, false
		}
		opts.Limit = limit
	}

	for _, name := range filters {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			BadRequest(w, fmt.Sprintf("%s must be an integer", name))
			return opts, false
		}
		if opts.Filters == nil {
			opts.Filters = make(map[string]int64, len(filters))
		}
		opts.Filters[name] = value
	}

	return opts, true
}
