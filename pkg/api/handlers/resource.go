package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chinookhq/chinook-api/internal/logger"
	"github.com/chinookhq/chinook-api/internal/telemetry"
	"github.com/chinookhq/chinook-api/pkg/catalog/models"
	"github.com/chinookhq/chinook-api/pkg/catalog/store"
)

// entityPtr constrains P to *T implementing models.Entity.
type entityPtr[T any] interface {
	*T
	models.Entity
}

// Resource serves the five CRUD endpoints of one catalog collection.
//
// Routes (mounted under /api/{collection}):
//   - GET /        List, paged with skip/limit plus the collection filters
//   - POST /       Create
//   - GET /{id}    Get with detail relations
//   - PUT /{id}    Replace every scalar field
//   - DELETE /{id} Delete
type Resource[T any, P entityPtr[T]] struct {
	collection string
	filters    []string

	list   func(context.Context, store.ListOptions) ([]*T, error)
	get    func(context.Context, int64) (*T, error)
	create func(context.Context, *T) error
	update func(context.Context, *T) error
	remove func(context.Context, int64) error
}

// Collection returns the URL segment the resource is mounted on.
func (h *Resource[T, P]) Collection() string {
	return h.collection
}

// Filters returns the query parameters List accepts besides skip and limit.
func (h *Resource[T, P]) Filters() []string {
	return h.filters
}

// List handles GET /api/{collection}.
func (h *Resource[T, P]) List(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseListOptions(w, r, h.filters)
	if !ok {
		return
	}

	ctx, span := telemetry.StartCatalogSpan(r.Context(), h.collection, "list",
		telemetry.Page(opts.Skip, opts.Limit)...)
	defer span.End()

	items, err := h.list(ctx, opts)
	if err != nil {
		writeStoreError(ctx, w, err, "list "+h.collection)
		return
	}

	span.SetAttributes(telemetry.Count(len(items)))
	logger.DebugCtx(ctx, "Listed catalog entries", logger.Count(len(items)))

	WriteJSONOK(w, items)
}

// Get handles GET /api/{collection}/{id}.
func (h *Resource[T, P]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	ctx, span := telemetry.StartCatalogSpan(r.Context(), h.collection, "get", telemetry.EntityID(id))
	defer span.End()

	item, err := h.get(ctx, id)
	if err != nil {
		writeStoreError(ctx, w, err, "get "+h.collection)
		return
	}

	WriteJSONOK(w, item)
}

// Create handles POST /api/{collection}. A primary key in the body is kept;
// without one the database assigns it.
func (h *Resource[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	item := new(T)
	if !decodeJSONBody(w, r, item) {
		return
	}
	if !validateEntity(w, P(item)) {
		return
	}

	ctx, span := telemetry.StartCatalogSpan(r.Context(), h.collection, "create")
	defer span.End()

	if err := h.create(ctx, item); err != nil {
		writeStoreError(ctx, w, err, "create "+h.collection)
		return
	}

	id := P(item).PrimaryKey()
	span.SetAttributes(telemetry.EntityID(id))
	logger.InfoCtx(ctx, "Catalog entry created", logger.EntityID(id))

	w.Header().Set("Location", fmt.Sprintf("/api/%s/%d", h.collection, id))
	WriteJSONCreated(w, item)
}

// Update handles PUT /api/{collection}/{id}. The path id wins over any id
// in the body.
func (h *Resource[T, P]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	item := new(T)
	if !decodeJSONBody(w, r, item) {
		return
	}
	P(item).SetPrimaryKey(id)
	if !validateEntity(w, P(item)) {
		return
	}

	ctx, span := telemetry.StartCatalogSpan(r.Context(), h.collection, "update", telemetry.EntityID(id))
	defer span.End()

	if err := h.update(ctx, item); err != nil {
		writeStoreError(ctx, w, err, "update "+h.collection)
		return
	}

	logger.InfoCtx(ctx, "Catalog entry updated", logger.EntityID(id))
	WriteJSONOK(w, item)
}

// Delete handles DELETE /api/{collection}/{id}.
func (h *Resource[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	ctx, span := telemetry.StartCatalogSpan(r.Context(), h.collection, "delete", telemetry.EntityID(id))
	defer span.End()

	if err := h.remove(ctx, id); err != nil {
		writeStoreError(ctx, w, err, "delete "+h.collection)
		return
	}

	logger.InfoCtx(ctx, "Catalog entry deleted", logger.EntityID(id))
	WriteNoContent(w)
}
