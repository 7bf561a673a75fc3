package store

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// ============================================================================
// Generic GORM Helpers
// ============================================================================
//
// These helpers carry the CRUD mechanics shared by every collection:
// context propagation, preloading, paging, and translation of driver
// errors into the sentinel errors declared in models.

// errorSet groups the domain errors of one entity.
type errorSet struct {
	notFound  error
	duplicate error
	inUse     error
}

// filterFunc narrows a list query by one integer-valued filter.
type filterFunc func(q *gorm.DB, value int64) *gorm.DB

// columnFilter filters on equality with a column of the listed table.
func columnFilter(column string) filterFunc {
	return func(q *gorm.DB, value int64) *gorm.DB {
		return q.Where(column+" = ?", value)
	}
}

// getByID retrieves a single record of type T by primary key, applying
// optional Preload clauses.
func getByID[T any](db *gorm.DB, ctx context.Context, pk string, id int64, notFoundErr error, preloads ...string) (*T, error) {
	var result T
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.Where(pk+" = ?", id).First(&result).Error; err != nil {
		return nil, convertNotFoundError(err, notFoundErr)
	}
	return &result, nil
}

// listPage retrieves one page of records of type T ordered by primary key.
// Filters not present in allowed yield models.ErrInvalidFilter. Returns an
// empty slice (not nil) when nothing matches.
func listPage[T any](db *gorm.DB, ctx context.Context, pk string, opts ListOptions, allowed map[string]filterFunc) ([]*T, error) {
	opts = opts.Normalize()

	q := db.WithContext(ctx)

	// Sorted so the generated SQL is stable.
	names := make([]string, 0, len(opts.Filters))
	for name := range opts.Filters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		apply, ok := allowed[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrInvalidFilter, name)
		}
		q = apply(q, opts.Filters[name])
	}

	results := make([]*T, 0)
	if err := q.Order(pk).Offset(opts.Skip).Limit(opts.Limit).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// createEntity inserts entity without touching its associations. A zero
// primary key lets the database assign one; GORM writes it back.
func createEntity[T any](db *gorm.DB, ctx context.Context, entity *T, errs errorSet) error {
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return translateWriteError(err, errs)
	}
	return nil
}

// updateEntity replaces every scalar column of the row identified by the
// entity's primary key. The primary key must be set and is never written,
// so identity columns are left alone.
func updateEntity[T any](db *gorm.DB, ctx context.Context, pk string, entity *T, errs errorSet) error {
	result := db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit(clause.Associations, pk).
		Updates(entity)

	if result.Error != nil {
		return translateWriteError(result.Error, errs)
	}
	if result.RowsAffected == 0 {
		return errs.notFound
	}
	return nil
}

// deleteByID deletes the record of type T with the given primary key.
// Returns errs.notFound if no rows were affected and errs.inUse if other
// rows still reference it.
func deleteByID[T any](db *gorm.DB, ctx context.Context, pk string, id int64, errs errorSet) error {
	var zero T
	result := db.WithContext(ctx).Where(pk+" = ?", id).Delete(&zero)
	if result.Error != nil {
		if isForeignKeyError(result.Error) {
			return errs.inUse
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.notFound
	}
	return nil
}

// exists reports whether a record of type T with the given primary key exists.
func exists[T any](db *gorm.DB, ctx context.Context, pk string, id int64) (bool, error) {
	var count int64
	var zero T
	if err := db.WithContext(ctx).Model(&zero).Where(pk+" = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translateWriteError(err error, errs errorSet) error {
	switch {
	case isUniqueConstraintError(err):
		return errs.duplicate
	case isForeignKeyError(err):
		return models.ErrInvalidReference
	default:
		return err
	}
}
