// Package models declares the Chinook catalog entities and their mapping
// onto the existing database schema.
package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Entity is implemented by every top-level catalog record.
type Entity interface {
	TableName() string
	PrimaryKey() int64
	SetPrimaryKey(id int64)
}

var validate = newValidator()

// newValidator reports fields by their JSON names so validation errors
// match what API clients sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the struct tags of a catalog entity.
func Validate(e Entity) error {
	return validate.Struct(e)
}

// AllModels returns every mapped model, used for schema verification and
// AutoMigrate on development databases. Order respects foreign keys.
func AllModels() []any {
	return []any{
		&Artist{},
		&Album{},
		&Genre{},
		&MediaType{},
		&Track{},
		&Employee{},
		&Customer{},
		&Invoice{},
		&InvoiceLine{},
		&Playlist{},
		&PlaylistTrack{},
	}
}
