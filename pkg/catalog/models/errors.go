package models

import (
	"errors"
	"fmt"
)

// Error classes. Entity errors wrap one of these so callers can match a
// whole class with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("already exists")
	ErrInUse            = errors.New("is referenced by other records")
	ErrInvalidReference = errors.New("references a record that does not exist")
	ErrInvalidFilter    = errors.New("unsupported filter")
	ErrSchemaMismatch   = errors.New("database schema does not match the catalog mapping")
)

// Artist errors
var (
	ErrArtistNotFound  = fmt.Errorf("artist %w", ErrNotFound)
	ErrDuplicateArtist = fmt.Errorf("artist %w", ErrDuplicate)
	ErrArtistInUse     = fmt.Errorf("artist %w", ErrInUse)
)

// Album errors
var (
	ErrAlbumNotFound  = fmt.Errorf("album %w", ErrNotFound)
	ErrDuplicateAlbum = fmt.Errorf("album %w", ErrDuplicate)
	ErrAlbumInUse     = fmt.Errorf("album %w", ErrInUse)
)

// Track errors
var (
	ErrTrackNotFound  = fmt.Errorf("track %w", ErrNotFound)
	ErrDuplicateTrack = fmt.Errorf("track %w", ErrDuplicate)
	ErrTrackInUse     = fmt.Errorf("track %w", ErrInUse)
)

// Genre errors
var (
	ErrGenreNotFound  = fmt.Errorf("genre %w", ErrNotFound)
	ErrDuplicateGenre = fmt.Errorf("genre %w", ErrDuplicate)
	ErrGenreInUse     = fmt.Errorf("genre %w", ErrInUse)
)

// Customer errors
var (
	ErrCustomerNotFound  = fmt.Errorf("customer %w", ErrNotFound)
	ErrDuplicateCustomer = fmt.Errorf("customer %w", ErrDuplicate)
	ErrCustomerInUse     = fmt.Errorf("customer %w", ErrInUse)
)

// Invoice errors
var (
	ErrInvoiceNotFound  = fmt.Errorf("invoice %w", ErrNotFound)
	ErrDuplicateInvoice = fmt.Errorf("invoice %w", ErrDuplicate)
	ErrInvoiceInUse     = fmt.Errorf("invoice %w", ErrInUse)
)

// Employee errors
var (
	ErrEmployeeNotFound  = fmt.Errorf("employee %w", ErrNotFound)
	ErrDuplicateEmployee = fmt.Errorf("employee %w", ErrDuplicate)
	ErrEmployeeInUse     = fmt.Errorf("employee %w", ErrInUse)
)

// Playlist errors
var (
	ErrPlaylistNotFound      = fmt.Errorf("playlist %w", ErrNotFound)
	ErrDuplicatePlaylist     = fmt.Errorf("playlist %w", ErrDuplicate)
	ErrPlaylistInUse         = fmt.Errorf("playlist %w", ErrInUse)
	ErrPlaylistTrackNotFound = fmt.Errorf("playlist track %w", ErrNotFound)
)
