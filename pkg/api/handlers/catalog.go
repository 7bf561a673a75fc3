package handlers

import (
	"github.com/chinookhq/chinook-api/pkg/catalog/models"
	"github.com/chinookhq/chinook-api/pkg/catalog/store"
)

// Handler types for each collection.
type (
	ArtistHandler   = Resource[models.Artist, *models.Artist]
	AlbumHandler    = Resource[models.Album, *models.Album]
	TrackHandler    = Resource[models.Track, *models.Track]
	GenreHandler    = Resource[models.Genre, *models.Genre]
	CustomerHandler = Resource[models.Customer, *models.Customer]
	InvoiceHandler  = Resource[models.Invoice, *models.Invoice]
	EmployeeHandler = Resource[models.Employee, *models.Employee]
	PlaylistHandler = Resource[models.Playlist, *models.Playlist]
)

// NewArtistHandler serves /api/artists.
func NewArtistHandler(s store.ArtistStore) *ArtistHandler {
	return &ArtistHandler{
		collection: "artists",
		list:       s.ListArtists,
		get:        s.GetArtist,
		create:     s.CreateArtist,
		update:     s.UpdateArtist,
		remove:     s.DeleteArtist,
	}
}

// NewAlbumHandler serves /api/albums, filterable by artist_id.
func NewAlbumHandler(s store.AlbumStore) *AlbumHandler {
	return &AlbumHandler{
		collection: "albums",
		filters:    []string{"artist_id"},
		list:       s.ListAlbums,
		get:        s.GetAlbum,
		create:     s.CreateAlbum,
		update:     s.UpdateAlbum,
		remove:     s.DeleteAlbum,
	}
}

// NewTrackHandler serves /api/tracks, filterable by album_id, artist_id
// and genre_id.
func NewTrackHandler(s store.TrackStore) *TrackHandler {
	return &TrackHandler{
		collection: "tracks",
		filters:    []string{"album_id", "artist_id", "genre_id"},
		list:       s.ListTracks,
		get:        s.GetTrack,
		create:     s.CreateTrack,
		update:     s.UpdateTrack,
		remove:     s.DeleteTrack,
	}
}

// NewGenreHandler serves /api/genres.
func NewGenreHandler(s store.GenreStore) *GenreHandler {
	return &GenreHandler{
		collection: "genres",
		list:       s.ListGenres,
		get:        s.GetGenre,
		create:     s.CreateGenre,
		update:     s.UpdateGenre,
		remove:     s.DeleteGenre,
	}
}

// NewCustomerHandler serves /api/customers, filterable by support_rep_id.
func NewCustomerHandler(s store.CustomerStore) *CustomerHandler {
	return &CustomerHandler{
		collection: "customers",
		filters:    []string{"support_rep_id"},
		list:       s.ListCustomers,
		get:        s.GetCustomer,
		create:     s.CreateCustomer,
		update:     s.UpdateCustomer,
		remove:     s.DeleteCustomer,
	}
}

// NewInvoiceHandler serves /api/invoices, filterable by customer_id.
func NewInvoiceHandler(s store.InvoiceStore) *InvoiceHandler {
	return &InvoiceHandler{
		collection: "invoices",
		filters:    []string{"customer_id"},
		list:       s.ListInvoices,
		get:        s.GetInvoice,
		create:     s.CreateInvoice,
		update:     s.UpdateInvoice,
		remove:     s.DeleteInvoice,
	}
}

// NewEmployeeHandler serves /api/employees, filterable by reports_to.
func NewEmployeeHandler(s store.EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{
		collection: "employees",
		filters:    []string{"reports_to"},
		list:       s.ListEmployees,
		get:        s.GetEmployee,
		create:     s.CreateEmployee,
		update:     s.UpdateEmployee,
		remove:     s.DeleteEmployee,
	}
}

// NewPlaylistHandler serves /api/playlists. Track membership is handled
// by PlaylistTrackHandler.
func NewPlaylistHandler(s store.PlaylistStore) *PlaylistHandler {
	return &PlaylistHandler{
		collection: "playlists",
		list:       s.ListPlaylists,
		get:        s.GetPlaylist,
		create:     s.CreatePlaylist,
		update:     s.UpdatePlaylist,
		remove:     s.DeletePlaylist,
	}
}
