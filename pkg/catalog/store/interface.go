package store

import (
	"context"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// ArtistStore provides artist operations.
type ArtistStore interface {
	ListArtists(ctx context.Context, opts ListOptions) ([]*models.Artist, error)
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, artist *models.Artist) error
	DeleteArtist(ctx context.Context, id int64) error
}

// AlbumStore provides album operations. Lists accept the artist_id filter.
type AlbumStore interface {
	ListAlbums(ctx context.Context, opts ListOptions) ([]*models.Album, error)
	GetAlbum(ctx context.Context, id int64) (*models.Album, error)
	CreateAlbum(ctx context.Context, album *models.Album) error
	UpdateAlbum(ctx context.Context, album *models.Album) error
	DeleteAlbum(ctx context.Context, id int64) error
}

// TrackStore provides track operations. Lists accept the album_id,
// artist_id and genre_id filters.
type TrackStore interface {
	ListTracks(ctx context.Context, opts ListOptions) ([]*models.Track, error)
	GetTrack(ctx context.Context, id int64) (*models.Track, error)
	CreateTrack(ctx context.Context, track *models.Track) error
	UpdateTrack(ctx context.Context, track *models.Track) error
	DeleteTrack(ctx context.Context, id int64) error
}

// GenreStore provides genre operations.
type GenreStore interface {
	ListGenres(ctx context.Context, opts ListOptions) ([]*models.Genre, error)
	GetGenre(ctx context.Context, id int64) (*models.Genre, error)
	CreateGenre(ctx context.Context, genre *models.Genre) error
	UpdateGenre(ctx context.Context, genre *models.Genre) error
	DeleteGenre(ctx context.Context, id int64) error
}

// CustomerStore provides customer operations. Lists accept the
// support_rep_id filter.
type CustomerStore interface {
	ListCustomers(ctx context.Context, opts ListOptions) ([]*models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
}

// InvoiceStore provides invoice operations. Lists accept the customer_id
// filter; details embed the customer and the invoice lines with tracks.
type InvoiceStore interface {
	ListInvoices(ctx context.Context, opts ListOptions) ([]*models.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*models.Invoice, error)
	CreateInvoice(ctx context.Context, invoice *models.Invoice) error
	UpdateInvoice(ctx context.Context, invoice *models.Invoice) error
	DeleteInvoice(ctx context.Context, id int64) error
}

// EmployeeStore provides employee operations. Lists accept the
// reports_to filter.
type EmployeeStore interface {
	ListEmployees(ctx context.Context, opts ListOptions) ([]*models.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	UpdateEmployee(ctx context.Context, employee *models.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
}

// PlaylistStore provides playlist and membership operations.
type PlaylistStore interface {
	ListPlaylists(ctx context.Context, opts ListOptions) ([]*models.Playlist, error)
	GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error)
	CreatePlaylist(ctx context.Context, playlist *models.Playlist) error
	UpdatePlaylist(ctx context.Context, playlist *models.Playlist) error
	DeletePlaylist(ctx context.Context, id int64) error
	AddPlaylistTrack(ctx context.Context, playlistID, trackID int64) error
	RemovePlaylistTrack(ctx context.Context, playlistID, trackID int64) error
}

// Store is the complete catalog store.
type Store interface {
	ArtistStore
	AlbumStore
	TrackStore
	GenreStore
	CustomerStore
	InvoiceStore
	EmployeeStore
	PlaylistStore

	// Reflect loads the live table and column metadata.
	Reflect(ctx context.Context) (*Schema, error)

	// Healthcheck verifies the database is reachable.
	Healthcheck(ctx context.Context) error

	// Close releases the database connections.
	Close() error
}
