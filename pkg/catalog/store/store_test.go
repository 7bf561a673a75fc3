package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

// createTestStore creates a file-backed SQLite store with the Chinook
// tables. A file is used instead of :memory: so every pooled connection
// sees the same database.
func createTestStore(t *testing.T) *GORMStore {
	t.Helper()
	store, err := Open(&Config{
		Type: DatabaseTypeSQLite,
		SQLite: SQLiteConfig{
			Path: filepath.Join(t.TempDir(), "chinook.db"),
		},
	})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return store
}

// fixture holds the IDs of a small seeded catalog.
type fixture struct {
	acdc, aerosmith     int64
	forThoseAbout, bolt int64
	rock, jazz          int64
	mpeg                int64
	track1, track2      int64
	track3              int64
	manager, rep        int64
	customer            int64
	invoice             int64
	playlist            int64
}

func seedCatalog(t *testing.T, s *GORMStore) fixture {
	t.Helper()
	ctx := context.Background()
	var f fixture

	mustCreate := func(what string, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("failed to create %s: %v", what, err)
		}
	}

	acdc := &models.Artist{Name: strPtr("AC/DC")}
	mustCreate("artist", s.CreateArtist(ctx, acdc))
	aerosmith := &models.Artist{Name: strPtr("Aerosmith")}
	mustCreate("artist", s.CreateArtist(ctx, aerosmith))
	f.acdc, f.aerosmith = acdc.ArtistID, aerosmith.ArtistID

	album1 := &models.Album{Title: "For Those About To Rock We Salute You", ArtistID: f.acdc}
	mustCreate("album", s.CreateAlbum(ctx, album1))
	album2 := &models.Album{Title: "Big Ones", ArtistID: f.aerosmith}
	mustCreate("album", s.CreateAlbum(ctx, album2))
	f.forThoseAbout, f.bolt = album1.AlbumID, album2.AlbumID

	rock := &models.Genre{Name: strPtr("Rock")}
	mustCreate("genre", s.CreateGenre(ctx, rock))
	jazz := &models.Genre{Name: strPtr("Jazz")}
	mustCreate("genre", s.CreateGenre(ctx, jazz))
	f.rock, f.jazz = rock.GenreID, jazz.GenreID

	mpeg := &models.MediaType{Name: strPtr("MPEG audio file")}
	mustCreate("media type", s.db.Create(mpeg).Error)
	f.mpeg = mpeg.MediaTypeID

	tracks := []*models.Track{
		{Name: "For Those About To Rock", AlbumID: int64Ptr(f.forThoseAbout), MediaTypeID: f.mpeg, GenreID: int64Ptr(f.rock), Milliseconds: 343719, UnitPrice: 0.99},
		{Name: "Put The Finger On You", AlbumID: int64Ptr(f.forThoseAbout), MediaTypeID: f.mpeg, GenreID: int64Ptr(f.rock), Milliseconds: 205662, UnitPrice: 0.99},
		{Name: "Walk On Water", AlbumID: int64Ptr(f.bolt), MediaTypeID: f.mpeg, GenreID: int64Ptr(f.jazz), Milliseconds: 295680, UnitPrice: 0.99},
	}
	for _, tr := range tracks {
		mustCreate("track", s.CreateTrack(ctx, tr))
	}
	f.track1, f.track2, f.track3 = tracks[0].TrackID, tracks[1].TrackID, tracks[2].TrackID

	manager := &models.Employee{LastName: "Adams", FirstName: "Andrew", Title: strPtr("General Manager")}
	mustCreate("employee", s.CreateEmployee(ctx, manager))
	rep := &models.Employee{LastName: "Peacock", FirstName: "Jane", ReportsTo: int64Ptr(manager.EmployeeID)}
	mustCreate("employee", s.CreateEmployee(ctx, rep))
	f.manager, f.rep = manager.EmployeeID, rep.EmployeeID

	customer := &models.Customer{FirstName: "Luís", LastName: "Gonçalves", Email: "luisg@embraer.com.br", SupportRepID: int64Ptr(f.rep)}
	mustCreate("customer", s.CreateCustomer(ctx, customer))
	f.customer = customer.CustomerID

	invoice := &models.Invoice{CustomerID: f.customer, InvoiceDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), Total: 1.98}
	mustCreate("invoice", s.CreateInvoice(ctx, invoice))
	f.invoice = invoice.InvoiceID

	for _, trackID := range []int64{f.track1, f.track2} {
		line := &models.InvoiceLine{InvoiceID: f.invoice, TrackID: trackID, UnitPrice: 0.99, Quantity: 1}
		mustCreate("invoice line", s.db.Create(line).Error)
	}

	playlist := &models.Playlist{Name: strPtr("Music")}
	mustCreate("playlist", s.CreatePlaylist(ctx, playlist))
	f.playlist = playlist.PlaylistID
	mustCreate("playlist track", s.AddPlaylistTrack(ctx, f.playlist, f.track1))

	return f
}

func TestConfig(t *testing.T) {
	t.Run("default config uses postgres", func(t *testing.T) {
		config := &Config{}
		config.ApplyDefaults()

		if config.Type != DatabaseTypePostgres {
			t.Errorf("expected postgres, got %s", config.Type)
		}
		if config.Postgres.Port != 5432 {
			t.Errorf("expected port 5432, got %d", config.Postgres.Port)
		}
		if err := config.Validate(); err != nil {
			t.Errorf("expected defaults to validate, got %v", err)
		}
	})

	t.Run("url overrides discrete fields", func(t *testing.T) {
		config := &Config{Postgres: PostgresConfig{URL: "postgres://chinook:secret@db:5432/chinook"}}
		config.ApplyDefaults()

		if got := config.Postgres.DSN(); got != "postgres://chinook:secret@db:5432/chinook" {
			t.Errorf("unexpected DSN %q", got)
		}
		if got := config.Target(); got != "postgres://chinook:xxxxx@db:5432/chinook" {
			t.Errorf("expected redacted target, got %q", got)
		}
	})

	t.Run("unsupported type is rejected", func(t *testing.T) {
		config := &Config{Type: "mysql"}
		if err := config.Validate(); err == nil {
			t.Error("expected error for unsupported type")
		}
	})

	t.Run("open fails on invalid config", func(t *testing.T) {
		if _, err := Open(&Config{Type: "oracle"}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestListOptionsNormalize(t *testing.T) {
	cases := []struct {
		in        ListOptions
		skip, lim int
	}{
		{ListOptions{}, 0, DefaultLimit},
		{ListOptions{Skip: -3, Limit: 10}, 0, 10},
		{ListOptions{Skip: 5, Limit: 5000}, 5, MaxLimit},
	}
	for _, tc := range cases {
		got := tc.in.Normalize()
		if got.Skip != tc.skip || got.Limit != tc.lim {
			t.Errorf("Normalize(%+v) = skip %d limit %d, want %d %d", tc.in, got.Skip, got.Limit, tc.skip, tc.lim)
		}
	}
}

func TestArtistOperations(t *testing.T) {
	s := createTestStore(t)
	f := seedCatalog(t, s)
	ctx := context.Background()

	t.Run("list is ordered and paged", func(t *testing.T) {
		artists, err := s.ListArtists(ctx, ListOptions{})
		if err != nil {
			t.Fatalf("ListArtists failed: %v", err)
		}
		if len(artists) != 2 {
			t.Fatalf("expected 2 artists, got %d", len(artists))
		}
		if artists[0].ArtistID != f.acdc {
			t.Errorf("expected first artist %d, got %d", f.acdc, artists[0].ArtistID)
		}

		page, err := s.ListArtists(ctx, ListOptions{Skip: 1, Limit: 1})
		if err != nil {
			t.Fatalf("ListArtists failed: %v", err)
		}
		if len(page) != 1 || page[0].ArtistID != f.aerosmith {
			t.Errorf("expected second page to hold artist %d, got %+v", f.aerosmith, page)
		}
	})

	t.Run("empty page is an empty slice", func(t *testing.T) {
		artists, err := s.ListArtists(ctx, ListOptions{Skip: 100})
		if err != nil {
			t.Fatalf("ListArtists failed: %v", err)
		}
		if artists == nil || len(artists) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", artists)
		}
	})

	t.Run("get embeds albums", func(t *testing.T) {
		artist, err := s.GetArtist(ctx, f.acdc)
		if err != nil {
			t.Fatalf("GetArtist failed: %v", err)
		}
		if *artist.Name != "AC/DC" {
			t.Errorf("expected AC/DC, got %q", *artist.Name)
		}
		if len(artist.Albums) != 1 {
			t.Errorf("expected 1 album, got %d", len(artist.Albums))
		}
	})

	t.Run("get missing artist", func(t *testing.T) {
		_, err := s.GetArtist(ctx, 9999)
		if !errors.Is(err, models.ErrArtistNotFound) {
			t.Errorf("expected ErrArtistNotFound, got %v", err)
		}
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("expected error to match ErrNotFound, got %v", err)
		}
	})

	t.Run("update replaces fields", func(t *testing.T) {
		err := s.UpdateArtist(ctx, &models.Artist{ArtistID: f.aerosmith, Name: strPtr("Aerosmith (remastered)")})
		if err != nil {
			t.Fatalf("UpdateArtist failed: %v", err)
		}
		artist, _ := s.GetArtist(ctx, f.aerosmith)
		if *artist.Name != "Aerosmith (remastered)" {
			t.Errorf("expected updated name, got %q", *artist.Name)
		}
	})

	t.Run("update missing artist", func(t *testing.T) {
		err := s.UpdateArtist(ctx, &models.Artist{ArtistID: 9999, Name: strPtr("Nobody")})
		if !errors.Is(err, models.ErrArtistNotFound) {
			t.Errorf("expected ErrArtistNotFound, got %v", err)
		}
	})

	t.Run("delete referenced artist is refused", func(t *testing.T) {
		err := s.DeleteArtist(ctx, f.acdc)
		if !errors.Is(err, models.ErrArtistInUse) {
			t.Errorf("expected ErrArtistInUse, got %v", err)
		}
	})

	t.Run("create then delete", func(t *testing.T) {
		artist := &models.Artist{Name: strPtr("Accept")}
		if err := s.CreateArtist(ctx, artist); err != nil {
			t.Fatalf("CreateArtist failed: %v", err)
		}
		if artist.ArtistID == 0 {
			t.Fatal("expected generated ID")
		}
		if err := s.DeleteArtist(ctx, artist.ArtistID); err != nil {
			t.Fatalf("DeleteArtist failed: %v", err)
		}
		if err := s.DeleteArtist(ctx, artist.ArtistID); !errors.Is(err, models.ErrArtistNotFound) {
			t.Errorf("expected ErrArtistNotFound on second delete, got %v", err)
		}
	})

	t.Run("create with taken id is a duplicate", func(t *testing.T) {
		err := s.CreateArtist(ctx, &models.Artist{ArtistID: f.acdc, Name: strPtr("Clone")})
		if !errors.Is(err, models.ErrDuplicateArtist) {
			t.Errorf("expected ErrDuplicateArtist, got %v", err)
		}
	})
}

func TestAlbumOperations(t *testing.T) {
	s := createTestStore(t)
	f := seedCatalog(t, s)
	ctx := context.Background()

	t.Run("filter by artist", func(t *testing.T) {
		albums, err := s.ListAlbums(ctx, ListOptions{Filters: map[string]int64{"artist_id": f.aerosmith}})
		if err != nil {
			t.Fatalf("ListAlbums failed: %v", err)
		}
		if len(albums) != 1 || albums[0].AlbumID != f.bolt {
			t.Errorf("expected only album %d, got %+v", f.bolt, albums)
		}
	})

	t.Run("unknown filter", func(t *testing.T) {
		_, err := s.ListAlbums(ctx, ListOptions{Filters: map[string]int64{"genre_id": 1}})
		if !errors.Is(err, models.ErrInvalidFilter) {
			t.Errorf("expected ErrInvalidFilter, got %v", err)
		}
	})

	t.Run("get embeds artist and tracks", func(t *testing.T) {
		album, err := s.GetAlbum(ctx, f.forThoseAbout)
		if err != nil {
			t.Fatalf("GetAlbum failed: %v", err)
		}
		if album.Artist == nil || album.Artist.ArtistID != f.acdc {
			t.Errorf("expected embedded artist %d, got %+v", f.acdc, album.Artist)
		}
		if len(album.Tracks) != 2 {
			t.Errorf("expected 2 tracks, got %d", len(album.Tracks))
		}
	})

	t.Run("create with unknown artist", func(t *testing.T) {
		err := s.CreateAlbum(ctx, &models.Album{Title: "Ghost", ArtistID: 9999})
		if !errors.Is(err, models.ErrInvalidReference) {
			t.Errorf("expected ErrInvalidReference, got %v", err)
		}
	})

	t.Run("create ignores embedded artist", func(t *testing.T) {
		album := &models.Album{
			Title:    "Let There Be Rock",
			ArtistID: f.acdc,
			Artist:   &models.Artist{Name: strPtr("should not be inserted")},
		}
		if err := s.CreateAlbum(ctx, album); err != nil {
			t.Fatalf("CreateAlbum failed: %v", err)
		}
		artists, _ := s.ListArtists(ctx, ListOptions{})
		if len(artists) != 2 {
			t.Errorf("expected association to be skipped, found %d artists", len(artists))
		}
	})
}

func TestTrackOperations(t *testing.T) {
	s := createTestStore(t)
	f := seedCatalog(t, s)
	ctx := context.Background()

	cases := []struct {
		name    string
		filters map[string]int64
		want    []int64
	}{
		{"no filter", nil, []int64{f.track1, f.track2, f.track3}},
		{"album", map[string]int64{"album_id": f.forThoseAbout}, []int64{f.track1, f.track2}},
		{"artist through album", map[string]int64{"artist_id": f.aerosmith}, []int64{f.track3}},
		{"genre", map[string]int64{"genre_id": f.jazz}, []int64{f.track3}},
		{"album and genre", map[string]int64{"album_id": f.forThoseAbout, "genre_id": f.jazz}, nil},
	}

	for _, tc := range cases {
		t.Run("list "+tc.name, func(t *testing.T) {
			tracks, err := s.ListTracks(ctx, ListOptions{Filters: tc.filters})
			if err != nil {
				t.Fatalf("ListTracks failed: %v", err)
			}
			if len(tracks) != len(tc.want) {
				t.Fatalf("expected %d tracks, got %d", len(tc.want), len(tracks))
			}
			for i, id := range tc.want {
				if tracks[i].TrackID != id {
					t.Errorf("track %d: expected %d, got %d", i, id, tracks[i].TrackID)
				}
			}
		})
	}

	t.Run("get embeds album genre and media type", func(t *testing.T) {
		track, err := s.GetTrack(ctx, f.track3)
		if err != nil {
			t.Fatalf("GetTrack failed: %v", err)
		}
		if track.Album == nil || track.Album.Artist == nil || *track.Album.Artist.Name != "Aerosmith" {
			t.Errorf("expected album with artist, got %+v", track.Album)
		}
		if track.Genre == nil || *track.Genre.Name != "Jazz" {
			t.Errorf("expected Jazz genre, got %+v", track.Genre)
		}
		if track.MediaType == nil || track.MediaType.MediaTypeID != f.mpeg {
			t.Errorf("expected media type %d, got %+v", f.mpeg, track.MediaType)
		}
	})

	t.Run("delete purchased track is refused", func(t *testing.T) {
		if err := s.DeleteTrack(ctx, f.track1); !errors.Is(err, models.ErrTrackInUse) {
			t.Errorf("expected ErrTrackInUse, got %v", err)
		}
	})
}

func TestInvoiceOperations(t *testing.T) {
	s := createTestStore(t)
	f := seedCatalog(t, s)
	ctx := context.Background()

	t.Run("filter by customer", func(t *testing.T) {
		invoices, err := s.ListInvoices(ctx, ListOptions{Filters: map[string]int64{"customer_id": f.customer}})
		if err != nil {
			t.Fatalf("ListInvoices failed: %v", err)
		}
		if len(invoices) != 1 {
			t.Errorf("expected 1 invoice, got %d", len(invoices))
		}

		none, err := s.ListInvoices(ctx, ListOptions{Filters: map[string]int64{"customer_id": 9999}})
		if err != nil {
			t.Fatalf("ListInvoices failed: %v", err)
		}
		if len(none) != 0 {
			t.Errorf("expected no invoices, got %d", len(none))
		}
	})

	t.Run("get embeds customer and lines", func(t *testing.T) {
		invoice, err := s.GetInvoice(ctx, f.invoice)
		if err != nil {
			t.Fatalf("GetInvoice failed: %v", err)
		}
		if invoice.Customer == nil || invoice.Customer.CustomerID != f.customer {
			t.Errorf("expected customer %d, got %+v", f.customer, invoice.Customer)
		}
		if len(invoice.InvoiceLines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(invoice.InvoiceLines))
		}
		if invoice.InvoiceLines[0].Track == nil {
			t.Error("expected line track to be embedded")
		}
	})

	t.Run("delete removes lines", func(t *testing.T) {
		if err := s.DeleteInvoice(ctx, f.invoice); err != nil {
			t.Fatalf("DeleteInvoice failed: %v", err)
		}
		var count int64
		s.db.Model(&models.InvoiceLine{}).Where("invoice_id = ?", f.invoice).Count(&count)
		if count != 0 {
			t.Errorf("expected lines to be deleted, %d remain", count)
		}
		if err := s.DeleteInvoice(ctx, f.invoice); !errors.Is(err, models.ErrInvoiceNotFound) {
			t.Errorf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestPeopleOperations(t *testing.T) {
	s := createTestStore(t)
	f := seedCatalog(t, s)
	ctx := context.Background()

	t.Run("customer embeds support rep", func(t *testing.T) {
		customer, err := s.GetCustomer(ctx, f.customer)
		if err != nil {
			t.Fatalf("GetCustomer failed: %v", err)
		}
		if customer.SupportRep == nil || customer.SupportRep.EmployeeID != f.rep {
			t.Errorf("expected support rep %d, got %+v", f.rep, customer.SupportRep)
		}
	})

	t.Run("customers by support rep", func(t *testing.T) {
		customers, err := s.ListCustomers(ctx, ListOptions{Filters: map[string]int64{"support_rep_id": f.manager}})
		if err != nil {
			t.Fatalf("ListCustomers failed: %v", err)
		}
		if len(customers) != 0 {
			t.Errorf("expected no customers for manager, got %d", len(customers))
		}
	})

	t.Run("employee embeds manager", func(t *testing.T) {
		employee, err := s.GetEmployee(ctx, f.rep)
		if err != nil {
			t.Fatalf("GetEmployee failed: %v", err)
		}
		if employee.Manager == nil || employee.Manager.EmployeeID != f.manager {
			t.Errorf("expected manager %d, got %+v", f.manager, employee.Manager)
		}
	})

	t.Run("employees by manager", func(t *testing.T) {
		employees, err := s.ListEmployees(ctx, ListOptions{Filters: map[string]int64{"reports_to": f.manager}})
		if err != nil {
			t.Fatalf("ListEmployees failed: %v", err)
		}
		if len(employees) != 1 || employees[0].EmployeeID != f.rep {
			t.Errorf("expected only employee %d, got %+v", f.rep, employees)
		}
	})

	t.Run("delete employee with customers is refused", func(t *testing.T) {
		if err := s.DeleteEmployee(ctx, f.rep); !errors.Is(err, models.ErrEmployeeInUse) {
			t.Errorf("expected ErrEmployeeInUse, got %v", err)
		}
	})

	t.Run("update customer", func(t *testing.T) {
		customer, _ := s.GetCustomer(ctx, f.customer)
		customer.SupportRep = nil
		customer.City = strPtr("São José dos Campos")
		if err := s.UpdateCustomer(ctx, customer); err != nil {
			t.Fatalf("UpdateCustomer failed: %v", err)
		}
		got, _ := s.GetCustomer(ctx, f.customer)
		if got.City == nil || *got.City != "São José dos Campos" {
			t.Errorf("expected city to be updated, got %v", got.City)
		}
	})
}

func TestPlaylistOperations(t *testing.T) {
	s := createTestStore(t)
	f := seedCatalog(t, s)
	ctx := context.Background()

	t.Run("get embeds tracks", func(t *testing.T) {
		playlist, err := s.GetPlaylist(ctx, f.playlist)
		if err != nil {
			t.Fatalf("GetPlaylist failed: %v", err)
		}
		if len(playlist.Tracks) != 1 || playlist.Tracks[0].TrackID != f.track1 {
			t.Errorf("expected track %d, got %+v", f.track1, playlist.Tracks)
		}
	})

	t.Run("add is idempotent", func(t *testing.T) {
		if err := s.AddPlaylistTrack(ctx, f.playlist, f.track3); err != nil {
			t.Fatalf("AddPlaylistTrack failed: %v", err)
		}
		if err := s.AddPlaylistTrack(ctx, f.playlist, f.track3); err != nil {
			t.Fatalf("second AddPlaylistTrack failed: %v", err)
		}
		playlist, _ := s.GetPlaylist(ctx, f.playlist)
		if len(playlist.Tracks) != 2 {
			t.Errorf("expected 2 tracks, got %d", len(playlist.Tracks))
		}
	})

	t.Run("add unknown track", func(t *testing.T) {
		if err := s.AddPlaylistTrack(ctx, f.playlist, 9999); !errors.Is(err, models.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
		if err := s.AddPlaylistTrack(ctx, 9999, f.track1); !errors.Is(err, models.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("remove membership", func(t *testing.T) {
		if err := s.RemovePlaylistTrack(ctx, f.playlist, f.track3); err != nil {
			t.Fatalf("RemovePlaylistTrack failed: %v", err)
		}
		if err := s.RemovePlaylistTrack(ctx, f.playlist, f.track3); !errors.Is(err, models.ErrPlaylistTrackNotFound) {
			t.Errorf("expected ErrPlaylistTrackNotFound, got %v", err)
		}
	})

	t.Run("delete keeps tracks", func(t *testing.T) {
		if err := s.DeletePlaylist(ctx, f.playlist); err != nil {
			t.Fatalf("DeletePlaylist failed: %v", err)
		}
		if _, err := s.GetTrack(ctx, f.track1); err != nil {
			t.Errorf("expected track to survive playlist deletion, got %v", err)
		}
		if _, err := s.GetPlaylist(ctx, f.playlist); !errors.Is(err, models.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})
}

func TestGenreOperations(t *testing.T) {
	s := createTestStore(t)
	f := seedCatalog(t, s)
	ctx := context.Background()

	genres, err := s.ListGenres(ctx, ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("ListGenres failed: %v", err)
	}
	if len(genres) != 1 || genres[0].GenreID != f.rock {
		t.Errorf("expected first genre %d, got %+v", f.rock, genres)
	}

	if err := s.DeleteGenre(ctx, f.jazz); !errors.Is(err, models.ErrGenreInUse) {
		t.Errorf("expected ErrGenreInUse, got %v", err)
	}

	blues := &models.Genre{Name: strPtr("Blues")}
	if err := s.CreateGenre(ctx, blues); err != nil {
		t.Fatalf("CreateGenre failed: %v", err)
	}
	if err := s.DeleteGenre(ctx, blues.GenreID); err != nil {
		t.Errorf("DeleteGenre failed: %v", err)
	}
}
