package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

func TestSchemaReflection(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	schema, err := s.Reflect(ctx)
	if err != nil {
		t.Fatalf("Reflect failed: %v", err)
	}

	for _, name := range []string{"artist", "album", "track", "genre", "media_type", "customer", "invoice", "invoice_line", "employee", "playlist", "playlist_track"} {
		if _, ok := schema.Table(name); !ok {
			t.Errorf("expected table %s in %v", name, schema.TableNames())
		}
	}

	if err := schema.Verify(s.DB(), models.AllModels()...); err != nil {
		t.Errorf("expected mapping to verify, got %v", err)
	}
}

func TestSchemaVerifyReportsMissing(t *testing.T) {
	s := createTestStore(t)

	schema, err := s.Reflect(context.Background())
	if err != nil {
		t.Fatalf("Reflect failed: %v", err)
	}

	delete(schema.Tables, "genre")
	album := schema.Tables["album"]
	album.Columns = album.Columns[:1]

	err = schema.Verify(s.DB(), models.AllModels()...)
	if !errors.Is(err, models.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "table genre") {
		t.Errorf("expected missing genre table in %q", err)
	}
	if !strings.Contains(err.Error(), "album.") {
		t.Errorf("expected missing album columns in %q", err)
	}
}

func TestConnector(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chinook.db")
	config := &Config{Type: DatabaseTypeSQLite, SQLite: SQLiteConfig{Path: path}}

	t.Run("empty database does not verify", func(t *testing.T) {
		connector := NewConnector(config)
		err := connector.Probe(ctx)
		if !IsSchemaMismatch(err) {
			t.Fatalf("expected schema mismatch, got %v", err)
		}
		if connector.Store() != nil {
			t.Error("expected no store after failed probe")
		}
	})

	t.Run("migrated database verifies", func(t *testing.T) {
		if _, err := Migrate(ctx, config); err != nil {
			t.Fatalf("Migrate failed: %v", err)
		}

		connector := NewConnector(config)
		if err := connector.Probe(ctx); err != nil {
			t.Fatalf("Probe failed: %v", err)
		}
		st := connector.Store()
		if st == nil {
			t.Fatal("expected store after successful probe")
		}
		defer st.Close()

		if connector.Schema() == nil {
			t.Error("expected reflected schema")
		}

		// A second probe keeps the adopted store.
		if err := connector.Probe(ctx); err != nil {
			t.Errorf("second Probe failed: %v", err)
		}
		if connector.Store() != st {
			t.Error("expected the same store instance")
		}
	})
}

type foreignKey struct {
	Table string `gorm:"column:table"`
	From  string `gorm:"column:from"`
	To    string `gorm:"column:to"`
}

func foreignKeys(t *testing.T, s *GORMStore, table string) []foreignKey {
	t.Helper()
	var fks []foreignKey
	if err := s.DB().Raw("SELECT * FROM pragma_foreign_key_list(?)", table).Scan(&fks).Error; err != nil {
		t.Fatalf("failed to list foreign keys of %s: %v", table, err)
	}
	return fks
}

func TestEnsureSchemaForeignKeyDirection(t *testing.T) {
	s := createTestStore(t)

	for _, table := range []string{"artist", "genre", "media_type", "playlist"} {
		if fks := foreignKeys(t, s, table); len(fks) != 0 {
			t.Errorf("expected no foreign keys on %s, got %+v", table, fks)
		}
	}

	expected := map[string][]foreignKey{
		"album":        {{Table: "artist", From: "artist_id", To: "artist_id"}},
		"track":        {{Table: "album", From: "album_id", To: "album_id"}, {Table: "genre", From: "genre_id", To: "genre_id"}, {Table: "media_type", From: "media_type_id", To: "media_type_id"}},
		"customer":     {{Table: "employee", From: "support_rep_id", To: "employee_id"}},
		"invoice":      {{Table: "customer", From: "customer_id", To: "customer_id"}},
		"invoice_line": {{Table: "invoice", From: "invoice_id", To: "invoice_id"}, {Table: "track", From: "track_id", To: "track_id"}},
	}
	for table, want := range expected {
		got := foreignKeys(t, s, table)
		for _, fk := range want {
			found := false
			for _, g := range got {
				if g == fk {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected %s.%s to reference %s.%s, got %+v", table, fk.From, fk.Table, fk.To, got)
			}
		}
	}

	var ddl string
	if err := s.DB().Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'artist'").Scan(&ddl).Error; err != nil {
		t.Fatalf("failed to read artist DDL: %v", err)
	}
	if strings.Contains(ddl, "REFERENCES") {
		t.Errorf("artist must not reference other tables: %s", ddl)
	}
}

func TestCreateAgainstEnsuredSchema(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	artist := &models.Artist{Name: strPtr("Accept")}
	if err := s.CreateArtist(ctx, artist); err != nil {
		t.Fatalf("CreateArtist failed: %v", err)
	}
	album := &models.Album{Title: "Balls to the Wall", ArtistID: artist.ArtistID}
	if err := s.CreateAlbum(ctx, album); err != nil {
		t.Fatalf("CreateAlbum failed: %v", err)
	}

	orphan := &models.Album{Title: "Restless and Wild", ArtistID: 9999}
	if err := s.CreateAlbum(ctx, orphan); !errors.Is(err, models.ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference, got %v", err)
	}
}
