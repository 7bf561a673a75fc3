package store

import (
	"context"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// ============================================
// ALBUM OPERATIONS
// ============================================

var albumErrors = errorSet{
	notFound:  models.ErrAlbumNotFound,
	duplicate: models.ErrDuplicateAlbum,
	inUse:     models.ErrAlbumInUse,
}

var albumFilters = map[string]filterFunc{
	"artist_id": columnFilter("artist_id"),
}

func (s *GORMStore) ListAlbums(ctx context.Context, opts ListOptions) ([]*models.Album, error) {
	return listPage[models.Album](s.db, ctx, "album_id", opts, albumFilters)
}

func (s *GORMStore) GetAlbum(ctx context.Context, id int64) (*models.Album, error) {
	return getByID[models.Album](s.db, ctx, "album_id", id, models.ErrAlbumNotFound, "Artist", "Tracks")
}

func (s *GORMStore) CreateAlbum(ctx context.Context, album *models.Album) error {
	return createEntity(s.db, ctx, album, albumErrors)
}

func (s *GORMStore) UpdateAlbum(ctx context.Context, album *models.Album) error {
	return updateEntity(s.db, ctx, "album_id", album, albumErrors)
}

func (s *GORMStore) DeleteAlbum(ctx context.Context, id int64) error {
	return deleteByID[models.Album](s.db, ctx, "album_id", id, albumErrors)
}
