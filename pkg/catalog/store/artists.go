package store

import (
	"context"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// ============================================
// ARTIST OPERATIONS
// ============================================

var artistErrors = errorSet{
	notFound:  models.ErrArtistNotFound,
	duplicate: models.ErrDuplicateArtist,
	inUse:     models.ErrArtistInUse,
}

func (s *GORMStore) ListArtists(ctx context.Context, opts ListOptions) ([]*models.Artist, error) {
	return listPage[models.Artist](s.db, ctx, "artist_id", opts, nil)
}

func (s *GORMStore) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	return getByID[models.Artist](s.db, ctx, "artist_id", id, models.ErrArtistNotFound, "Albums")
}

func (s *GORMStore) CreateArtist(ctx context.Context, artist *models.Artist) error {
	return createEntity(s.db, ctx, artist, artistErrors)
}

func (s *GORMStore) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	return updateEntity(s.db, ctx, "artist_id", artist, artistErrors)
}

func (s *GORMStore) DeleteArtist(ctx context.Context, id int64) error {
	return deleteByID[models.Artist](s.db, ctx, "artist_id", id, artistErrors)
}
