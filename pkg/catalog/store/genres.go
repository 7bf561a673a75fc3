package store

import (
	"context"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// ============================================
// GENRE OPERATIONS
// ============================================

var genreErrors = errorSet{
	notFound:  models.ErrGenreNotFound,
	duplicate: models.ErrDuplicateGenre,
	inUse:     models.ErrGenreInUse,
}

func (s *GORMStore) ListGenres(ctx context.Context, opts ListOptions) ([]*models.Genre, error) {
	return listPage[models.Genre](s.db, ctx, "genre_id", opts, nil)
}

func (s *GORMStore) GetGenre(ctx context.Context, id int64) (*models.Genre, error) {
	return getByID[models.Genre](s.db, ctx, "genre_id", id, models.ErrGenreNotFound)
}

func (s *GORMStore) CreateGenre(ctx context.Context, genre *models.Genre) error {
	return createEntity(s.db, ctx, genre, genreErrors)
}

func (s *GORMStore) UpdateGenre(ctx context.Context, genre *models.Genre) error {
	return updateEntity(s.db, ctx, "genre_id", genre, genreErrors)
}

func (s *GORMStore) DeleteGenre(ctx context.Context, id int64) error {
	return deleteByID[models.Genre](s.db, ctx, "genre_id", id, genreErrors)
}
