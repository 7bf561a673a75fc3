package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// ============================================
// TRACK OPERATIONS
// ============================================

var trackErrors = errorSet{
	notFound:  models.ErrTrackNotFound,
	duplicate: models.ErrDuplicateTrack,
	inUse:     models.ErrTrackInUse,
}

// trackFilters returns the filters accepted by ListTracks. artist_id has
// no column on track and goes through the album table.
func (s *GORMStore) trackFilters() map[string]filterFunc {
	return map[string]filterFunc{
		"album_id": columnFilter("album_id"),
		"genre_id": columnFilter("genre_id"),
		"artist_id": func(q *gorm.DB, value int64) *gorm.DB {
			albums := s.db.Model(&models.Album{}).Select("album_id").Where("artist_id = ?", value)
			return q.Where("album_id IN (?)", albums)
		},
	}
}

func (s *GORMStore) ListTracks(ctx context.Context, opts ListOptions) ([]*models.Track, error) {
	return listPage[models.Track](s.db, ctx, "track_id", opts, s.trackFilters())
}

func (s *GORMStore) GetTrack(ctx context.Context, id int64) (*models.Track, error) {
	return getByID[models.Track](s.db, ctx, "track_id", id, models.ErrTrackNotFound, "Album", "Album.Artist", "Genre", "MediaType")
}

func (s *GORMStore) CreateTrack(ctx context.Context, track *models.Track) error {
	return createEntity(s.db, ctx, track, trackErrors)
}

func (s *GORMStore) UpdateTrack(ctx context.Context, track *models.Track) error {
	return updateEntity(s.db, ctx, "track_id", track, trackErrors)
}

func (s *GORMStore) DeleteTrack(ctx context.Context, id int64) error {
	return deleteByID[models.Track](s.db, ctx, "track_id", id, trackErrors)
}
