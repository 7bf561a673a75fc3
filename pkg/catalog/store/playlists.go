package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chinookhq/chinook-api/pkg/catalog/models"
)

// ============================================
// PLAYLIST OPERATIONS
// ============================================

var playlistErrors = errorSet{
	notFound:  models.ErrPlaylistNotFound,
	duplicate: models.ErrDuplicatePlaylist,
	inUse:     models.ErrPlaylistInUse,
}

func (s *GORMStore) ListPlaylists(ctx context.Context, opts ListOptions) ([]*models.Playlist, error) {
	return listPage[models.Playlist](s.db, ctx, "playlist_id", opts, nil)
}

func (s *GORMStore) GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error) {
	return getByID[models.Playlist](s.db, ctx, "playlist_id", id, models.ErrPlaylistNotFound, "Tracks")
}

func (s *GORMStore) CreatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	return createEntity(s.db, ctx, playlist, playlistErrors)
}

func (s *GORMStore) UpdatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	return updateEntity(s.db, ctx, "playlist_id", playlist, playlistErrors)
}

// DeletePlaylist removes the playlist and its memberships. Tracks are kept.
func (s *GORMStore) DeletePlaylist(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists[models.Playlist](tx, ctx, "playlist_id", id)
		if err != nil {
			return err
		}
		if !found {
			return models.ErrPlaylistNotFound
		}

		if err := tx.Where("playlist_id = ?", id).Delete(&models.PlaylistTrack{}).Error; err != nil {
			return err
		}

		return deleteByID[models.Playlist](tx, ctx, "playlist_id", id, playlistErrors)
	})
}

// AddPlaylistTrack adds a track to a playlist. Adding a track that is
// already a member is a no-op.
func (s *GORMStore) AddPlaylistTrack(ctx context.Context, playlistID, trackID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists[models.Playlist](tx, ctx, "playlist_id", playlistID)
		if err != nil {
			return err
		}
		if !found {
			return models.ErrPlaylistNotFound
		}

		found, err = exists[models.Track](tx, ctx, "track_id", trackID)
		if err != nil {
			return err
		}
		if !found {
			return models.ErrTrackNotFound
		}

		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.PlaylistTrack{PlaylistID: playlistID, TrackID: trackID}).Error
	})
}

// RemovePlaylistTrack removes a track from a playlist.
func (s *GORMStore) RemovePlaylistTrack(ctx context.Context, playlistID, trackID int64) error {
	result := s.db.WithContext(ctx).
		Where("playlist_id = ? AND track_id = ?", playlistID, trackID).
		Delete(&models.PlaylistTrack{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrPlaylistTrackNotFound
	}
	return nil
}
