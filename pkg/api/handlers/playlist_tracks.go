package handlers

import (
	"net/http"

	"github.com/chinookhq/chinook-api/internal/logger"
	"github.com/chinookhq/chinook-api/internal/telemetry"
	"github.com/chinookhq/chinook-api/pkg/catalog/store"
)

// PlaylistTrackHandler manages playlist membership.
type PlaylistTrackHandler struct {
	store store.PlaylistStore
}

// NewPlaylistTrackHandler creates a new PlaylistTrackHandler.
func NewPlaylistTrackHandler(s store.PlaylistStore) *PlaylistTrackHandler {
	return &PlaylistTrackHandler{store: s}
}

// Add handles PUT /api/playlists/{id}/tracks/{track_id}. Adding a track
// that is already a member succeeds without changes.
func (h *PlaylistTrackHandler) Add(w http.ResponseWriter, r *http.Request) {
	playlistID, trackID, ok := h.parseIDs(w, r)
	if !ok {
		return
	}

	ctx, span := telemetry.StartCatalogSpan(r.Context(), "playlists", "add_track",
		telemetry.EntityID(playlistID))
	defer span.End()

	if err := h.store.AddPlaylistTrack(ctx, playlistID, trackID); err != nil {
		writeStoreError(ctx, w, err, "add playlist track")
		return
	}

	logger.InfoCtx(ctx, "Track added to playlist", logger.EntityID(playlistID), "track_id", trackID)
	WriteNoContent(w)
}

// Remove handles DELETE /api/playlists/{id}/tracks/{track_id}.
func (h *PlaylistTrackHandler) Remove(w http.ResponseWriter, r *http.Request) {
	playlistID, trackID, ok := h.parseIDs(w, r)
	if !ok {
		return
	}

	ctx, span := telemetry.StartCatalogSpan(r.Context(), "playlists", "remove_track",
		telemetry.EntityID(playlistID))
	defer span.End()

	if err := h.store.RemovePlaylistTrack(ctx, playlistID, trackID); err != nil {
		writeStoreError(ctx, w, err, "remove playlist track")
		return
	}

	logger.InfoCtx(ctx, "Track removed from playlist", logger.EntityID(playlistID), "track_id", trackID)
	WriteNoContent(w)
}

func (h *PlaylistTrackHandler) parseIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	playlistID, ok := parseIDParam(w, r, "id")
	if !ok {
		return 0, 0, false
	}
	trackID, ok := parseIDParam(w, r, "track_id")
	if !ok {
		return 0, 0, false
	}
	return playlistID, trackID, true
}
