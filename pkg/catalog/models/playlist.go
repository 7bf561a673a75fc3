package models

// Playlist is a named collection of tracks.
type Playlist struct {
	PlaylistID int64   `gorm:"primaryKey;column:playlist_id" json:"playlist_id"`
	Name       *string `gorm:"size:120" json:"name" validate:"omitempty,max=120"`

	Tracks []Track `gorm:"many2many:playlist_track;foreignKey:PlaylistID;joinForeignKey:PlaylistID;references:TrackID;joinReferences:TrackID" json:"tracks,omitempty" validate:"-"`
}

func (Playlist) TableName() string { return "playlist" }

func (p *Playlist) PrimaryKey() int64 { return p.PlaylistID }

func (p *Playlist) SetPrimaryKey(id int64) { p.PlaylistID = id }

// PlaylistTrack is the playlist membership join row.
type PlaylistTrack struct {
	PlaylistID int64 `gorm:"primaryKey;autoIncrement:false" json:"playlist_id"`
	TrackID    int64 `gorm:"primaryKey;autoIncrement:false;index" json:"track_id"`
}

func (PlaylistTrack) TableName() string { return "playlist_track" }
