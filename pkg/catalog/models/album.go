package models

// Album belongs to one artist and holds tracks.
type Album struct {
	AlbumID  int64  `gorm:"primaryKey;column:album_id" json:"album_id"`
	Title    string `gorm:"size:160;not null" json:"title" validate:"required,max=160"`
	ArtistID int64  `gorm:"not null;index" json:"artist_id" validate:"required,gt=0"`

	Artist *Artist `json:"artist,omitempty" validate:"-"`
	Tracks []Track `gorm:"foreignKey:AlbumID;references:AlbumID" json:"tracks,omitempty" validate:"-"`
}

func (Album) TableName() string { return "album" }

func (a *Album) PrimaryKey() int64 { return a.AlbumID }

func (a *Album) SetPrimaryKey(id int64) { a.AlbumID = id }
