package models

// Track is a single song on an album.
type Track struct {
	TrackID      int64   `gorm:"primaryKey;column:track_id" json:"track_id"`
	Name         string  `gorm:"size:200;not null" json:"name" validate:"required,max=200"`
	AlbumID      *int64  `gorm:"index" json:"album_id" validate:"omitempty,gt=0"`
	MediaTypeID  int64   `gorm:"not null;index" json:"media_type_id" validate:"required,gt=0"`
	GenreID      *int64  `gorm:"index" json:"genre_id" validate:"omitempty,gt=0"`
	Composer     *string `gorm:"size:220" json:"composer" validate:"omitempty,max=220"`
	Milliseconds int64   `gorm:"not null" json:"milliseconds" validate:"gte=0"`
	Bytes        *int64  `json:"bytes" validate:"omitempty,gte=0"`
	UnitPrice    float64 `gorm:"type:numeric(10,2);not null" json:"unit_price" validate:"gte=0"`

	Album     *Album     `json:"album,omitempty" validate:"-"`
	Genre     *Genre     `json:"genre,omitempty" validate:"-"`
	MediaType *MediaType `json:"media_type,omitempty" validate:"-"`
}

func (Track) TableName() string { return "track" }

func (t *Track) PrimaryKey() int64 { return t.TrackID }

func (t *Track) SetPrimaryKey(id int64) { t.TrackID = id }
