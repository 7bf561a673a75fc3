package models

// Genre classifies tracks.
type Genre struct {
	GenreID int64   `gorm:"primaryKey;column:genre_id" json:"genre_id"`
	Name    *string `gorm:"size:120" json:"name" validate:"omitempty,max=120"`
}

func (Genre) TableName() string { return "genre" }

func (g *Genre) PrimaryKey() int64 { return g.GenreID }

func (g *Genre) SetPrimaryKey(id int64) { g.GenreID = id }

// MediaType is the encoding of a track file. It is read-only and only
// appears embedded in track details.
type MediaType struct {
	MediaTypeID int64   `gorm:"primaryKey;column:media_type_id" json:"media_type_id"`
	Name        *string `gorm:"size:120" json:"name"`
}

func (MediaType) TableName() string { return "media_type" }
