package models

// Artist is a recording artist.
type Artist struct {
	ArtistID int64   `gorm:"primaryKey;column:artist_id" json:"artist_id"`
	Name     *string `gorm:"size:120" json:"name" validate:"omitempty,max=120"`

	Albums []Album `gorm:"foreignKey:ArtistID;references:ArtistID" json:"albums,omitempty" validate:"-"`
}

func (Artist) TableName() string { return "artist" }

func (a *Artist) PrimaryKey() int64 { return a.ArtistID }

func (a *Artist) SetPrimaryKey(id int64) { a.ArtistID = id }
