package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Favorite categories, matching the search providers.
const (
	CategoryMovie = "Movie"
	CategoryBook  = "Book"
	CategorySong  = "Song"
)

type Favorite struct {
	gorm.Model

	UserID   uint   `gorm:"not null;index"`
	Category string `gorm:"not null"` // "Movie", "Book" or "Song"
	Title    string `gorm:"not null"`
	Notes    string
	ImageURL string
	Metadata datatypes.JSON `gorm:"type:jsonb"` // raw upstream search payload

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (Favorite) TableName() string { return "favorites" }
