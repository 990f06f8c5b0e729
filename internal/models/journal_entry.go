package models

import "gorm.io/gorm"

// JournalEntry is a personal journal row. Deletion is soft: the row stays
// queryable by id so existing shares keep working.
type JournalEntry struct {
	gorm.Model

	UserID    uint   `gorm:"not null;index"`
	Text      string `gorm:"not null"`
	ImageURL  string
	IsDeleted bool `gorm:"not null;default:false"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (JournalEntry) TableName() string { return "journal" }
