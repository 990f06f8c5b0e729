package models

import (
	"time"

	"gorm.io/gorm"
)

// Share item types.
const (
	ItemTypeJournal = "journal"
	ItemTypeLetter  = "letter"
)

// SharedItem is a copy-by-reference grant from sender to recipient. Each side
// dismisses its own inbox copy with its own flag; the row itself is retained
// even when both flags are set.
type SharedItem struct {
	gorm.Model

	SenderID         uint   `gorm:"not null;index"`
	RecipientID      uint   `gorm:"not null;index"`
	SourceItemID     uint   `gorm:"not null"`
	ItemType         string `gorm:"not null"` // "journal" or "letter"
	UnlockDate       *time.Time
	PersonalNote     string
	SenderDeleted    bool `gorm:"not null;default:false"`
	RecipientDeleted bool `gorm:"not null;default:false"`

	// Relationships
	Sender    User `gorm:"foreignKey:SenderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Recipient User `gorm:"foreignKey:RecipientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (SharedItem) TableName() string { return "shared_items" }
