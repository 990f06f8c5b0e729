package models

import (
	"time"

	"gorm.io/gorm"
)

// FutureLetter is a personal letter whose text stays hidden from everyone,
// the author included, until its unlock date.
type FutureLetter struct {
	gorm.Model

	UserID     uint      `gorm:"not null;index"`
	Text       string    `gorm:"not null"`
	UnlockDate time.Time `gorm:"not null"`
	IsDeleted  bool      `gorm:"not null;default:false"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (FutureLetter) TableName() string { return "future_letters" }
