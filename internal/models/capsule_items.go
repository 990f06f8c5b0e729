package models

import (
	"time"

	"gorm.io/gorm"
)

// Capsule child tables. Unlike their personal counterparts they have no
// soft-delete column: deleting a row removes it for every member.

type CapsuleJournal struct {
	gorm.Model

	CapsuleID uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Text      string `gorm:"not null"`
	ImageURL  string

	// Relationships
	Capsule Capsule `gorm:"foreignKey:CapsuleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (CapsuleJournal) TableName() string { return "shared_journal" }

type CapsuleBucketItem struct {
	gorm.Model

	CapsuleID  uint   `gorm:"not null;index"`
	UserID     uint   `gorm:"not null;index"`
	Text       string `gorm:"not null"`
	IsComplete bool   `gorm:"not null;default:false"`

	// Relationships
	Capsule Capsule `gorm:"foreignKey:CapsuleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (CapsuleBucketItem) TableName() string { return "shared_bucket_list" }

type CapsuleLetter struct {
	gorm.Model

	CapsuleID  uint      `gorm:"not null;index"`
	UserID     uint      `gorm:"not null;index"`
	Text       string    `gorm:"not null"`
	UnlockDate time.Time `gorm:"not null"`

	// Relationships
	Capsule Capsule `gorm:"foreignKey:CapsuleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (CapsuleLetter) TableName() string { return "shared_future_letters" }

type CapsuleFavorite struct {
	gorm.Model

	CapsuleID uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Category  string `gorm:"not null"`
	Title     string `gorm:"not null"`
	Notes     string
	ImageURL  string

	// Relationships
	Capsule Capsule `gorm:"foreignKey:CapsuleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (CapsuleFavorite) TableName() string { return "shared_favorites" }
