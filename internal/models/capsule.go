package models

import "gorm.io/gorm"

// Capsule is a shared space with independently toggleable sections. The name
// is unique per owner; child rows hard-delete with the capsule.
type Capsule struct {
	gorm.Model

	OwnerID          uint   `gorm:"not null;index;uniqueIndex:idx_owner_name"`
	Name             string `gorm:"not null;uniqueIndex:idx_owner_name"`
	// Plain bool columns on purpose: a column default would swallow an
	// explicit false on insert.
	HasJournal       bool `gorm:"not null"`
	HasBucketList    bool `gorm:"not null"`
	HasFutureLetters bool `gorm:"not null"`
	HasFavorites     bool `gorm:"not null"`

	// Relationships
	Owner         User                 `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Members       []CapsuleMembership  `gorm:"foreignKey:CapsuleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	JournalItems  []CapsuleJournal     `gorm:"foreignKey:CapsuleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	BucketItems   []CapsuleBucketItem  `gorm:"foreignKey:CapsuleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	FutureLetters []CapsuleLetter      `gorm:"foreignKey:CapsuleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Favorites     []CapsuleFavorite    `gorm:"foreignKey:CapsuleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (Capsule) TableName() string { return "shared_capsules" }
