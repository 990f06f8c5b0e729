package models

import "gorm.io/gorm"

// CapsuleMembership grants read/write access to a capsule's child tables.
// The owner gets a membership row at capsule creation time.
type CapsuleMembership struct {
	gorm.Model

	CapsuleID uint `gorm:"not null;uniqueIndex:idx_capsule_user"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_capsule_user"`

	// Relationships
	Capsule Capsule `gorm:"foreignKey:CapsuleID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (CapsuleMembership) TableName() string { return "shared_capsule_members" }
