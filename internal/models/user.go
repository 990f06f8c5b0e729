package models

import "gorm.io/gorm"

// User rows live in the "profiles" table so the email lookup used by the
// share relay matches the wire contract.
type User struct {
	gorm.Model

	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Relationships
	OwnedCapsules      []Capsule           `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	CapsuleMemberships []CapsuleMembership `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (User) TableName() string { return "profiles" }
