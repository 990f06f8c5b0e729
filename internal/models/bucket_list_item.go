package models

import "gorm.io/gorm"

type BucketListItem struct {
	gorm.Model

	UserID     uint   `gorm:"not null;index"`
	Text       string `gorm:"not null"`
	IsComplete bool   `gorm:"not null;default:false"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (BucketListItem) TableName() string { return "bucket_list" }
