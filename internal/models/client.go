package models

import "gorm.io/gorm"

type Client struct {
	gorm.Model

	Name string `gorm:"uniqueIndex;not null"`

	// Relationships
	Projects []Project `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
