package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	Name     string `gorm:"not null"`
	ClientID uint   `gorm:"not null;index"`

	// Declared contract totals, fixed at creation. These are intentionally
	// never reconciled against the sum of the project's delivery rows.
	TotalGrossDelivery float64 `gorm:"not null"`
	TotalNetDelivery   float64 `gorm:"not null"`

	// Relationships
	Client     Client     `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Deliveries []Delivery `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
