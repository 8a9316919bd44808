package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Delivery struct {
	gorm.Model

	ProjectID    uint           `gorm:"not null;index"`
	UserID       uint           `gorm:"not null;index"`
	Role         string         `gorm:"not null"` // one of finance.Phases
	Description  string         `gorm:"not null"`
	DeliveryDate datatypes.Date `gorm:"not null"`

	GrossAmount float64 `gorm:"not null"`
	NetAmount   float64 `gorm:"not null"`

	// Month/Year are derived from DeliveryDate at write time and act as the
	// reporting partition key.
	Month int `gorm:"not null;index:idx_deliveries_period"`
	Year  int `gorm:"not null;index:idx_deliveries_period"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
