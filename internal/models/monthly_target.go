package models

import "gorm.io/gorm"

type MonthlyTarget struct {
	gorm.Model

	Month        int     `gorm:"not null;uniqueIndex:idx_target_period"`
	Year         int     `gorm:"not null;uniqueIndex:idx_target_period"`
	TargetAmount float64 `gorm:"not null"`
}
