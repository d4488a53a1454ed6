package models

import "gorm.io/gorm"

type Capper struct {
	gorm.Model
	ID             uint    `gorm:"primaryKey"`
	CapperID       string  `gorm:"uniqueIndex; size:64"`
	Username       string  `gorm:"uniqueIndex; size:64"`
	LastSeenPostID *string `gorm:"size:64"`
}
