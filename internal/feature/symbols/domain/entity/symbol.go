// Package entity defines the domain models for the symbols feature.
package entity

import "time"

// Symbol represents a tracked stock ticker.
// Code is the plain BIST code (e.g. "THYAO"), without the Yahoo suffix.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Sector    string    `gorm:"size:100;not null;default:''"`
	Market    string    `gorm:"size:100;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
