package models

import "time"

type Language struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"uniqueIndex;not null;size:5" json:"code"` // ISO 639-1 code (e.g., 'en', 'ro')
	Name      string    `gorm:"not null" json:"name"`                    // Full name (e.g., 'English', 'Romanian')
	IsDefault bool      `gorm:"not null;uniqueIndex:idx_languages_single_default,where:is_default = true" json:"is_default"`
	IsActive  bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Language) TableName() string {
	return "languages"
}

// LanguageUpdate carries the optional fields of a language update.
type LanguageUpdate struct {
	Code      *string
	Name      *string
	IsDefault *bool
	IsActive  *bool
}
