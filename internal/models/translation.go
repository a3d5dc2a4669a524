package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductTranslation struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_translations_owner_language" json:"product_id"`
	Language         string    `gorm:"size:5;not null;uniqueIndex:idx_product_translations_owner_language;index" json:"language"`
	Name             string    `json:"name"`
	Description      string    `gorm:"type:text" json:"description"`
	ShortDescription string    `json:"short_description"`
	MetaTitle        string    `json:"meta_title"`
	MetaDescription  string    `json:"meta_description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (ProductTranslation) TableName() string {
	return "product_translations"
}

func (t ProductTranslation) LanguageCode() string { return t.Language }

type BrandTranslation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BrandID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_brand_translations_owner_language" json:"brand_id"`
	Language    string    `gorm:"size:5;not null;uniqueIndex:idx_brand_translations_owner_language;index" json:"language"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (BrandTranslation) TableName() string {
	return "brand_translations"
}

func (t BrandTranslation) LanguageCode() string { return t.Language }

type CategoryTranslation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_category_translations_owner_language" json:"category_id"`
	Language    string    `gorm:"size:5;not null;uniqueIndex:idx_category_translations_owner_language;index" json:"language"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CategoryTranslation) TableName() string {
	return "category_translations"
}

func (t CategoryTranslation) LanguageCode() string { return t.Language }

// TranslationFields is the set of localizable values an admin can upsert for
// one (entity, language) pair. Brands and categories only use Name and
// Description.
type TranslationFields struct {
	Name             string
	Description      string
	ShortDescription string
	MetaTitle        string
	MetaDescription  string
}

// UITranslation is a storefront UI string keyed by a dotted path such as
// "header.menu.home".
type UITranslation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:255;not null;uniqueIndex:idx_ui_translations_key_language" json:"key"`
	Language  string    `gorm:"size:5;not null;uniqueIndex:idx_ui_translations_key_language;index" json:"language"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UITranslation) TableName() string {
	return "ui_translations"
}

type UITranslationValue struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// UITranslationGroup lists every language's value for one key.
type UITranslationGroup struct {
	Key          string               `json:"key"`
	Translations []UITranslationValue `json:"translations"`
}
