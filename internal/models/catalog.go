package models

import (
	"time"

	"storefront-backend/internal/i18n"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Brand struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string             `gorm:"not null;index" json:"name" example:"Samsung"`
	Slug         string             `gorm:"uniqueIndex;not null" json:"slug" example:"samsung"`
	Description  string             `gorm:"type:text" json:"description"`
	LogoURL      string             `json:"logo_url,omitempty"`
	Translations []BrandTranslation `gorm:"foreignKey:BrandID" json:"translations,omitempty"`
	Products     []Product          `gorm:"foreignKey:BrandID" json:"products,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (Brand) TableName() string {
	return "brands"
}

func (b *Brand) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *Brand) TranslationRecords() []BrandTranslation { return b.Translations }
func (b *Brand) SetTranslationRecords(t []BrandTranslation) { b.Translations = t }

func (b *Brand) Overlay(t BrandTranslation) {
	i18n.OverlayString(&b.Name, t.Name)
	i18n.OverlayString(&b.Description, t.Description)
}

// Localize translates the brand and every product listed under it.
func (b *Brand) Localize(loc i18n.Locale) {
	if b == nil {
		return
	}
	i18n.Apply[BrandTranslation](b, loc)
	LocalizeProducts(b.Products, loc)
}

type Category struct {
	ID           uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string                `gorm:"not null;index" json:"name" example:"Phones"`
	Slug         string                `gorm:"uniqueIndex;not null" json:"slug" example:"phones"`
	Description  string                `gorm:"type:text" json:"description"`
	ParentID     *uuid.UUID            `gorm:"type:uuid;index" json:"parent_id"`
	Parent       *Category             `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children     []Category            `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Products     []Product             `gorm:"many2many:product_categories;" json:"products,omitempty"`
	Translations []CategoryTranslation `gorm:"foreignKey:CategoryID" json:"translations,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Category) TranslationRecords() []CategoryTranslation { return c.Translations }
func (c *Category) SetTranslationRecords(t []CategoryTranslation) { c.Translations = t }

func (c *Category) Overlay(t CategoryTranslation) {
	i18n.OverlayString(&c.Name, t.Name)
	i18n.OverlayString(&c.Description, t.Description)
}

// Localize translates the category, its parent, its subtree and its products.
func (c *Category) Localize(loc i18n.Locale) {
	if c == nil {
		return
	}
	i18n.Apply[CategoryTranslation](c, loc)
	c.Parent.Localize(loc)
	LocalizeCategories(c.Children, loc)
	LocalizeProducts(c.Products, loc)
}

type Product struct {
	ID               uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string               `gorm:"not null;index" json:"name" example:"Galaxy S24"`
	Slug             string               `gorm:"uniqueIndex;not null" json:"slug" example:"galaxy-s24"`
	SKU              string               `gorm:"uniqueIndex;not null" json:"sku" example:"SM-S921"`
	Description      string               `gorm:"type:text" json:"description"`
	ShortDescription string               `json:"short_description"`
	MetaTitle        string               `json:"meta_title,omitempty"`
	MetaDescription  string               `json:"meta_description,omitempty"`
	Price            float64              `gorm:"type:decimal(10,2)" json:"price" example:"799.99"`
	IsActive         bool                 `gorm:"index" json:"is_active"`
	IsFeatured       bool                 `gorm:"index" json:"is_featured"`
	BrandID          uuid.UUID            `gorm:"type:uuid;index;not null" json:"brand_id"`
	Brand            *Brand               `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Categories       []Category           `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	Images           []ProductImage       `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Translations     []ProductTranslation `gorm:"foreignKey:ProductID" json:"translations,omitempty"`
	CreatedAt        time.Time            `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Product) TranslationRecords() []ProductTranslation { return p.Translations }
func (p *Product) SetTranslationRecords(t []ProductTranslation) { p.Translations = t }

func (p *Product) Overlay(t ProductTranslation) {
	i18n.OverlayString(&p.Name, t.Name)
	i18n.OverlayString(&p.Description, t.Description)
	i18n.OverlayString(&p.ShortDescription, t.ShortDescription)
	i18n.OverlayString(&p.MetaTitle, t.MetaTitle)
	i18n.OverlayString(&p.MetaDescription, t.MetaDescription)
}

// Localize translates the product together with its brand and categories.
func (p *Product) Localize(loc i18n.Locale) {
	if p == nil {
		return
	}
	i18n.Apply[ProductTranslation](p, loc)
	p.Brand.Localize(loc)
	LocalizeCategories(p.Categories, loc)
}

func LocalizeProducts(products []Product, loc i18n.Locale) {
	for i := range products {
		products[i].Localize(loc)
	}
}

func LocalizeCategories(categories []Category, loc i18n.Locale) {
	for i := range categories {
		categories[i].Localize(loc)
	}
}

func LocalizeBrands(brands []Brand, loc i18n.Locale) {
	for i := range brands {
		brands[i].Localize(loc)
	}
}

// ProductFilter narrows the storefront product listing.
type ProductFilter struct {
	Page       int
	Limit      int
	BrandID    *uuid.UUID
	CategoryID *uuid.UUID
	Search     string
	Featured   *bool
}
