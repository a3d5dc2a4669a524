package handlers

import "github.com/google/uuid"

type CreateLanguageRequest struct {
	Code      string `json:"code" validate:"required,min=2,max=5" example:"fr"`
	Name      string `json:"name" validate:"required,max=100" example:"French"`
	IsDefault *bool  `json:"is_default"`
	IsActive  *bool  `json:"is_active"`
}

type UpdateLanguageRequest struct {
	Code      *string `json:"code" validate:"omitempty,min=2,max=5"`
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	IsDefault *bool   `json:"is_default"`
	IsActive  *bool   `json:"is_active"`
}

type DefaultLanguageResponse struct {
	Code string `json:"code" example:"en"`
}

type UpsertTranslationRequest struct {
	Key      string `json:"key" validate:"required,max=255" example:"header.menu.home"`
	Language string `json:"language" validate:"required,min=2,max=5" example:"ro"`
	Value    string `json:"value" validate:"required" example:"Acasă"`
}

type BulkTranslationsRequest struct {
	Language     string            `json:"language" validate:"required,min=2,max=5" example:"ro"`
	Translations map[string]string `json:"translations" validate:"required,min=1"`
}

type BulkTranslationsResponse struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

type UpdateTranslationRequest struct {
	Value string `json:"value" validate:"required"`
}

// EntityTranslationRequest carries the localizable fields of a product, brand
// or category. Brands and categories ignore the product-only fields.
type EntityTranslationRequest struct {
	Name             string `json:"name" validate:"required,max=255"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description" validate:"max=500"`
	MetaTitle        string `json:"meta_title" validate:"max=255"`
	MetaDescription  string `json:"meta_description" validate:"max=500"`
}

type CreateProductRequest struct {
	Name             string      `json:"name" validate:"required,max=255" example:"Galaxy S24"`
	Slug             string      `json:"slug" validate:"required,slug,max=255" example:"galaxy-s24"`
	SKU              string      `json:"sku" validate:"required,max=100" example:"SM-S921"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"short_description" validate:"max=500"`
	MetaTitle        string      `json:"meta_title" validate:"max=255"`
	MetaDescription  string      `json:"meta_description" validate:"max=500"`
	Price            float64     `json:"price" validate:"gte=0" example:"799.99"`
	IsActive         *bool       `json:"is_active"`
	IsFeatured       bool        `json:"is_featured"`
	BrandID          uuid.UUID   `json:"brand_id" validate:"required"`
	CategoryIDs      []uuid.UUID `json:"category_ids"`
}

type CreateBrandRequest struct {
	Name        string `json:"name" validate:"required,max=255" example:"Samsung"`
	Slug        string `json:"slug" validate:"required,slug,max=255" example:"samsung"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

type CreateCategoryRequest struct {
	Name        string     `json:"name" validate:"required,max=255" example:"Phones"`
	Slug        string     `json:"slug" validate:"required,slug,max=255" example:"phones"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

type PresignImageRequest struct {
	Filename string `json:"filename" validate:"required,max=255" example:"front.jpg"`
	MimeType string `json:"mime_type" validate:"required" example:"image/jpeg"`
}

type RegisterImageRequest struct {
	Key       string `json:"key" validate:"required" example:"phones/samsung/0b9c.../1f2e....jpg"`
	Filename  string `json:"filename" validate:"max=255"`
	Size      int64  `json:"size" validate:"gte=0"`
	MimeType  string `json:"mime_type" validate:"required" example:"image/jpeg"`
	IsPrimary *bool  `json:"is_primary"`
	Order     *int   `json:"order" validate:"omitempty,gte=0"`
}

type ReorderImagesRequest struct {
	ImageIDs []uuid.UUID `json:"image_ids" validate:"required,min=1"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@example.com"`
	Password string `json:"password" validate:"required"`
}
