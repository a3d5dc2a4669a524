package services

import (
	"context"
	"fmt"
	"strings"

	"storefront-backend/internal/i18n"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type ProductService interface {
	List(ctx context.Context, filter models.ProductFilter, loc i18n.Locale) ([]models.Product, int64, error)
	GetBySlug(ctx context.Context, slug string, loc i18n.Locale) (*models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*models.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	// Delete removes the product, its translations, its images and their
	// stored objects.
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateProductInput struct {
	Name             string
	Slug             string
	SKU              string
	Description      string
	ShortDescription string
	MetaTitle        string
	MetaDescription  string
	Price            float64
	IsActive         *bool
	IsFeatured       bool
	BrandID          uuid.UUID
	CategoryIDs      []uuid.UUID
}

type productService struct {
	repo       repository.ProductRepository
	brands     repository.BrandRepository
	categories repository.CategoryRepository
	storage    ObjectStorage
	logger     *logrus.Logger
}

func NewProductService(
	repo repository.ProductRepository,
	brands repository.BrandRepository,
	categories repository.CategoryRepository,
	storage ObjectStorage,
	logger *logrus.Logger,
) ProductService {
	return &productService{
		repo:       repo,
		brands:     brands,
		categories: categories,
		storage:    storage,
		logger:     logger,
	}
}

// NormalizePage clamps pagination input to sane bounds.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func attachImageURLs(storage ObjectStorage, products []models.Product) {
	for i := range products {
		for j := range products[i].Images {
			img := &products[i].Images[j]
			img.URL = storage.PublicURL(img.Filepath)
		}
	}
}

func (s *productService) List(ctx context.Context, filter models.ProductFilter, loc i18n.Locale) ([]models.Product, int64, error) {
	filter.Page, filter.Limit = NormalizePage(filter.Page, filter.Limit)

	products, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list products")
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	models.LocalizeProducts(products, loc)
	attachImageURLs(s.storage, products)
	return products, total, nil
}

func (s *productService) GetBySlug(ctx context.Context, slug string, loc i18n.Locale) (*models.Product, error) {
	product, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, notFoundf("product with slug %s not found", slug)
	}
	return s.present(product, loc), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID, loc i18n.Locale) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, notFoundf("product with ID %s not found", id)
	}
	return s.present(product, loc), nil
}

func (s *productService) present(product *models.Product, loc i18n.Locale) *models.Product {
	product.Localize(loc)
	for i := range product.Images {
		product.Images[i].URL = s.storage.PublicURL(product.Images[i].Filepath)
	}
	return product
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	slug := strings.TrimSpace(input.Slug)
	sku := strings.TrimSpace(input.SKU)

	exists, err := s.repo.SlugOrSKUExists(ctx, slug, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to check product uniqueness: %w", err)
	}
	if exists {
		return nil, conflictf("product with slug %s or SKU %s already exists", slug, sku)
	}

	brand, err := s.brands.FindByID(ctx, input.BrandID)
	if err != nil {
		return nil, fmt.Errorf("failed to check brand: %w", err)
	}
	if brand == nil {
		return nil, notFoundf("brand with ID %s not found", input.BrandID)
	}

	categories, err := s.categories.FindByIDs(ctx, input.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check categories: %w", err)
	}
	if len(categories) != len(uniqueIDs(input.CategoryIDs)) {
		return nil, badRequestf("one or more categories do not exist")
	}

	product := &models.Product{
		Name:             strings.TrimSpace(input.Name),
		Slug:             slug,
		SKU:              sku,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		MetaTitle:        input.MetaTitle,
		MetaDescription:  input.MetaDescription,
		Price:            input.Price,
		IsActive:         true,
		IsFeatured:       input.IsFeatured,
		BrandID:          brand.ID,
		Categories:       categories,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.WithError(err).WithField("slug", slug).Error("Failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product.Brand = brand

	s.logger.WithFields(logrus.Fields{
		"productID": product.ID,
		"slug":      product.Slug,
	}).Info("Product created")
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return notFoundf("product with ID %s not found", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("productID", id).Error("Failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	keys := make([]string, 0, len(product.Images))
	for _, img := range product.Images {
		keys = append(keys, img.Filepath)
	}
	if err := s.storage.RemoveMany(ctx, keys); err != nil {
		s.logger.WithError(err).WithField("productID", id).Warn("Product deleted but some image objects were not removed")
	}

	s.logger.WithFields(logrus.Fields{
		"productID": id,
		"images":    len(keys),
	}).Info("Product deleted")
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
