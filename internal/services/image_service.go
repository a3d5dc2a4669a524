package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/avif": true,
}

type ImageService interface {
	PresignUpload(ctx context.Context, productID uuid.UUID, filename, mimeType string) (*PresignedUpload, error)
	// Register records an object already uploaded through a presigned URL.
	Register(ctx context.Context, productID uuid.UUID, input RegisterImageInput) (*models.ProductImage, error)
	// Upload streams the file to object storage and records it.
	Upload(ctx context.Context, productID uuid.UUID, file UploadedFile, opts ImageOptions) (*models.ProductImage, error)
	List(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error)
	SetPrimary(ctx context.Context, imageID uuid.UUID) error
	Reorder(ctx context.Context, imageIDs []uuid.UUID) error
	Delete(ctx context.Context, imageID uuid.UUID) error
}

type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
}

type ImageOptions struct {
	IsPrimary *bool
	Order     *int
}

type RegisterImageInput struct {
	Key      string
	Filename string
	Size     int64
	MimeType string
	ImageOptions
}

type UploadedFile struct {
	Filename string
	MimeType string
	Size     int64
	Body     io.Reader
}

type imageService struct {
	repo     repository.ImageRepository
	products repository.ProductRepository
	storage  ObjectStorage
	logger   *logrus.Logger
}

func NewImageService(repo repository.ImageRepository, products repository.ProductRepository, storage ObjectStorage, logger *logrus.Logger) ImageService {
	return &imageService{
		repo:     repo,
		products: products,
		storage:  storage,
		logger:   logger,
	}
}

// imageObjectKey lays objects out as {category}/{brand}/{productID}/{uuid}{ext}.
func imageObjectKey(product *models.Product, filename string) string {
	categorySlug := "uncategorized"
	if len(product.Categories) > 0 && product.Categories[0].Slug != "" {
		categorySlug = product.Categories[0].Slug
	}
	brandSlug := "unbranded"
	if product.Brand != nil && product.Brand.Slug != "" {
		brandSlug = product.Brand.Slug
	}
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s/%s/%s/%s%s", categorySlug, brandSlug, product.ID, uuid.New(), ext)
}

func checkImageType(mimeType string) error {
	if !allowedImageTypes[strings.ToLower(mimeType)] {
		return badRequestf("invalid file type %q, allowed types: image/jpeg, image/jpg, image/png, image/webp, image/avif", mimeType)
	}
	return nil
}

func (s *imageService) requireProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindPlain(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, notFoundf("product with ID %s not found", productID)
	}
	return product, nil
}

func (s *imageService) PresignUpload(ctx context.Context, productID uuid.UUID, filename, mimeType string) (*PresignedUpload, error) {
	if err := checkImageType(mimeType); err != nil {
		return nil, err
	}
	product, err := s.requireProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	key := imageObjectKey(product, filename)
	uploadURL, err := s.storage.PresignPut(ctx, key)
	if err != nil {
		return nil, err
	}

	return &PresignedUpload{
		UploadURL: uploadURL,
		Key:       key,
		PublicURL: s.storage.PublicURL(key),
	}, nil
}

func (s *imageService) Register(ctx context.Context, productID uuid.UUID, input RegisterImageInput) (*models.ProductImage, error) {
	if err := checkImageType(input.MimeType); err != nil {
		return nil, err
	}
	if _, err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}

	key := strings.TrimPrefix(input.Key, s.storage.Bucket()+"/")
	if !strings.Contains(key, "/"+productID.String()+"/") {
		return nil, badRequestf("object key %s does not belong to product %s", key, productID)
	}

	filename := input.Filename
	if filename == "" {
		filename = path.Base(key)
	}

	image := &models.ProductImage{
		ProductID: productID,
		Bucket:    s.storage.Bucket(),
		Filepath:  key,
		Filename:  filename,
		Size:      input.Size,
		MimeType:  strings.ToLower(input.MimeType),
	}
	if err := s.save(ctx, image, input.ImageOptions); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *imageService) Upload(ctx context.Context, productID uuid.UUID, file UploadedFile, opts ImageOptions) (*models.ProductImage, error) {
	if err := checkImageType(file.MimeType); err != nil {
		return nil, err
	}
	product, err := s.requireProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	key := imageObjectKey(product, file.Filename)
	if err := s.storage.Put(ctx, key, file.Body, file.Size, file.MimeType); err != nil {
		return nil, err
	}

	image := &models.ProductImage{
		ProductID: productID,
		Bucket:    s.storage.Bucket(),
		Filepath:  key,
		Filename:  path.Base(key),
		Size:      file.Size,
		MimeType:  strings.ToLower(file.MimeType),
	}
	if err := s.save(ctx, image, opts); err != nil {
		if rmErr := s.storage.Remove(ctx, key); rmErr != nil {
			s.logger.WithError(rmErr).WithField("key", key).Warn("Failed to remove orphaned object")
		}
		return nil, err
	}
	return image, nil
}

// save inserts the image row. The first image of a product becomes primary
// unless told otherwise, and a new primary demotes the previous one.
func (s *imageService) save(ctx context.Context, image *models.ProductImage, opts ImageOptions) error {
	err := s.repo.Transaction(ctx, func(tx repository.ImageRepository) error {
		count, err := tx.CountByProduct(ctx, image.ProductID)
		if err != nil {
			return err
		}

		image.IsPrimary = count == 0
		if opts.IsPrimary != nil {
			image.IsPrimary = *opts.IsPrimary
		}
		image.SortOrder = int(count)
		if opts.Order != nil {
			image.SortOrder = *opts.Order
		}

		if image.IsPrimary {
			if err := tx.ClearPrimary(ctx, image.ProductID); err != nil {
				return err
			}
		}
		return tx.Create(ctx, image)
	})
	if err != nil {
		s.logger.WithError(err).WithField("productID", image.ProductID).Error("Failed to save product image")
		return fmt.Errorf("failed to save product image: %w", err)
	}

	image.URL = s.storage.PublicURL(image.Filepath)
	s.logger.WithFields(logrus.Fields{
		"productID": image.ProductID,
		"imageID":   image.ID,
		"isPrimary": image.IsPrimary,
	}).Info("Product image saved")
	return nil
}

func (s *imageService) List(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error) {
	images, err := s.repo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product images: %w", err)
	}
	for i := range images {
		images[i].URL = s.storage.PublicURL(images[i].Filepath)
	}
	return images, nil
}

func (s *imageService) SetPrimary(ctx context.Context, imageID uuid.UUID) error {
	image, err := s.repo.FindByID(ctx, imageID)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	if image == nil {
		return notFoundf("image with ID %s not found", imageID)
	}

	err = s.repo.Transaction(ctx, func(tx repository.ImageRepository) error {
		if err := tx.ClearPrimary(ctx, image.ProductID); err != nil {
			return err
		}
		return tx.SetPrimary(ctx, imageID)
	})
	if err != nil {
		return fmt.Errorf("failed to set primary image: %w", err)
	}
	return nil
}

func (s *imageService) Reorder(ctx context.Context, imageIDs []uuid.UUID) error {
	err := s.repo.Transaction(ctx, func(tx repository.ImageRepository) error {
		for i, id := range imageIDs {
			ok, err := tx.UpdateSortOrder(ctx, id, i)
			if err != nil {
				return err
			}
			if !ok {
				return notFoundf("image with ID %s not found", id)
			}
		}
		return nil
	})
	if err != nil {
		if isServiceError(err) {
			return err
		}
		return fmt.Errorf("failed to reorder images: %w", err)
	}
	return nil
}

func (s *imageService) Delete(ctx context.Context, imageID uuid.UUID) error {
	image, err := s.repo.FindByID(ctx, imageID)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	if image == nil {
		return notFoundf("image with ID %s not found", imageID)
	}

	if err := s.storage.Remove(ctx, image.Filepath); err != nil {
		return err
	}

	err = s.repo.Transaction(ctx, func(tx repository.ImageRepository) error {
		if err := tx.Delete(ctx, imageID); err != nil {
			return err
		}
		if !image.IsPrimary {
			return nil
		}

		remaining, err := tx.FindByProduct(ctx, image.ProductID)
		if err != nil || len(remaining) == 0 {
			return err
		}
		return tx.SetPrimary(ctx, remaining[0].ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"imageID":   imageID,
		"productID": image.ProductID,
	}).Info("Product image deleted")
	return nil
}
