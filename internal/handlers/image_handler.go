package handlers

import (
	"strconv"
	"strings"

	"storefront-backend/internal/services"
	"storefront-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ImageHandler struct {
	service services.ImageService
	logger  *logrus.Logger
}

func NewImageHandler(service services.ImageService, logger *logrus.Logger) *ImageHandler {
	return &ImageHandler{
		service: service,
		logger:  logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a product image upload
// @Description The client PUTs the file to upload_url and then registers the returned key.
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param upload body PresignImageRequest true "File to upload"
// @Success 200 {object} utils.StandardResponse{data=services.PresignedUpload}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /images/products/{productId}/presign [post]
func (h *ImageHandler) GetPresignedURL(c *fiber.Ctx) error {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var req PresignImageRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	upload, err := h.service.PresignUpload(c.Context(), productID, req.Filename, req.MimeType)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", upload)
}

// RegisterImage godoc
// @Summary Register an uploaded product image
// @Description The first image of a product becomes its primary image.
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param image body RegisterImageRequest true "Uploaded object"
// @Success 201 {object} utils.StandardResponse{data=models.ProductImage}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /images/products/{productId} [post]
func (h *ImageHandler) RegisterImage(c *fiber.Ctx) error {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var req RegisterImageRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	image, err := h.service.Register(c.Context(), productID, services.RegisterImageInput{
		Key:      req.Key,
		Filename: req.Filename,
		Size:     req.Size,
		MimeType: req.MimeType,
		ImageOptions: services.ImageOptions{
			IsPrimary: req.IsPrimary,
			Order:     req.Order,
		},
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to register image")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Image registered successfully", image)
}

// UploadImage godoc
// @Summary Upload a product image
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param file formData file true "Image file"
// @Param is_primary formData bool false "Make this the primary image"
// @Param order formData int false "Sort order"
// @Success 201 {object} utils.StandardResponse{data=models.ProductImage}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /images/products/{productId}/upload [post]
func (h *ImageHandler) UploadImage(c *fiber.Ctx) error {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "file is required")
	}

	var opts services.ImageOptions
	if raw := c.FormValue("is_primary"); raw != "" {
		primary, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "is_primary must be a boolean")
		}
		opts.IsPrimary = &primary
	}
	if raw := c.FormValue("order"); raw != "" {
		order, err := strconv.Atoi(raw)
		if err != nil || order < 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "order must be a non-negative integer")
		}
		opts.Order = &order
	}

	file, err := header.Open()
	if err != nil {
		h.logger.WithError(err).Error("Failed to open uploaded file")
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file")
	}
	defer file.Close()

	image, err := h.service.Upload(c.Context(), productID, services.UploadedFile{
		Filename: header.Filename,
		MimeType: header.Header.Get(fiber.HeaderContentType),
		Size:     header.Size,
		Body:     file,
	}, opts)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to upload image")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Image uploaded successfully", image)
}

// GetProductImages godoc
// @Summary List product images
// @Tags images
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} utils.StandardResponse{data=[]models.ProductImage}
// @Failure 400 {object} utils.StandardResponse
// @Router /images/products/{productId} [get]
func (h *ImageHandler) GetProductImages(c *fiber.Ctx) error {
	productID, ok := parseUUIDParam(c, "productId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	images, err := h.service.List(c.Context(), productID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve images")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Images retrieved successfully", images)
}

// SetPrimaryImage godoc
// @Summary Make an image the product's primary image
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /images/{imageId}/primary [patch]
func (h *ImageHandler) SetPrimaryImage(c *fiber.Ctx) error {
	imageID, ok := parseUUIDParam(c, "imageId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid image ID")
	}

	if err := h.service.SetPrimary(c.Context(), imageID); err != nil {
		return respondError(c, h.logger, err, "Failed to set primary image")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Primary image updated successfully", nil)
}

// ReorderImages godoc
// @Summary Reorder images
// @Description Each image's sort order becomes its position in the list. IDs may also be passed as ?ids=a,b,c.
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ids query string false "Comma separated image IDs"
// @Param order body ReorderImagesRequest false "Image IDs in display order"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /images/reorder [patch]
func (h *ImageHandler) ReorderImages(c *fiber.Ctx) error {
	var req ReorderImagesRequest
	if raw := c.Query("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid image ID "+part)
			}
			req.ImageIDs = append(req.ImageIDs, id)
		}
	} else if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	if err := h.service.Reorder(c.Context(), req.ImageIDs); err != nil {
		return respondError(c, h.logger, err, "Failed to reorder images")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Images reordered successfully", nil)
}

// DeleteImage godoc
// @Summary Delete an image
// @Description Removes the stored object, then the record. Deleting the primary image promotes the next one.
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param imageId path string true "Image ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /images/{imageId} [delete]
func (h *ImageHandler) DeleteImage(c *fiber.Ctx) error {
	imageID, ok := parseUUIDParam(c, "imageId")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid image ID")
	}

	if err := h.service.Delete(c.Context(), imageID); err != nil {
		return respondError(c, h.logger, err, "Failed to delete image")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Image deleted successfully", nil)
}
