package handlers

import (
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/models"
	"storefront-backend/internal/services"
	"storefront-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	service services.ProductService
	logger  *logrus.Logger
}

func NewProductHandler(service services.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllProducts godoc
// @Summary List products
// @Description Active products, newest first, localized to the request language
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param brandId query string false "Filter by brand ID"
// @Param categoryId query string false "Filter by category ID"
// @Param search query string false "Search by name or description"
// @Param featured query bool false "Only featured (true) or non-featured (false) products"
// @Param lang query string false "Language code"
// @Success 200 {object} utils.StandardResponse{data=[]models.Product,meta=utils.PaginationMeta}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /products [get]
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	page, limit := services.NormalizePage(c.QueryInt("page", 1), c.QueryInt("limit", 20))
	filter := models.ProductFilter{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	}

	if raw := c.Query("brandId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid brand ID")
		}
		filter.BrandID = &id
	}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID")
		}
		filter.CategoryID = &id
	}
	if c.Query("featured") != "" {
		featured := c.QueryBool("featured")
		filter.Featured = &featured
	}

	products, total, err := h.service.List(c.Context(), filter, middleware.LocaleFrom(c))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve products")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Products retrieved successfully", products, meta)
}

// GetProductBySlug godoc
// @Summary Get product by slug
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Param lang query string false "Language code"
// @Success 200 {object} utils.StandardResponse{data=models.Product}
// @Failure 404 {object} utils.StandardResponse
// @Router /products/{slug} [get]
func (h *ProductHandler) GetProductBySlug(c *fiber.Ctx) error {
	product, err := h.service.GetBySlug(c.Context(), c.Params("slug"), middleware.LocaleFrom(c))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve product")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Product retrieved successfully", product)
}

// GetProductByID godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Param lang query string false "Language code"
// @Success 200 {object} utils.StandardResponse{data=models.Product}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /products/id/{id} [get]
func (h *ProductHandler) GetProductByID(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	product, err := h.service.GetByID(c.Context(), id, middleware.LocaleFrom(c))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve product")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Product retrieved successfully", product)
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body CreateProductRequest true "Product"
// @Success 201 {object} utils.StandardResponse{data=models.Product}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Unknown brand"
// @Failure 409 {object} utils.StandardResponse "Slug or SKU taken"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	product, err := h.service.Create(c.Context(), services.CreateProductInput{
		Name:             req.Name,
		Slug:             req.Slug,
		SKU:              req.SKU,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		Price:            req.Price,
		IsActive:         req.IsActive,
		IsFeatured:       req.IsFeatured,
		BrandID:          req.BrandID,
		CategoryIDs:      req.CategoryIDs,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create product")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Product created successfully", product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Removes the product with its translations, images and stored image objects
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete product")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Product deleted successfully", nil)
}
