package handlers

import (
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/services"
	"storefront-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BrandHandler struct {
	service services.BrandService
	logger  *logrus.Logger
}

func NewBrandHandler(service services.BrandService, logger *logrus.Logger) *BrandHandler {
	return &BrandHandler{service: service, logger: logger}
}

// GetAllBrands godoc
// @Summary List brands
// @Tags brands
// @Produce json
// @Param lang query string false "Language code"
// @Success 200 {object} utils.StandardResponse{data=[]models.Brand}
// @Router /brands [get]
func (h *BrandHandler) GetAllBrands(c *fiber.Ctx) error {
	brands, err := h.service.List(c.Context(), middleware.LocaleFrom(c))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve brands")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Brands retrieved successfully", brands)
}

// GetBrandBySlug godoc
// @Summary Get brand by slug
// @Description Includes up to 10 of the brand's active products
// @Tags brands
// @Produce json
// @Param slug path string true "Brand slug"
// @Param lang query string false "Language code"
// @Success 200 {object} utils.StandardResponse{data=models.Brand}
// @Failure 404 {object} utils.StandardResponse
// @Router /brands/{slug} [get]
func (h *BrandHandler) GetBrandBySlug(c *fiber.Ctx) error {
	brand, err := h.service.GetBySlug(c.Context(), c.Params("slug"), middleware.LocaleFrom(c))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve brand")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Brand retrieved successfully", brand)
}

// CreateBrand godoc
// @Summary Create a brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body CreateBrandRequest true "Brand"
// @Success 201 {object} utils.StandardResponse{data=models.Brand}
// @Failure 400 {object} utils.StandardResponse
// @Failure 409 {object} utils.StandardResponse
// @Router /brands [post]
func (h *BrandHandler) CreateBrand(c *fiber.Ctx) error {
	var req CreateBrandRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	brand, err := h.service.Create(c.Context(), services.CreateBrandInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create brand")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Brand created successfully", brand)
}

type CategoryHandler struct {
	service services.CategoryService
	logger  *logrus.Logger
}

func NewCategoryHandler(service services.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{service: service, logger: logger}
}

// GetCategoryTree godoc
// @Summary List the category tree
// @Description Root categories with two levels of children
// @Tags categories
// @Produce json
// @Param lang query string false "Language code"
// @Success 200 {object} utils.StandardResponse{data=[]models.Category}
// @Router /categories [get]
func (h *CategoryHandler) GetCategoryTree(c *fiber.Ctx) error {
	categories, err := h.service.ListTree(c.Context(), middleware.LocaleFrom(c))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve categories")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Categories retrieved successfully", categories)
}

// GetCategoryBySlug godoc
// @Summary Get category by slug
// @Description Includes parent, children and up to 20 active products
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Param lang query string false "Language code"
// @Success 200 {object} utils.StandardResponse{data=models.Category}
// @Failure 404 {object} utils.StandardResponse
// @Router /categories/{slug} [get]
func (h *CategoryHandler) GetCategoryBySlug(c *fiber.Ctx) error {
	category, err := h.service.GetBySlug(c.Context(), c.Params("slug"), middleware.LocaleFrom(c))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve category")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category retrieved successfully", category)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CreateCategoryRequest true "Category"
// @Success 201 {object} utils.StandardResponse{data=models.Category}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Unknown parent"
// @Failure 409 {object} utils.StandardResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	category, err := h.service.Create(c.Context(), services.CreateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create category")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Category created successfully", category)
}
