package handlers

import (
	"storefront-backend/internal/models"
	"storefront-backend/internal/services"
	"storefront-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LanguageHandler struct {
	service services.LanguageService
	logger  *logrus.Logger
}

func NewLanguageHandler(service services.LanguageService, logger *logrus.Logger) *LanguageHandler {
	return &LanguageHandler{
		service: service,
		logger:  logger,
	}
}

// ListLanguages godoc
// @Summary List languages
// @Description Active languages, default first. Admins may include inactive ones.
// @Tags languages
// @Produce json
// @Param includeInactive query bool false "Include inactive languages"
// @Success 200 {object} utils.StandardResponse{data=[]models.Language}
// @Failure 500 {object} utils.StandardResponse
// @Router /languages [get]
func (h *LanguageHandler) ListLanguages(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("includeInactive", false)

	languages, err := h.service.ListLanguages(c.Context(), includeInactive)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve languages")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Languages retrieved successfully", languages)
}

// GetDefaultLanguage godoc
// @Summary Get the default language code
// @Tags languages
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=DefaultLanguageResponse}
// @Router /languages/default [get]
func (h *LanguageHandler) GetDefaultLanguage(c *fiber.Ctx) error {
	code := h.service.GetDefaultLanguageCode(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, "Default language retrieved successfully", DefaultLanguageResponse{Code: code})
}

// GetLanguage godoc
// @Summary Get language by code
// @Tags languages
// @Produce json
// @Security BearerAuth
// @Param code path string true "Language code"
// @Success 200 {object} utils.StandardResponse{data=models.Language}
// @Failure 404 {object} utils.StandardResponse
// @Router /languages/{code} [get]
func (h *LanguageHandler) GetLanguage(c *fiber.Ctx) error {
	language, err := h.service.GetLanguage(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve language")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Language retrieved successfully", language)
}

// CreateLanguage godoc
// @Summary Create a language
// @Description A new default language replaces the previous default.
// @Tags languages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param language body CreateLanguageRequest true "Language"
// @Success 201 {object} utils.StandardResponse{data=models.Language}
// @Failure 400 {object} utils.StandardResponse
// @Failure 409 {object} utils.StandardResponse
// @Router /languages [post]
func (h *LanguageHandler) CreateLanguage(c *fiber.Ctx) error {
	var req CreateLanguageRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	language, err := h.service.CreateLanguage(c.Context(), services.CreateLanguageInput{
		Code:      req.Code,
		Name:      req.Name,
		IsDefault: req.IsDefault,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create language")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Language created successfully", language)
}

// UpdateLanguage godoc
// @Summary Update a language
// @Description Renaming the code rewrites every translation record of the language.
// @Tags languages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Language code"
// @Param language body UpdateLanguageRequest true "Fields to change"
// @Success 200 {object} utils.StandardResponse{data=models.Language}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Failure 409 {object} utils.StandardResponse
// @Router /languages/{code} [patch]
func (h *LanguageHandler) UpdateLanguage(c *fiber.Ctx) error {
	var req UpdateLanguageRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	language, err := h.service.UpdateLanguage(c.Context(), c.Params("code"), models.LanguageUpdate{
		Code:      req.Code,
		Name:      req.Name,
		IsDefault: req.IsDefault,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update language")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Language updated successfully", language)
}

// SetDefaultLanguage godoc
// @Summary Make a language the default
// @Tags languages
// @Produce json
// @Security BearerAuth
// @Param code path string true "Language code"
// @Success 200 {object} utils.StandardResponse{data=models.Language}
// @Failure 404 {object} utils.StandardResponse
// @Router /languages/{code}/set-default [post]
func (h *LanguageHandler) SetDefaultLanguage(c *fiber.Ctx) error {
	language, err := h.service.SetDefault(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to set default language")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Default language updated successfully", language)
}

// DeleteLanguage godoc
// @Summary Delete a language
// @Description The default language and the last active language cannot be deleted.
// @Tags languages
// @Produce json
// @Security BearerAuth
// @Param code path string true "Language code"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /languages/{code} [delete]
func (h *LanguageHandler) DeleteLanguage(c *fiber.Ctx) error {
	if err := h.service.DeleteLanguage(c.Context(), c.Params("code")); err != nil {
		return respondError(c, h.logger, err, "Failed to delete language")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Language deleted successfully", nil)
}
