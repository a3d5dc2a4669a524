package handlers

import (
	"storefront-backend/internal/models"
	"storefront-backend/internal/services"
	"storefront-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// EntityTranslationHandler serves the admin translation endpoints of one
// catalog entity type, mounted under /{products|brands|categories}/:id.
type EntityTranslationHandler[R any] struct {
	entity  string
	service services.EntityTranslationService[R]
	logger  *logrus.Logger
}

func NewEntityTranslationHandler[R any](entity string, service services.EntityTranslationService[R], logger *logrus.Logger) *EntityTranslationHandler[R] {
	return &EntityTranslationHandler[R]{
		entity:  entity,
		service: service,
		logger:  logger,
	}
}

// ListTranslations godoc
// @Summary List raw translations of a product, brand or category
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Param entity path string true "products, brands or categories"
// @Param id path string true "Entity ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /{entity}/{id}/translations [get]
func (h *EntityTranslationHandler[R]) ListTranslations(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid "+h.entity+" ID")
	}

	records, err := h.service.List(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve "+h.entity+" translations")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translations retrieved successfully", records)
}

// UpsertTranslation godoc
// @Summary Create or update a translation of a product, brand or category
// @Tags translations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entity path string true "products, brands or categories"
// @Param id path string true "Entity ID"
// @Param language path string true "Language code"
// @Param translation body EntityTranslationRequest true "Translated fields"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Unknown entity or language"
// @Router /{entity}/{id}/translations/{language} [post]
func (h *EntityTranslationHandler[R]) UpsertTranslation(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid "+h.entity+" ID")
	}

	var req EntityTranslationRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	record, err := h.service.Upsert(c.Context(), id, c.Params("language"), models.TranslationFields{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to save "+h.entity+" translation")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translation saved successfully", record)
}

// DeleteTranslation godoc
// @Summary Delete a translation of a product, brand or category
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Param entity path string true "products, brands or categories"
// @Param id path string true "Entity ID"
// @Param language path string true "Language code"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /{entity}/{id}/translations/{language} [delete]
func (h *EntityTranslationHandler[R]) DeleteTranslation(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid "+h.entity+" ID")
	}

	if err := h.service.Delete(c.Context(), id, c.Params("language")); err != nil {
		return respondError(c, h.logger, err, "Failed to delete "+h.entity+" translation")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translation deleted successfully", nil)
}
