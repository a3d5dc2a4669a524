package handlers

import (
	"net/url"

	"storefront-backend/internal/middleware"
	"storefront-backend/internal/services"
	"storefront-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TranslationHandler struct {
	service services.TranslationService
	logger  *logrus.Logger
}

func NewTranslationHandler(service services.TranslationService, logger *logrus.Logger) *TranslationHandler {
	return &TranslationHandler{
		service: service,
		logger:  logger,
	}
}

// keyParam returns the :key path segment with percent-escapes decoded, so
// keys may be sent either raw or escaped.
func keyParam(c *fiber.Ctx) string {
	raw := c.Params("key")
	if key, err := url.PathUnescape(raw); err == nil {
		return key
	}
	return raw
}

// GetTranslations godoc
// @Summary Get UI strings for a language
// @Description Dotted keys are returned as nested objects. Unknown or inactive languages are served in the default language.
// @Tags translations
// @Produce json
// @Param lang query string false "Language code"
// @Success 200 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /translations [get]
func (h *TranslationHandler) GetTranslations(c *fiber.Ctx) error {
	loc := middleware.LocaleFrom(c)
	translations, err := h.service.GetTranslations(c.Context(), loc)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve translations")
	}

	c.Set(fiber.HeaderContentLanguage, loc.Resolved)
	return utils.SuccessResponse(c, fiber.StatusOK, "Translations retrieved successfully", translations)
}

// GetAllKeys godoc
// @Summary List every translation key
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse{data=[]string}
// @Router /translations/keys [get]
func (h *TranslationHandler) GetAllKeys(c *fiber.Ctx) error {
	keys, err := h.service.GetAllKeys(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve translation keys")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translation keys retrieved successfully", keys)
}

// GetAllTranslations godoc
// @Summary List every UI string grouped by key
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse{data=[]models.UITranslationGroup}
// @Router /translations/all [get]
func (h *TranslationHandler) GetAllTranslations(c *fiber.Ctx) error {
	groups, err := h.service.GetAllTranslations(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve translations")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translations retrieved successfully", groups)
}

// UpsertTranslation godoc
// @Summary Create or update a UI string
// @Tags translations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param translation body UpsertTranslationRequest true "Translation"
// @Success 200 {object} utils.StandardResponse{data=models.UITranslation}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Unknown language"
// @Router /translations [post]
func (h *TranslationHandler) UpsertTranslation(c *fiber.Ctx) error {
	var req UpsertTranslationRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	translation, err := h.service.Upsert(c.Context(), req.Key, req.Language, req.Value)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to save translation")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translation saved successfully", translation)
}

// BulkUpsertTranslations godoc
// @Summary Create or update many UI strings of one language
// @Description All strings are written in a single transaction.
// @Tags translations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param translations body BulkTranslationsRequest true "Key to value map"
// @Success 200 {object} utils.StandardResponse{data=BulkTranslationsResponse}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse "Unknown language"
// @Router /translations/bulk [post]
func (h *TranslationHandler) BulkUpsertTranslations(c *fiber.Ctx) error {
	var req BulkTranslationsRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	count, err := h.service.BulkUpsert(c.Context(), req.Language, req.Translations)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to save translations")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translations saved successfully", BulkTranslationsResponse{
		Language: req.Language,
		Count:    count,
	})
}

// UpdateTranslation godoc
// @Summary Update a UI string
// @Tags translations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Translation key"
// @Param language path string true "Language code"
// @Param translation body UpdateTranslationRequest true "New value"
// @Success 200 {object} utils.StandardResponse{data=models.UITranslation}
// @Failure 404 {object} utils.StandardResponse
// @Router /translations/{key}/{language} [patch]
func (h *TranslationHandler) UpdateTranslation(c *fiber.Ctx) error {
	var req UpdateTranslationRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, err)
	}

	translation, err := h.service.Update(c.Context(), keyParam(c), c.Params("language"), req.Value)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update translation")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translation updated successfully", translation)
}

// DeleteTranslation godoc
// @Summary Delete a UI string
// @Tags translations
// @Produce json
// @Security BearerAuth
// @Param key path string true "Translation key"
// @Param language path string true "Language code"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /translations/{key}/{language} [delete]
func (h *TranslationHandler) DeleteTranslation(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), keyParam(c), c.Params("language")); err != nil {
		return respondError(c, h.logger, err, "Failed to delete translation")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translation deleted successfully", nil)
}
