package handlers

import (
	"errors"

	"storefront-backend/internal/services"
	"storefront-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// respondError maps service error kinds onto HTTP statuses. Anything else is
// logged and reported as a 500 with failMessage.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, failMessage string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrBadRequest):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error(failMessage)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, failMessage)
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
