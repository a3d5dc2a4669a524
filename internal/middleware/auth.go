package middleware

import (
	"errors"
	"strings"

	"storefront-backend/internal/services"
	"storefront-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const adminEmailKey = "adminEmail"

// RequireAdmin only lets requests through that carry a valid bearer token
// with the ADMIN role.
func RequireAdmin(auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing bearer token")
		}

		claims, err := auth.ParseToken(strings.TrimSpace(raw))
		if errors.Is(err, services.ErrAuthNotConfigured) {
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Admin authentication is not configured")
		}
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		if claims.Role != services.RoleAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin role required")
		}

		c.Locals(adminEmailKey, claims.Email)
		return c.Next()
	}
}

// AdminEmail returns the email of the authenticated admin, if any.
func AdminEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(adminEmailKey).(string)
	return email
}
