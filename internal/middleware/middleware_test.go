package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-backend/internal/config"
	"storefront-backend/internal/i18n"
	"storefront-backend/internal/metrics"
	"storefront-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// stubResolver serves any language listed in active and "en" otherwise.
type stubResolver struct {
	active   map[string]bool
	lastHint string
}

func (r *stubResolver) Resolve(_ context.Context, requested string) string {
	r.lastHint = requested
	if r.active[requested] {
		return requested
	}
	return "en"
}

func (r *stubResolver) Locale(ctx context.Context, requested string) i18n.Locale {
	return i18n.Locale{Resolved: r.Resolve(ctx, requested), Default: "en"}
}

func newLanguageApp(resolver services.LanguageResolver) *fiber.App {
	app := fiber.New()
	app.Use(Language(resolver))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(LocaleFrom(c))
	})
	return app
}

func TestLanguage_HintPriority(t *testing.T) {
	resolver := &stubResolver{active: map[string]bool{"ro": true, "de": true}}
	app := newLanguageApp(resolver)

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{"query wins", "/?lang=RO", "de", "de-DE", "ro"},
		{"cookie over header", "/", "de", "ro-RO", "de"},
		{"accept-language first entry", "/", "", "ro-RO;q=0.1,de;q=0.9", "ro"},
		{"unknown falls back", "/?lang=fr", "", "", "en"},
		{"no hint", "/", "", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.Header.Set("Cookie", "lang="+tt.cookie)
			}
			if tt.accept != "" {
				req.Header.Set(fiber.HeaderAcceptLanguage, tt.accept)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, resp.Header.Get(fiber.HeaderContentLanguage))
		})
	}
}

func TestLocaleFrom_WithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		loc := LocaleFrom(c)
		return c.SendString(loc.Resolved + "/" + loc.Default)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "en/en", string(body))
}

func newAuth(t *testing.T) services.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return services.NewAuthService(config.AuthConfig{
		JWTSecret:         "middleware-test-secret",
		TokenTTL:          time.Hour,
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: string(hash),
	}, logger)
}

func TestRequireAdmin(t *testing.T) {
	auth := newAuth(t)
	login, err := auth.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/admin", RequireAdmin(auth), func(c *fiber.Ctx) error {
		return c.SendString(AdminEmail(c))
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized},
		{"bad token", "Bearer nope", fiber.StatusUnauthorized},
		{"valid token", "Bearer " + login.AccessToken, fiber.StatusOK},
		{"lowercase scheme", "bearer " + login.AccessToken, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.status == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, "admin@example.com", string(body))
			}
		})
	}
}

func TestRequireAdmin_WithoutSecret(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	auth := services.NewAuthService(config.AuthConfig{AdminEmail: "admin@example.com"}, logger)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, services.AuthClaims{
		Email: "admin@example.com",
		Role:  services.RoleAdmin,
	}).SignedString([]byte(""))
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/admin", RequireAdmin(auth), func(c *fiber.Ctx) error {
		return c.SendString("reached")
	})

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+forged)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetrics_CountsByRoute(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	okCounter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/items/:id", "204")
	errCounter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/boom", "418")
	okBefore := testutil.ToFloat64(okCounter)
	errBefore := testutil.ToFloat64(errCounter)

	for _, target := range []string{"/items/1", "/items/2", "/boom"} {
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, okBefore+2, testutil.ToFloat64(okCounter))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(errCounter))
}
