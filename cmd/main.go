package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "storefront-backend/docs"
	"storefront-backend/internal/config"
	"storefront-backend/internal/database"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/routes"
	"storefront-backend/internal/services"
	"storefront-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Storefront Backend API
// @version 1.0
// @description Multilingual storefront catalog API: languages, UI translations, localized products, brands, categories and product images
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin access token.

func main() {
	loadEnvFile()

	cfg := config.Load()
	log := setupLogger()

	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	storage, err := services.NewMinIOService(&cfg.MinIO, log)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}

	svc := newServices(db, storage, cfg, log)
	if cfg.I18n.SeedLanguages {
		seedLanguages(svc.languages, log)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Storefront Backend API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, newHandlers(svc, log), middleware.RequireAdmin(svc.auth), middleware.Language(svc.resolver))

	go gracefulShutdown(app, log)

	log.Infof("Storefront Backend API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

type appServices struct {
	languages            services.LanguageService
	resolver             services.LanguageResolver
	translations         services.TranslationService
	products             services.ProductService
	brands               services.BrandService
	categories           services.CategoryService
	images               services.ImageService
	productTranslations  services.EntityTranslationService[models.ProductTranslation]
	brandTranslations    services.EntityTranslationService[models.BrandTranslation]
	categoryTranslations services.EntityTranslationService[models.CategoryTranslation]
	auth                 services.AuthService
}

func newServices(db *database.Database, storage services.ObjectStorage, cfg *config.Config, log *logrus.Logger) appServices {
	langRepo := repository.NewLanguageRepository(db)
	productRepo := repository.NewProductRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	languages := services.NewLanguageService(langRepo, cfg.I18n, log)
	resolver := services.NewLanguageResolver(languages, langRepo, log)

	return appServices{
		languages:            languages,
		resolver:             resolver,
		translations:         services.NewTranslationService(repository.NewUITranslationRepository(db), langRepo, languages, log),
		products:             services.NewProductService(productRepo, brandRepo, categoryRepo, storage, log),
		brands:               services.NewBrandService(brandRepo, storage, log),
		categories:           services.NewCategoryService(categoryRepo, storage, log),
		images:               services.NewImageService(repository.NewImageRepository(db), productRepo, storage, log),
		productTranslations:  services.NewProductTranslationService(repository.NewProductTranslationRepository(db), langRepo, productRepo, log),
		brandTranslations:    services.NewBrandTranslationService(repository.NewBrandTranslationRepository(db), langRepo, brandRepo, log),
		categoryTranslations: services.NewCategoryTranslationService(repository.NewCategoryTranslationRepository(db), langRepo, categoryRepo, log),
		auth:                 services.NewAuthService(cfg.Auth, log),
	}
}

func newHandlers(svc appServices, log *logrus.Logger) routes.Handlers {
	return routes.Handlers{
		Languages:            handlers.NewLanguageHandler(svc.languages, log),
		Translations:         handlers.NewTranslationHandler(svc.translations, log),
		Products:             handlers.NewProductHandler(svc.products, log),
		Brands:               handlers.NewBrandHandler(svc.brands, log),
		Categories:           handlers.NewCategoryHandler(svc.categories, log),
		ProductTranslations:  handlers.NewEntityTranslationHandler("product", svc.productTranslations, log),
		BrandTranslations:    handlers.NewEntityTranslationHandler("brand", svc.brandTranslations, log),
		CategoryTranslations: handlers.NewEntityTranslationHandler("category", svc.categoryTranslations, log),
		Images:               handlers.NewImageHandler(svc.images, log),
		Auth:                 handlers.NewAuthHandler(svc.auth, log),
	}
}

func seedLanguages(languages services.LanguageService, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	seeded, err := languages.SeedDefaults(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to seed default languages")
		return
	}
	if seeded {
		log.Info("Default languages seeded")
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)

	level := logrus.InfoLevel
	switch env := os.Getenv("GO_ENV"); env {
	case "", "dev", "development":
		level = logrus.DebugLevel
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			log.Warnf("Invalid LOG_LEVEL %q, keeping %s", raw, level)
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(middleware.Metrics())

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Storefronts send Accept-Language and read back Content-Language.
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Accept-Language, Authorization, X-Request-ID",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		ExposeHeaders: "Content-Language",
		MaxAge:        86400,
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, dbStatus := fiber.StatusOK, "healthy"
		if err := db.HealthCheck(); err != nil {
			status, dbStatus = fiber.StatusServiceUnavailable, "unhealthy"
		}

		return c.Status(status).JSON(fiber.Map{
			"service":   "storefront-backend",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// customErrorHandler renders errors that escaped the handlers, such as unknown
// routes, oversized bodies and recovered panics, in the standard envelope.
func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code, message = fe.Code, fe.Message
		}

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request failed")
		} else {
			entry.Warn("Request rejected")
		}

		return utils.ErrorResponse(c, code, message)
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.WithField("signal", sig.String()).Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

// loadEnvFile loads envs/.env.<GO_ENV> (GO_ENV defaults to dev), falling back
// to envs/.env. Variables already set in the process win.
func loadEnvFile() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	dir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	for _, name := range []string{".env." + env, ".env"} {
		path := filepath.Join(dir, "envs", name)
		if err := godotenv.Load(path); err != nil {
			log.Debugf("Could not load environment file %s: %v", path, err)
			continue
		}
		log.Infof("Environment loaded from file %s", path)
		return
	}
	log.Warn("No environment file found, using process environment only")
}
