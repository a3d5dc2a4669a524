package routes

import (
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Languages            *handlers.LanguageHandler
	Translations         *handlers.TranslationHandler
	Products             *handlers.ProductHandler
	Brands               *handlers.BrandHandler
	Categories           *handlers.CategoryHandler
	ProductTranslations  *handlers.EntityTranslationHandler[models.ProductTranslation]
	BrandTranslations    *handlers.EntityTranslationHandler[models.BrandTranslation]
	CategoryTranslations *handlers.EntityTranslationHandler[models.CategoryTranslation]
	Images               *handlers.ImageHandler
	Auth                 *handlers.AuthHandler
}

// Setup mounts the API under /api/v1. requireAdmin guards the admin routes;
// localize resolves the request language for the storefront reads.
func Setup(app *fiber.App, h Handlers, requireAdmin, localize fiber.Handler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Post("/auth/login", h.Auth.Login)

	languages := v1.Group("/languages")
	{
		languages.Get("/", h.Languages.ListLanguages)
		languages.Get("/default", h.Languages.GetDefaultLanguage)
		languages.Post("/", requireAdmin, h.Languages.CreateLanguage)
		languages.Get("/:code", requireAdmin, h.Languages.GetLanguage)
		languages.Patch("/:code", requireAdmin, h.Languages.UpdateLanguage)
		languages.Post("/:code/set-default", requireAdmin, h.Languages.SetDefaultLanguage)
		languages.Delete("/:code", requireAdmin, h.Languages.DeleteLanguage)
	}

	translations := v1.Group("/translations")
	{
		translations.Get("/", localize, h.Translations.GetTranslations)
		translations.Get("/keys", requireAdmin, h.Translations.GetAllKeys)
		translations.Get("/all", requireAdmin, h.Translations.GetAllTranslations)
		translations.Post("/", requireAdmin, h.Translations.UpsertTranslation)
		translations.Post("/bulk", requireAdmin, h.Translations.BulkUpsertTranslations)
		translations.Patch("/:key/:language", requireAdmin, h.Translations.UpdateTranslation)
		translations.Delete("/:key/:language", requireAdmin, h.Translations.DeleteTranslation)
	}

	products := v1.Group("/products")
	{
		products.Get("/", localize, h.Products.GetAllProducts)
		products.Get("/id/:id", localize, h.Products.GetProductByID)
		products.Get("/:slug", localize, h.Products.GetProductBySlug)
		products.Post("/", requireAdmin, h.Products.CreateProduct)
		products.Delete("/:id", requireAdmin, h.Products.DeleteProduct)

		products.Get("/:id/translations", requireAdmin, h.ProductTranslations.ListTranslations)
		products.Post("/:id/translations/:language", requireAdmin, h.ProductTranslations.UpsertTranslation)
		products.Delete("/:id/translations/:language", requireAdmin, h.ProductTranslations.DeleteTranslation)
	}

	brands := v1.Group("/brands")
	{
		brands.Get("/", localize, h.Brands.GetAllBrands)
		brands.Get("/:slug", localize, h.Brands.GetBrandBySlug)
		brands.Post("/", requireAdmin, h.Brands.CreateBrand)

		brands.Get("/:id/translations", requireAdmin, h.BrandTranslations.ListTranslations)
		brands.Post("/:id/translations/:language", requireAdmin, h.BrandTranslations.UpsertTranslation)
		brands.Delete("/:id/translations/:language", requireAdmin, h.BrandTranslations.DeleteTranslation)
	}

	categories := v1.Group("/categories")
	{
		categories.Get("/", localize, h.Categories.GetCategoryTree)
		categories.Get("/:slug", localize, h.Categories.GetCategoryBySlug)
		categories.Post("/", requireAdmin, h.Categories.CreateCategory)

		categories.Get("/:id/translations", requireAdmin, h.CategoryTranslations.ListTranslations)
		categories.Post("/:id/translations/:language", requireAdmin, h.CategoryTranslations.UpsertTranslation)
		categories.Delete("/:id/translations/:language", requireAdmin, h.CategoryTranslations.DeleteTranslation)
	}

	images := v1.Group("/images")
	{
		images.Get("/products/:productId", h.Images.GetProductImages)
		images.Post("/products/:productId/presign", requireAdmin, h.Images.GetPresignedURL)
		images.Post("/products/:productId/upload", requireAdmin, h.Images.UploadImage)
		images.Post("/products/:productId", requireAdmin, h.Images.RegisterImage)
		images.Patch("/reorder", requireAdmin, h.Images.ReorderImages)
		images.Patch("/:imageId/primary", requireAdmin, h.Images.SetPrimaryImage)
		images.Delete("/:imageId", requireAdmin, h.Images.DeleteImage)
	}
}
