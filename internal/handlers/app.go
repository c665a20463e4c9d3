package handlers

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/jjenkins/resume/internal/catalog"
)

// NewApp builds the fiber application with all routes registered
func NewApp(svc Resumer, c *catalog.Catalog, accessLog bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     "Lodestone Résumé",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	if accessLog {
		app.Use(logger.New())
	}

	app.Get("/healthz", HealthHandler())
	app.Get("/catalog", CatalogHandler(c))

	// Résumé routes
	app.Get("/resume/:characterID", ResumeTextHandler(svc))
	app.Get("/api/resume/:characterID", ResumeJSONHandler(svc))
	app.Get("/characters/:characterID", ResumePageHandler(svc))

	return app
}
