package routes

import (
	"Backend-Blueview/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes mounts every API group under /api.
func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	authRoutes(api)
	setupRoutes(api)
	adminRoutes(api)
	ownerRoutes(api)
	workerRoutes(api)
	projectRoutes(api)
	weatherRoutes(api)
	checkinRoutes(api)
	nfcRoutes(api)
	passportRoutes(api)
	dailyLogRoutes(api)
	dobLogRoutes(api)
	safetyRoutes(api)
	materialRoutes(api)
	geofenceRoutes(api)
	dropboxRoutes(api)
	documentRoutes(api)
	reportRoutes(api)

	api.Get("/health", controllers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ Blueview API is running...")
	})
}
