package routes

import (
	"Backend-Blueview/src/controllers"
	"Backend-Blueview/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// geofenceRoutes entry webhook is open; the geofence provider has no JWT.
func geofenceRoutes(router fiber.Router) {
	geofence := router.Group("/geofence")
	geofence.Post("/entry-event", controllers.GeofenceEntry)
	geofence.Get("/events", middleware.AuthJWT, middleware.RequireAdmin, controllers.GetGeofenceEvents)
}

func dropboxRoutes(router fiber.Router) {
	dropbox := router.Group("/dropbox")
	dropbox.Use(middleware.AuthJWT, middleware.RequireAdmin)
	dropbox.Get("/auth-url", controllers.DropboxAuthURL)
	dropbox.Post("/complete-auth", controllers.CompleteDropboxAuth)
	dropbox.Get("/status", controllers.DropboxStatus)
}

func documentRoutes(router fiber.Router) {
	documents := router.Group("/documents")
	documents.Use(middleware.AuthJWT)
	documents.Get("/shared", controllers.GetSharedDocuments)
	documents.Get("/view/:id", controllers.ViewSharedDocument)
}

func reportRoutes(router fiber.Router) {
	mappings := router.Group("/trade-mappings")
	mappings.Use(middleware.AuthJWT, middleware.RequireAdmin)
	mappings.Post("/", controllers.SaveTradeMapping)
	mappings.Get("/", controllers.GetTradeMappings)
	mappings.Delete("/:id", controllers.DeleteTradeMapping)

	router.Get("/reports/:id/download", middleware.AuthJWT, middleware.RequireAdmin, controllers.DownloadReport)
}
