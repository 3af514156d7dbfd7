package routes

import (
	"Backend-Blueview/src/controllers"
	"Backend-Blueview/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func projectRoutes(router fiber.Router) {
	projects := router.Group("/projects")
	projects.Use(middleware.AuthJWT)

	projects.Get("/", controllers.GetProjects)
	projects.Get("/:id", controllers.GetProject)
	projects.Get("/:id/geofence", controllers.GetProjectGeofence)

	// Admin-only management
	projects.Post("/", middleware.RequireAdmin, controllers.CreateProject)
	projects.Put("/:id", middleware.RequireAdmin, controllers.UpdateProject)
	projects.Delete("/:id", middleware.RequireAdmin, controllers.DeleteProject)
	projects.Put("/:id/geofence", middleware.RequireAdmin, controllers.SetProjectGeofence)

	// Dropbox linkage
	projects.Post("/:id/link-dropbox", middleware.RequireAdmin, controllers.LinkDropboxFolder)
	projects.Get("/:id/dropbox-files", controllers.GetProjectDropboxFiles)

	// Report pipeline
	projects.Post("/:id/report-settings", middleware.RequireAdmin, controllers.SaveReportSettings)
	projects.Get("/:id/report-settings", middleware.RequireAdmin, controllers.GetReportSettings)
	projects.Post("/:id/generate-daily-report", middleware.RequireAdmin, controllers.GenerateDailyReport)
	projects.Get("/:id/reports", middleware.RequireAdmin, controllers.GetReports)
	projects.Post("/:id/send-report", middleware.RequireAdmin, controllers.SendReport)
}
