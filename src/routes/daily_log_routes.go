package routes

import (
	"Backend-Blueview/src/controllers"
	"Backend-Blueview/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func dailyLogRoutes(router fiber.Router) {
	logs := router.Group("/daily-logs")
	logs.Use(middleware.AuthJWT, middleware.RequireCPOrAdmin)
	logs.Post("/", controllers.CreateDailyLog)
	logs.Get("/", controllers.GetDailyLogs)
	logs.Get("/project/:id", controllers.GetProjectDailyLogs)
	logs.Get("/project/:id/date/:date", controllers.GetDailyLogByDate)
	logs.Get("/:id", controllers.GetDailyLog)
	logs.Put("/:id", controllers.UpdateDailyLog)
	logs.Post("/:id/submit", controllers.SubmitDailyLog)
	logs.Get("/:id/pdf", controllers.DailyLogPDF)
	logs.Delete("/:id", controllers.DeleteDailyLog)
}

func dobLogRoutes(router fiber.Router) {
	dob := router.Group("/dob-daily-log")
	dob.Use(middleware.AuthJWT)
	dob.Post("/:id", controllers.AppendDOBLogEntry)
	// export before the date wildcard so it isn't swallowed as a logDate
	dob.Get("/:id/export", controllers.ExportDOBLogPDF)
	dob.Get("/:id/:logDate", controllers.GetDOBDailyLog)
}

func safetyRoutes(router fiber.Router) {
	meetings := router.Group("/safety-meetings")
	meetings.Use(middleware.AuthJWT)
	meetings.Post("/", middleware.RequireCPOrAdmin, controllers.CreateSafetyMeeting)
	meetings.Get("/", controllers.GetSafetyMeetings)
	meetings.Get("/:projectId/:date", controllers.GetSafetyMeetingByDate)
	meetings.Post("/:id/sign", controllers.SignSafetyMeeting)

	router.Get("/site-orientations", middleware.AuthJWT, controllers.GetSiteOrientations)
}

func materialRoutes(router fiber.Router) {
	materials := router.Group("/material-requests")
	materials.Use(middleware.AuthJWT, middleware.RequireSubcontractorOrAdmin)
	materials.Post("/", controllers.CreateMaterialRequest)
	materials.Get("/", controllers.GetMaterialRequests)
	materials.Put("/:id", middleware.RequireAdmin, controllers.UpdateMaterialRequest)
	materials.Delete("/:id", controllers.DeleteMaterialRequest)
}
