package routes

import (
	"Backend-Blueview/src/controllers"
	"Backend-Blueview/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func workerRoutes(router fiber.Router) {
	workers := router.Group("/workers")
	workers.Use(middleware.AuthJWT, middleware.RequireCPOrAdmin)
	workers.Post("/", controllers.CreateWorker)
	workers.Get("/", controllers.GetWorkers)
	workers.Get("/:id", controllers.GetWorker)
	workers.Put("/:id", controllers.UpdateWorker)
	workers.Delete("/:id", controllers.DeleteWorker)

	// Phone whitelist managed by subcontractors for SMS check-in
	phones := router.Group("/subcontractor/workers")
	phones.Use(middleware.AuthJWT, middleware.RequireSubcontractorOrAdmin)
	phones.Post("/", controllers.AddWorkerPhone)
	phones.Get("/", controllers.GetWorkerPhones)
	phones.Put("/:id", controllers.UpdateWorkerPhone)
	phones.Delete("/:id", controllers.DeleteWorkerPhone)
}
