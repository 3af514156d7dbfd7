package routes

import (
	"Backend-Blueview/src/controllers"
	"Backend-Blueview/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/login", controllers.Login)
	auth.Post("/google", controllers.GoogleAuth)
	auth.Get("/me", middleware.AuthJWT, controllers.GetMe)
}

// setupRoutes first-run bootstrap, open until the first admin exists.
func setupRoutes(router fiber.Router) {
	setup := router.Group("/setup")
	setup.Post("/init-admin", controllers.InitAdmin)
	setup.Get("/status", controllers.SetupStatus)
}
