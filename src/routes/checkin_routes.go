package routes

import (
	"Backend-Blueview/src/controllers"
	"Backend-Blueview/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func checkinRoutes(router fiber.Router) {
	checkins := router.Group("/checkins")
	checkins.Use(middleware.AuthJWT)
	checkins.Post("/", controllers.CreateCheckin)
	checkins.Post("/:id/checkout", controllers.CheckoutCheckin)
	checkins.Get("/project/:id/today", controllers.GetTodayCheckins)
	checkins.Get("/project/:id/active", controllers.GetActiveCheckins)
	checkins.Get("/stats/:id", controllers.GetCheckinStats)
	checkins.Get("/:projectId/:date", controllers.GetCheckinsByDate)

	// SMS fast-login carries its own one-time token
	router.Post("/checkin/fast-login", controllers.FastLoginCheckin)
}

func weatherRoutes(router fiber.Router) {
	weather := router.Group("/weather")
	weather.Use(middleware.AuthJWT)
	weather.Get("/", controllers.GetWeather)
	weather.Get("/by-location", controllers.GetWeatherByLocation)
}
