package routes

import (
	"Backend-Blueview/src/controllers"
	"Backend-Blueview/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func nfcRoutes(router fiber.Router) {
	tags := router.Group("/nfc-tags")
	tags.Post("/", middleware.AuthJWT, middleware.RequireAdmin, controllers.RegisterNFCTag)
	tags.Get("/", middleware.AuthJWT, controllers.GetNFCTags)
	tags.Delete("/:tagId", middleware.AuthJWT, middleware.RequireAdmin, controllers.DeactivateNFCTag)

	// Open: a phone reads the tag before the worker is authenticated
	tags.Get("/:tagId/info", controllers.GetNFCTagInfo)

	router.Post("/nfc-checkin", controllers.NFCCheckin)
	router.Post("/nfc-checkout/:id", controllers.NFCCheckout)
}

// passportRoutes are open endpoints; the kiosk and worker phones hit them
// before any account exists.
func passportRoutes(router fiber.Router) {
	passport := router.Group("/passport")
	passport.Post("/ocr-osha-card", controllers.OCROSHACard)
	passport.Post("/create", controllers.CreatePassport)
	passport.Post("/checkin", controllers.PassportCheckin)
	passport.Get("/by-osha/:oshaNumber", controllers.GetPassportByOsha)
	passport.Get("/:id", controllers.GetPassport)
}
