package controllers

import "github.com/gofiber/fiber/v2"

// HealthCheck godoc
// @Summary Liveness probe
// @Tags health
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"app":      "Blueview",
		"version":  "3.0.0",
		"database": "MongoDB Atlas",
	})
}
