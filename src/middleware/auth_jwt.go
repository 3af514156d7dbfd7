package middleware

import (
	"strings"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT validates the bearer token and stashes the caller's identity in
// the request locals (userId, email, role) for the role guards below.
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token", "detail": err.Error()})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)

	return c.Next()
}

// RequireAdmin must run after AuthJWT.
func RequireAdmin(c *fiber.Ctx) error {
	if c.Locals("role") != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
	}
	return c.Next()
}

// RequireSubcontractorOrAdmin gates material requests and worker-phone CRUD.
func RequireSubcontractorOrAdmin(c *fiber.Ctx) error {
	role := c.Locals("role")
	if role != models.RoleAdmin && role != models.RoleSubcontractor {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Subcontractor or Admin access required"})
	}
	return c.Next()
}

// RequireCPOrAdmin gates daily-log authoring. Subcontractors pass so they
// can file logs for their own trade.
func RequireCPOrAdmin(c *fiber.Ctx) error {
	role := c.Locals("role")
	if role != models.RoleAdmin && role != models.RoleCP && role != models.RoleSubcontractor {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "CP, Subcontractor or Admin access required"})
	}
	return c.Next()
}
