package controllers

import (
	"fmt"
	"strings"
	"time"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":                 user.ID.Hex(),
		"email":              user.Email,
		"name":               user.Name,
		"role":               user.Role,
		"has_passport":       user.WorkerPassportID != nil,
		"worker_passport_id": user.WorkerPassportID,
		"assigned_projects":  user.AssignedProjects,
	}
}

// Login godoc
// @Summary      Email/password login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body models.LoginRequest true "Login credentials"
// @Success      200 {object} models.SuccessResponse
// @Failure      401 {object} models.ErrorResponse
// @Router       /api/auth/login [post]
func Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(req.Email)
	if utils.IsRateLimited(email) {
		return utils.HandleError(c, fiber.StatusTooManyRequests,
			fmt.Sprintf("Too many failed attempts. Try again in %s.", utils.RemainingCooldown(email).Round(time.Second)))
	}

	user, err := services.AuthenticateUser(email, req.Password)
	if err != nil {
		utils.RecordLoginAttempt(email, false)
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	utils.RecordLoginAttempt(email, true)

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(fiber.Map{"token": token, "user": userPayload(user)})
}

// GoogleAuth logs in (or registers) via Google. New users get the worker role.
func GoogleAuth(c *fiber.Ctx) error {
	var req models.GoogleAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	user, isNew, err := services.GoogleLogin(&req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(fiber.Map{"token": token, "user": userPayload(user), "is_new": isNew})
}

// GetMe returns the authenticated account.
func GetMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	user, err := services.GetUserByID(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(userPayload(user))
}
