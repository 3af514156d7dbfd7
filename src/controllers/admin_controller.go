package controllers

import (
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// ---- First-run setup ----

// SetupStatus reports whether the first admin has been created yet.
func SetupStatus(c *fiber.Ctx) error {
	exists, err := services.AdminExists()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"initialized": exists})
}

// InitAdmin creates the very first admin account. Open endpoint; refuses
// once an admin exists.
func InitAdmin(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := services.InitAdmin(req.Email, req.Password, req.Name)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": userPayload(user)})
}

// ---- Admin user management ----

func GetAllUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(c.Query("role"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(users)
}

// CreateCP registers a competent-person (or subcontractor) account.
func CreateCP(c *fiber.Ctx) error {
	var req models.CPCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := services.CreateCPUser(&req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(userPayload(user))
}

// AssignProjects replaces a user's project assignments.
func AssignProjects(c *fiber.Ctx) error {
	var req struct {
		AssignedProjects []string `json:"assigned_projects"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.AssignedProjects == nil {
		req.AssignedProjects = []string{}
	}

	err := services.UpdateUser(c.Params("id"), bson.M{"assigned_projects": req.AssignedProjects})
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(fiber.Map{"message": "Projects assigned"})
}

func DeleteUser(c *fiber.Ctx) error {
	if err := services.DeleteUser(c.Params("id")); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

// ---- Admin subcontractor management ----

func CreateSubcontractor(c *fiber.Ctx) error {
	var req models.SubcontractorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	sub, err := services.CreateSubcontractor(&req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func GetSubcontractors(c *fiber.Ctx) error {
	subs, err := services.GetSubcontractors(c.Query("project_id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(subs)
}

func UpdateSubcontractor(c *fiber.Ctx) error {
	var req models.SubcontractorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	sub, err := services.UpdateSubcontractor(c.Params("id"), &req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Subcontractor not found")
	}
	return c.JSON(sub)
}

func DeleteSubcontractor(c *fiber.Ctx) error {
	if err := services.DeleteSubcontractor(c.Params("id")); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Subcontractor not found")
	}
	return c.JSON(fiber.Map{"message": "Subcontractor deleted"})
}
