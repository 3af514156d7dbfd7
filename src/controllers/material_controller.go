package controllers

import (
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateMaterialRequest(c *fiber.Ctx) error {
	var req models.MaterialRequestCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if c.Locals("role") == models.RoleSubcontractor {
		user, err := services.GetUserByID(c.Locals("userId").(string))
		if err != nil || !assigned(user.AssignedProjects, req.ProjectID) {
			return utils.HandleError(c, fiber.StatusForbidden, "Not assigned to this project")
		}
	}

	mr, err := services.CreateMaterialRequest(&req, c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(mr)
}

func GetMaterialRequests(c *fiber.Ctx) error {
	subID := ""
	if c.Locals("role") == models.RoleSubcontractor {
		subID = c.Locals("userId").(string)
	}
	requests, err := services.GetMaterialRequests(subID, c.Query("project_id"), c.Query("status"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(requests)
}

func UpdateMaterialRequest(c *fiber.Ctx) error {
	var req models.MaterialRequestUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	mr, err := services.UpdateMaterialRequest(c.Params("id"), &req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(mr)
}

func DeleteMaterialRequest(c *fiber.Ctx) error {
	subID := ""
	if c.Locals("role") == models.RoleSubcontractor {
		subID = c.Locals("userId").(string)
	}
	if err := services.DeleteMaterialRequest(c.Params("id"), subID); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Material request deleted"})
}
