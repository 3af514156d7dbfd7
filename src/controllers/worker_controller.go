package controllers

import (
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateWorker godoc
// @Summary Add a worker to the roster
// @Tags workers
// @Security BearerAuth
// @Router /api/workers [post]
func CreateWorker(c *fiber.Ctx) error {
	var req models.WorkerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	worker, err := services.CreateWorker(&req, c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(worker)
}

func GetWorkers(c *fiber.Ctx) error {
	workers, err := services.GetAllWorkers(c.Query("company"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(workers)
}

func GetWorker(c *fiber.Ctx) error {
	worker, err := services.GetWorkerByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Worker not found")
	}
	return c.JSON(worker)
}

func UpdateWorker(c *fiber.Ctx) error {
	var req models.WorkerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := services.UpdateWorker(c.Params("id"), &req); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Worker not found")
	}
	return c.JSON(fiber.Map{"message": "Worker updated"})
}

func DeleteWorker(c *fiber.Ctx) error {
	if err := services.DeleteWorker(c.Params("id")); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Worker not found")
	}
	return c.JSON(fiber.Map{"message": "Worker deleted"})
}

// ---- Subcontractor phone whitelist ----

// AddWorkerPhone whitelists a phone number for geofence SMS check-in.
// Subcontractors manage their own crew; admins pass company explicitly.
func AddWorkerPhone(c *fiber.Ctx) error {
	var req models.WorkerPhoneCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	subID := ""
	if c.Locals("role") == models.RoleSubcontractor {
		subID = c.Locals("userId").(string)
	}
	worker, err := services.CreateWorkerPhone(&req, subID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(worker)
}

func GetWorkerPhones(c *fiber.Ctx) error {
	subID := ""
	if c.Locals("role") == models.RoleSubcontractor {
		subID = c.Locals("userId").(string)
	}
	workers, err := services.GetWorkerPhones(subID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(workers)
}

func UpdateWorkerPhone(c *fiber.Ctx) error {
	var req models.WorkerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	subID := ""
	if c.Locals("role") == models.RoleSubcontractor {
		subID = c.Locals("userId").(string)
	}
	if err := services.UpdateWorkerPhone(c.Params("id"), &req, subID); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Worker not found or access denied")
	}
	return c.JSON(fiber.Map{"message": "Worker updated"})
}

func DeleteWorkerPhone(c *fiber.Ctx) error {
	subID := ""
	if c.Locals("role") == models.RoleSubcontractor {
		subID = c.Locals("userId").(string)
	}
	if err := services.DeleteWorkerPhone(c.Params("id"), subID); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Worker not found")
	}
	return c.JSON(fiber.Map{"message": "Worker removed"})
}
