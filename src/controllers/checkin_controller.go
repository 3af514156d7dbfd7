package controllers

import (
	"errors"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateCheckin godoc
// @Summary Manually check a worker in
// @Tags checkins
// @Security BearerAuth
// @Router /api/checkins [post]
func CreateCheckin(c *fiber.Ctx) error {
	var req models.CheckinCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	checkin, err := services.CreateCheckin(&req)
	if errors.Is(err, services.ErrCheckinWorkerNotFound) || errors.Is(err, services.ErrCheckinProjectNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(checkin)
}

func CheckoutCheckin(c *fiber.Ctx) error {
	checkin, err := services.CheckoutCheckin(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(checkin)
}

// GetTodayCheckins lists today's check-ins for a project.
func GetTodayCheckins(c *fiber.Ctx) error {
	checkins, err := services.GetCheckinsByDate(c.Params("id"), utils.TodayDate())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(checkins)
}

// GetActiveCheckins lists workers currently on site (no checkout yet).
func GetActiveCheckins(c *fiber.Ctx) error {
	checkins, err := services.GetActiveCheckins(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(checkins)
}

// GetCheckinStats returns today's headcount grouped by company.
func GetCheckinStats(c *fiber.Ctx) error {
	stats, err := services.GetTodayStats(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	total := 0
	for _, s := range stats {
		total += s.Count
	}
	return c.JSON(fiber.Map{
		"date":       utils.TodayDate(),
		"total":      total,
		"by_company": stats,
	})
}

// GetCheckinsByDate lists check-ins for a project on a specific date.
func GetCheckinsByDate(c *fiber.Ctx) error {
	checkins, err := services.GetCheckinsByDate(c.Params("projectId"), c.Params("date"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(checkins)
}
