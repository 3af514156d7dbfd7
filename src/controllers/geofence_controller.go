package controllers

import (
	"errors"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GeofenceEntry godoc
// @Summary Geofence entry webhook
// @Description Called when a phone crosses a site geofence. Whitelisted numbers get an SMS check-in link; everything else is acknowledged and ignored.
// @Tags geofence
// @Router /api/geofence/entry-event [post]
func GeofenceEntry(c *fiber.Ctx) error {
	var req models.GeofenceEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := services.HandleGeofenceEntry(cfg, &req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// FastLoginCheckin consumes a one-time SMS token and checks the worker in.
func FastLoginCheckin(c *fiber.Ctx) error {
	var req models.SMSCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := services.FastLoginCheckin(&req)
	if err != nil {
		if errors.Is(err, services.ErrFastLoginInvalid) {
			return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

func GetGeofenceEvents(c *fiber.Ctx) error {
	events, err := services.GetGeofenceEvents(c.Query("project_id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(events)
}
