package controllers

import (
	"errors"
	"strconv"

	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetWeather proxies current conditions for a lat/lon pair.
func GetWeather(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "lat and lon query parameters are required")
	}

	report, err := services.GetWeather(cfg.OpenWeatherAPIKey, lat, lon)
	if err != nil {
		if errors.Is(err, services.ErrWeatherNotConfigured) {
			return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
		}
		return utils.HandleError(c, fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(report)
}

// GetWeatherByLocation proxies current conditions for a free-form place name.
func GetWeatherByLocation(c *fiber.Ctx) error {
	location := c.Query("location")
	if location == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "location query parameter is required")
	}

	report, err := services.GetWeatherByLocation(cfg.OpenWeatherAPIKey, location)
	if err != nil {
		if errors.Is(err, services.ErrWeatherNotConfigured) {
			return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
		}
		return utils.HandleError(c, fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(report)
}
