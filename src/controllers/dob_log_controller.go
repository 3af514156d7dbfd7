package controllers

import (
	"errors"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/services/reports"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AppendDOBLogEntry godoc
// @Summary Append a worker to today's DOB field log
// @Tags dob-logs
// @Security BearerAuth
// @Router /api/dob-daily-log/{id} [post]
func AppendDOBLogEntry(c *fiber.Ctx) error {
	var req models.DOBLogEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	logID, created, err := services.AppendDOBLogEntry(c.Params("id"), &req)
	if err != nil {
		if err.Error() == "Worker not found" {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	message := "Worker appended to DOB log"
	if created {
		message = "DOB log created"
	}
	return c.JSON(fiber.Map{"message": message, "log_id": logID})
}

// GetDOBDailyLog fetches the DOB sign-in log for one project and date.
func GetDOBDailyLog(c *fiber.Ctx) error {
	log, err := services.GetDOBDailyLog(c.Params("id"), c.Params("logDate"))
	if errors.Is(err, services.ErrDOBLogNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(log)
}

// ExportDOBLogPDF renders the DOB log in the printable compliance layout.
// Defaults to today when no log_date query is given.
func ExportDOBLogPDF(c *fiber.Ctx) error {
	pdfBase64, filename, err := reports.GenerateDOBLogPDF(c.Context(), c.Params("id"), c.Query("log_date"))
	if errors.Is(err, services.ErrDOBLogNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, "No DOB log for this date")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"pdf_base64": pdfBase64, "filename": filename})
}
