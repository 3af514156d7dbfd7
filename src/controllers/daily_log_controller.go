package controllers

import (
	"context"
	stdlog "log"

	DB "Backend-Blueview/src/database"
	"Backend-Blueview/src/jobs"
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/services/reports"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

// CreateDailyLog godoc
// @Summary Create a daily field log draft
// @Tags daily-logs
// @Security BearerAuth
// @Router /api/daily-logs [post]
func CreateDailyLog(c *fiber.Ctx) error {
	var req models.DailyLogCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	log, err := services.CreateDailyLog(&req, c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

func GetDailyLogs(c *fiber.Ctx) error {
	logs, err := services.GetDailyLogs(c.Query("project_id"), c.Query("date"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(logs)
}

func GetProjectDailyLogs(c *fiber.Ctx) error {
	logs, err := services.GetDailyLogs(c.Params("id"), "")
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(logs)
}

func GetDailyLogByDate(c *fiber.Ctx) error {
	logs, err := services.GetDailyLogs(c.Params("id"), c.Params("date"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(logs) == 0 {
		return utils.HandleError(c, fiber.StatusNotFound, "Daily log not found")
	}
	return c.JSON(logs[0])
}

func GetDailyLog(c *fiber.Ctx) error {
	log, err := services.GetDailyLogByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Daily log not found")
	}
	return c.JSON(log)
}

func UpdateDailyLog(c *fiber.Ctx) error {
	var req models.DailyLogUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	log, err := services.UpdateDailyLog(c.Params("id"), &req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(log)
}

// SubmitDailyLog locks a draft. Submitted logs can no longer be edited.
func SubmitDailyLog(c *fiber.Ctx) error {
	log, err := services.SubmitDailyLog(c.Params("id"), c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	logID := log.ID.Hex()
	if DB.AsynqClient != nil {
		if task, terr := jobs.NewSendDailyLogEmailTask(logID); terr == nil {
			if _, eerr := DB.AsynqClient.Enqueue(task, asynq.MaxRetry(3)); eerr != nil {
				stdlog.Println("⚠️ Enqueue daily log email failed:", eerr)
			}
		}
	} else {
		go func() {
			if serr := reports.SendDailyLogEmail(context.Background(), cfg, logID); serr != nil {
				stdlog.Println("⚠️ Daily log email failed:", serr)
			}
		}()
	}

	return c.JSON(log)
}

func DeleteDailyLog(c *fiber.Ctx) error {
	if err := services.DeleteDailyLog(c.Params("id")); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Daily log deleted"})
}

// DailyLogPDF renders the field report as a PDF, returned base64 encoded.
func DailyLogPDF(c *fiber.Ctx) error {
	pdfBase64, filename, err := reports.GenerateDailyLogPDF(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"pdf_base64": pdfBase64, "filename": filename})
}
