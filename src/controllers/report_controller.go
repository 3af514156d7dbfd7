package controllers

import (
	"fmt"

	DB "Backend-Blueview/src/database"
	"Backend-Blueview/src/jobs"
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services/reports"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

// SaveReportSettings stores per-project report distribution settings.
func SaveReportSettings(c *fiber.Ctx) error {
	var req models.ReportSettingsCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	err := reports.SaveReportSettings(c.Params("id"), &req, c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Report settings saved"})
}

func GetReportSettings(c *fiber.Ctx) error {
	settings, err := reports.GetReportSettings(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(settings)
}

// ---- Trade mappings ----

func SaveTradeMapping(c *fiber.Ctx) error {
	var req models.TradeMappingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	mapping, err := reports.SaveTradeMapping(&req, c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(mapping)
}

func GetTradeMappings(c *fiber.Ctx) error {
	mappings, err := reports.GetTradeMappings(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(mappings)
}

func DeleteTradeMapping(c *fiber.Ctx) error {
	if err := reports.DeleteTradeMapping(c.Params("id"), c.Locals("userId").(string)); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Trade mapping not found")
	}
	return c.JSON(fiber.Map{"message": "Trade mapping deleted"})
}

// ---- Report generation ----

// GenerateDailyReport godoc
// @Summary Generate the daily report bundle
// @Description Renders the manpower summary, jobsite log and safety meeting PDFs for a project and date, archives them and emails the distribution list.
// @Tags reports
// @Security BearerAuth
// @Router /api/projects/{id}/generate-daily-report [post]
func GenerateDailyReport(c *fiber.Ctx) error {
	var req struct {
		ReportDate string `json:"report_date"`
	}
	_ = c.BodyParser(&req)
	if req.ReportDate == "" {
		req.ReportDate = utils.TodayDate()
	}

	result, err := reports.GenerateDailyReport(c.Context(), cfg, c.Params("id"), req.ReportDate, c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(result)
}

// SendReport re-queues a report run through the background worker so the
// request returns immediately. Falls back to inline generation without Redis.
func SendReport(c *fiber.Ctx) error {
	var req struct {
		ReportDate string `json:"report_date"`
	}
	_ = c.BodyParser(&req)
	if req.ReportDate == "" {
		req.ReportDate = utils.TodayDate()
	}
	projectID := c.Params("id")
	adminID := c.Locals("userId").(string)

	if DB.AsynqClient == nil {
		result, err := reports.GenerateDailyReport(c.Context(), cfg, projectID, req.ReportDate, adminID)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(result)
	}

	task, err := jobs.NewGenerateDailyReportTask(projectID, req.ReportDate, adminID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	info, err := DB.AsynqClient.Enqueue(task, asynq.MaxRetry(3),
		asynq.TaskID(fmt.Sprintf("daily-report-%s-%s", projectID, req.ReportDate)))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Report queued", "task_id": info.ID})
}

func GetReports(c *fiber.Ctx) error {
	listings, err := reports.ListReports(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(listings)
}

// DownloadReport returns one archived PDF, base64 encoded.
func DownloadReport(c *fiber.Ctx) error {
	reportType := c.Query("type", models.ReportTypeManpowerSummary)
	pdfBase64, filename, reportDate, err := reports.DownloadReport(c.Params("id"), reportType)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{
		"pdf_base64":  pdfBase64,
		"filename":    filename,
		"report_date": reportDate,
	})
}
