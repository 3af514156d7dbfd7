package controllers

import (
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateSafetyMeeting records the pre-shift meeting details. Merges onto
// the auto-created sheet when NFC taps already started one for the day.
func CreateSafetyMeeting(c *fiber.Ctx) error {
	var req models.SafetyMeetingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	meeting, err := services.CreateSafetyMeeting(&req, c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(meeting)
}

func GetSafetyMeetings(c *fiber.Ctx) error {
	meetings, err := services.GetSafetyMeetings(c.Query("project_id"), c.Query("date"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(meetings)
}

// GetSafetyMeetingByDate returns a project's sign-in sheet for one day.
func GetSafetyMeetingByDate(c *fiber.Ctx) error {
	meetings, err := services.GetSafetyMeetings(c.Params("projectId"), c.Params("date"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(meetings) == 0 {
		return utils.HandleError(c, fiber.StatusNotFound, "No safety meeting for this date")
	}
	return c.JSON(meetings[0])
}

// SignSafetyMeeting adds a manual signature to a meeting sheet.
func SignSafetyMeeting(c *fiber.Ctx) error {
	var attendee models.SafetyMeetingAttendee
	if err := c.BodyParser(&attendee); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if attendee.WorkerName == "" || attendee.OshaNumber == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "worker_name and osha_number are required")
	}

	signed, err := services.SignSafetyMeeting(c.Params("id"), attendee)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{"signed": signed, "already_signed": !signed})
}

func GetSiteOrientations(c *fiber.Ctx) error {
	orientations, err := services.GetSiteOrientations(c.Query("project_id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(orientations)
}
