package controllers

import (
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// RegisterNFCTag binds (or rebinds) a physical tag to a project.
func RegisterNFCTag(c *fiber.Ctx) error {
	var req models.NFCTagRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	tag, err := services.RegisterNFCTag(&req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

func GetNFCTags(c *fiber.Ctx) error {
	tags, err := services.GetNFCTags(c.Query("project_id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(tags)
}

// GetNFCTagInfo is the open endpoint a phone hits after reading a tag.
// Returns the tag plus the project it is mounted at.
func GetNFCTagInfo(c *fiber.Ctx) error {
	tag, project, err := services.GetNFCTagInfo(c.Params("tagId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "NFC tag not found")
	}
	return c.JSON(fiber.Map{
		"tag_id":       tag.TagID,
		"location":     tag.Location,
		"project_id":   tag.ProjectID,
		"project_name": project.Name,
		"address":      project.Address,
	})
}

func DeactivateNFCTag(c *fiber.Ctx) error {
	if err := services.DeactivateNFCTag(c.Params("tagId")); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "NFC tag not found")
	}
	return c.JSON(fiber.Map{"message": "NFC tag deactivated"})
}

// NFCCheckin godoc
// @Summary Check a registered worker in via NFC tap
// @Tags nfc
// @Router /api/nfc-checkin [post]
func NFCCheckin(c *fiber.Ctx) error {
	var req models.NFCCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	checkin, already, err := services.NFCCheckin(&req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{
		"checkin":            checkin,
		"already_checked_in": already,
	})
}

// NFCCheckout closes the open check-in for the tapped worker.
func NFCCheckout(c *fiber.Ctx) error {
	var req models.NFCCheckinRequest
	_ = c.BodyParser(&req)
	if req.TagID == "" {
		req.TagID = c.Query("tag_id")
	}
	req.WorkerID = c.Params("id")

	checkin, err := services.NFCCheckout(&req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(checkin)
}
