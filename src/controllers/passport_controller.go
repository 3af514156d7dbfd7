package controllers

import (
	"encoding/base64"
	"errors"
	"io"
	"sync"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services/ocr"
	"Backend-Blueview/src/services/passports"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	passportSvc     *passports.Service
	passportSvcOnce sync.Once
)

// passportService lazily builds the passport workflow service; the Mongo
// connection must already be up by the time the first request arrives.
func passportService() *passports.Service {
	passportSvcOnce.Do(func() {
		passportSvc = passports.NewMongoService()
	})
	return passportSvc
}

// OCROSHACard godoc
// @Summary Extract worker details from an OSHA card photo
// @Description Forwards the uploaded card image to the OCR service. Soft-fails so the form can be completed manually.
// @Tags passports
// @Accept mpfd
// @Router /api/passport/ocr-osha-card [post]
func OCROSHACard(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing card image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Cannot read card image")
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Cannot read card image")
	}

	result, err := ocr.ExtractOSHACard(cfg.OCRServiceURL, base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadGateway, err.Error())
	}
	return c.JSON(result)
}

// CreatePassport registers a worker passport. Returns the existing
// passport when the OSHA number is already registered.
func CreatePassport(c *fiber.Ctx) error {
	var req models.PassportCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	passport, created, err := passports.CreatePassport(&req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"passport":        passport,
		"already_existed": !created,
	})
}

func GetPassport(c *fiber.Ctx) error {
	passport, err := passports.GetPassport(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Passport not found")
	}
	return c.JSON(passport)
}

func GetPassportByOsha(c *fiber.Ctx) error {
	passport, err := passports.GetPassportByOsha(c.Params("oshaNumber"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Passport not found")
	}
	return c.JSON(passport)
}

// PassportCheckin godoc
// @Summary One-tap NFC check-in that signs all compliance books
// @Description Resolves the tag and passport, inserts the daily sign-in, signs the safety meeting sheet and, on a first visit, the site orientation log.
// @Tags passports
// @Router /api/passport/checkin [post]
func PassportCheckin(c *fiber.Ctx) error {
	var req models.PassportCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := passportService().AutoCheckin(c.Context(), models.TagID(req.TagID), models.PassportID(req.DevicePassportID))
	if err != nil {
		if errors.Is(err, passports.ErrInvalidTag) || errors.Is(err, passports.ErrPassportNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}
