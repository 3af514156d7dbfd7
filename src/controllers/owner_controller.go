package controllers

import (
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// ownerKeyValid accepts the master key from the request body field,
// the X-Owner-Key header or the owner_key query parameter.
func ownerKeyValid(c *fiber.Ctx, bodyKey string) bool {
	if cfg.OwnerKey == "" {
		return false
	}
	for _, key := range []string{bodyKey, c.Get("X-Owner-Key"), c.Query("owner_key")} {
		if key != "" && key == cfg.OwnerKey {
			return true
		}
	}
	return false
}

func OwnerListAdmins(c *fiber.Ctx) error {
	if !ownerKeyValid(c, "") {
		return utils.HandleError(c, fiber.StatusForbidden, "Invalid owner credentials")
	}
	admins, err := services.ListAdmins()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(admins)
}

// OwnerCreateAdmin provisions an admin account for a paying company.
func OwnerCreateAdmin(c *fiber.Ctx) error {
	var req struct {
		OwnerKey    string `json:"owner_key"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		CompanyName string `json:"company_name"`
		ContactName string `json:"contact_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !ownerKeyValid(c, req.OwnerKey) {
		return utils.HandleError(c, fiber.StatusForbidden, "Invalid owner credentials")
	}

	admin, err := services.OwnerCreateAdmin(req.Email, req.Password, req.CompanyName, req.ContactName)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           admin.ID.Hex(),
		"email":        admin.Email,
		"company_name": admin.Company,
		"message":      "Admin account created successfully",
	})
}

func OwnerUpdateAdmin(c *fiber.Ctx) error {
	var req struct {
		OwnerKey    string  `json:"owner_key"`
		CompanyName *string `json:"company_name"`
		Password    *string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !ownerKeyValid(c, req.OwnerKey) {
		return utils.HandleError(c, fiber.StatusForbidden, "Invalid owner credentials")
	}

	if err := services.OwnerUpdateAdmin(c.Params("id"), req.CompanyName, req.Password); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Admin account updated"})
}

func OwnerDeleteAdmin(c *fiber.Ctx) error {
	if !ownerKeyValid(c, "") {
		return utils.HandleError(c, fiber.StatusForbidden, "Invalid owner credentials")
	}
	if err := services.OwnerDeleteAdmin(c.Params("id")); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Admin account deleted"})
}
