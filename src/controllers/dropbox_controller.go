package controllers

import (
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// DropboxAuthURL starts the OAuth flow. The admin pastes the code back
// rather than being redirected, so no callback endpoint is needed.
func DropboxAuthURL(c *fiber.Ctx) error {
	url, err := services.GetDropboxAuthURL(cfg.DropboxAppKey, cfg.DropboxAppSecret, c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"auth_url": url})
}

func CompleteDropboxAuth(c *fiber.Ctx) error {
	var req struct {
		AuthCode string `json:"auth_code" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	err := services.CompleteDropboxAuth(cfg.DropboxAppKey, cfg.DropboxAppSecret, c.Locals("userId").(string), req.AuthCode)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Dropbox connected"})
}

func DropboxStatus(c *fiber.Ctx) error {
	connected, connectedAt := services.GetDropboxStatus(c.Locals("userId").(string))
	return c.JSON(fiber.Map{"connected": connected, "connected_at": connectedAt})
}

// GetSharedDocuments lets field users browse the project's linked folder
// through the admin's Dropbox connection. Read-only for non-admins.
func GetSharedDocuments(c *fiber.Ctx) error {
	projectID := c.Query("project_id")
	if projectID == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "project_id is required")
	}

	files, folder, message, err := services.ListSharedDocuments(projectID)
	if err != nil {
		if err.Error() == "Project not found" {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if message != "" {
		return c.JSON(fiber.Map{"files": files, "message": message})
	}

	isAdmin := c.Locals("role") == models.RoleAdmin
	return c.JSON(fiber.Map{
		"files":      files,
		"folder":     folder,
		"can_edit":   isAdmin,
		"can_delete": isAdmin,
	})
}

// ViewSharedDocument returns a temporary download link for one shared file.
func ViewSharedDocument(c *fiber.Ctx) error {
	filePath := c.Query("file_path")
	if filePath == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "file_path is required")
	}

	url, filename, err := services.GetSharedDocumentLink(filePath)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{
		"download_url": url,
		"filename":     filename,
		"expires_in":   "4 hours",
		"can_edit":     false,
	})
}
