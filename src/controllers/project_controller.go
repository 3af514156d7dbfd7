package controllers

import (
	"Backend-Blueview/src/models"
	"Backend-Blueview/src/services"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateProject godoc
// @Summary Create a project site
// @Tags projects
// @Security BearerAuth
// @Router /api/projects [post]
func CreateProject(c *fiber.Ctx) error {
	var req models.ProjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	project, err := services.CreateProject(&req, c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// GetProjects lists job sites. A cp account only sees its assignments.
func GetProjects(c *fiber.Ctx) error {
	var projects []models.Project
	var err error
	if c.Locals("role") == models.RoleCP {
		user, uerr := services.GetUserByID(c.Locals("userId").(string))
		if uerr != nil {
			return utils.HandleError(c, fiber.StatusUnauthorized, "User not found")
		}
		projects, err = services.GetProjectsByIDs(user.AssignedProjects)
	} else {
		projects, err = services.GetAllProjects()
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(projects)
}

func GetProject(c *fiber.Ctx) error {
	projectID := c.Params("id")
	if c.Locals("role") == models.RoleCP {
		user, err := services.GetUserByID(c.Locals("userId").(string))
		if err != nil || !assigned(user.AssignedProjects, projectID) {
			return utils.HandleError(c, fiber.StatusForbidden, "Access denied to this project")
		}
	}

	project, err := services.GetProjectByID(projectID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
	}
	return c.JSON(project)
}

func assigned(projects []string, id string) bool {
	for _, p := range projects {
		if p == id {
			return true
		}
	}
	return false
}

func UpdateProject(c *fiber.Ctx) error {
	var req models.ProjectUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	project, err := services.UpdateProject(c.Params("id"), &req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
	}
	return c.JSON(project)
}

func DeleteProject(c *fiber.Ctx) error {
	if err := services.DeleteProject(c.Params("id")); err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
	}
	return c.JSON(fiber.Map{"message": "Project deleted"})
}

// SetProjectGeofence updates the geofence center and radius for a site.
func SetProjectGeofence(c *fiber.Ctx) error {
	var req struct {
		Latitude  float64 `json:"latitude" validate:"required"`
		Longitude float64 `json:"longitude" validate:"required"`
		Radius    int     `json:"radius"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Radius <= 0 {
		req.Radius = 100
	}

	update := models.ProjectUpdateRequest{
		Latitude:       &req.Latitude,
		Longitude:      &req.Longitude,
		GeofenceRadius: &req.Radius,
	}
	project, err := services.UpdateProject(c.Params("id"), &update)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
	}
	return c.JSON(fiber.Map{"message": "Geofence updated", "geofence": project.Geofence})
}

func GetProjectGeofence(c *fiber.Ctx) error {
	project, err := services.GetProjectByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
	}
	return c.JSON(fiber.Map{"project_id": project.ID.Hex(), "geofence": project.Geofence})
}

// LinkDropboxFolder attaches a Dropbox folder path to a project.
func LinkDropboxFolder(c *fiber.Ctx) error {
	var req struct {
		FolderPath string `json:"folder_path" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	err := services.LinkDropboxFolder(c.Params("id"), req.FolderPath, c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Dropbox folder linked", "folder_path": req.FolderPath})
}

func GetProjectDropboxFiles(c *fiber.Ctx) error {
	files, folder, err := services.ListDropboxFiles(c.Params("id"), c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"folder_path": folder, "files": files})
}
