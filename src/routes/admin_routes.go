package routes

import (
	"Backend-Blueview/src/controllers"
	"Backend-Blueview/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func adminRoutes(router fiber.Router) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthJWT, middleware.RequireAdmin)

	admin.Get("/users", controllers.GetAllUsers)
	admin.Post("/create-cp", controllers.CreateCP)
	admin.Put("/users/:id/assign-projects", controllers.AssignProjects)
	admin.Delete("/users/:id", controllers.DeleteUser)

	admin.Post("/create-subcontractor", controllers.CreateSubcontractor)
	admin.Get("/subcontractors", controllers.GetSubcontractors)
	admin.Put("/subcontractors/:id", controllers.UpdateSubcontractor)
	admin.Delete("/subcontractors/:id", controllers.DeleteSubcontractor)
}

// ownerRoutes are guarded by the owner master key, not JWT.
func ownerRoutes(router fiber.Router) {
	owner := router.Group("/owner")
	owner.Get("/admins", controllers.OwnerListAdmins)
	owner.Post("/create-admin", controllers.OwnerCreateAdmin)
	owner.Put("/admins/:id", controllers.OwnerUpdateAdmin)
	owner.Delete("/admins/:id", controllers.OwnerDeleteAdmin)
}
