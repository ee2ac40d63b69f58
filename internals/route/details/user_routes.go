package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "coachdesk_backend/internals/features/users/controller"
	middlewares "coachdesk_backend/internals/middlewares"
)

// UserAdminRoutes — staff account provisioning, admin only
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	users := admin.Group("/users")
	users.Post("/", middlewares.ProvisionRateLimiter(), userCtrl.Create)
	users.Get("/", userCtrl.List)
	users.Patch("/:id/deactivate", userCtrl.Deactivate)
}
