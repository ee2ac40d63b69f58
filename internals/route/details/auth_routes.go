package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "coachdesk_backend/internals/features/users/controller"
	middlewares "coachdesk_backend/internals/middlewares"
)

// AuthRoutes — public login, throttled hard
func AuthRoutes(public fiber.Router, db *gorm.DB) {
	authCtrl := userController.NewAuthController(db)

	auth := public.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
}
