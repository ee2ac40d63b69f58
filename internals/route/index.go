// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coachdesk_backend/internals/constants"
	authMiddleware "coachdesk_backend/internals/middlewares/auth"
	routeDetails "coachdesk_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	// login + payment-gateway webhook, no JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/p")
	routeDetails.AuthRoutes(public, db)
	routeDetails.PaymentWebhookRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	// any authenticated staff member (coach or admin)
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	routeDetails.ClubUserRoutes(private, db)
	routeDetails.PlayerUserRoutes(private, db)
	routeDetails.ScheduleUserRoutes(private, db)
	routeDetails.FinanceUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("administration"), constants.RoleAdmin),
	)
	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.ClubAdminRoutes(admin, db)
	routeDetails.PlayerAdminRoutes(admin, db)
	routeDetails.ScheduleAdminRoutes(admin, db)
	routeDetails.FinanceAdminRoutes(admin, db)
}
