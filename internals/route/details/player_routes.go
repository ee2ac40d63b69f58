package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	playerController "coachdesk_backend/internals/features/players/controller"
)

// PlayerUserRoutes — roster + ledger operations available to all staff
func PlayerUserRoutes(private fiber.Router, db *gorm.DB) {
	playerCtrl := playerController.NewPlayerController(db)
	packageCtrl := playerController.NewPackageController(db)

	players := private.Group("/players")
	players.Post("/", playerCtrl.Create)
	players.Get("/", playerCtrl.List)
	players.Get("/:id", playerCtrl.GetByID)
	players.Get("/:id/cycles", playerCtrl.Cycles)
	players.Patch("/:id", playerCtrl.Update)

	// package-cycle operations
	players.Post("/:id/package/renew", packageCtrl.Renew)
	players.Post("/:id/package/expire", packageCtrl.Expire)
	players.Post("/:id/package/retrieve", packageCtrl.Retrieve)
}

// PlayerAdminRoutes — destructive / quota-overriding operations
func PlayerAdminRoutes(admin fiber.Router, db *gorm.DB) {
	playerCtrl := playerController.NewPlayerController(db)
	packageCtrl := playerController.NewPackageController(db)

	players := admin.Group("/players")
	players.Delete("/:id", playerCtrl.Delete)
	players.Patch("/:id/package/sessions", packageCtrl.EditSessions)
}
