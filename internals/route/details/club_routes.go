package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchController "coachdesk_backend/internals/features/club/branches/controller"
	coachController "coachdesk_backend/internals/features/club/coaches/controller"
)

// ClubUserRoutes — read access for all staff
func ClubUserRoutes(private fiber.Router, db *gorm.DB) {
	branchCtrl := branchController.NewBranchController(db)
	coachCtrl := coachController.NewCoachController(db)

	branches := private.Group("/branches")
	branches.Get("/", branchCtrl.List)
	branches.Get("/:id", branchCtrl.GetByID)

	coaches := private.Group("/coaches")
	coaches.Get("/", coachCtrl.List)
	coaches.Get("/:id", coachCtrl.GetByID)
}

// ClubAdminRoutes — branch/coach management, admin only
func ClubAdminRoutes(admin fiber.Router, db *gorm.DB) {
	branchCtrl := branchController.NewBranchController(db)
	coachCtrl := coachController.NewCoachController(db)

	branches := admin.Group("/branches")
	branches.Post("/", branchCtrl.Create)
	branches.Patch("/:id", branchCtrl.Update)
	branches.Delete("/:id", branchCtrl.Delete)

	coaches := admin.Group("/coaches")
	coaches.Post("/", coachCtrl.Create)
	coaches.Patch("/:id", coachCtrl.Update)
	coaches.Delete("/:id", coachCtrl.Delete)
}
