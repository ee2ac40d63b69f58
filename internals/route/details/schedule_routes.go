package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "coachdesk_backend/internals/features/schedule/attendance/controller"
	sessionController "coachdesk_backend/internals/features/schedule/sessions/controller"
)

// ScheduleUserRoutes — session planning and attendance marking
func ScheduleUserRoutes(private fiber.Router, db *gorm.DB) {
	sessionCtrl := sessionController.NewSessionController(db)
	attendanceCtrl := attendanceController.NewAttendanceController(db)
	templateCtrl := sessionController.NewTemplateController(db)

	sessions := private.Group("/sessions")
	sessions.Post("/", sessionCtrl.Create)
	sessions.Get("/", sessionCtrl.List)
	sessions.Get("/:id", sessionCtrl.GetByID)
	sessions.Patch("/:id", sessionCtrl.Update)
	sessions.Delete("/:id", sessionCtrl.Delete)
	sessions.Post("/:id/roster", sessionCtrl.AddRoster)

	attendance := private.Group("/attendance")
	attendance.Post("/", attendanceCtrl.Create)
	attendance.Get("/", attendanceCtrl.List)
	attendance.Patch("/:id", attendanceCtrl.Update)
	attendance.Delete("/:id", attendanceCtrl.Delete)

	templates := private.Group("/session-templates")
	templates.Get("/", templateCtrl.List)
}

// ScheduleAdminRoutes — recurring templates, admin only
func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	templateCtrl := sessionController.NewTemplateController(db)

	templates := admin.Group("/session-templates")
	templates.Post("/", templateCtrl.Create)
	templates.Patch("/:id/deactivate", templateCtrl.Deactivate)
	templates.Post("/generate", templateCtrl.Generate)
}
