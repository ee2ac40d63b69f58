package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "coachdesk_backend/internals/features/finance/payments/controller"
)

// PaymentWebhookRoutes — Midtrans notification endpoint, public but
// signature-verified inside the handler
func PaymentWebhookRoutes(public fiber.Router, db *gorm.DB) {
	webhookCtrl := paymentController.NewWebhookController(db)

	public.Post("/payments/notification", webhookCtrl.HandleNotification)
}

// FinanceUserRoutes — installments and checkout for all staff
func FinanceUserRoutes(private fiber.Router, db *gorm.DB) {
	paymentCtrl := paymentController.NewPaymentController(db)

	payments := private.Group("/payments")
	payments.Post("/", paymentCtrl.Create)
	payments.Get("/", paymentCtrl.List)
	payments.Get("/summary/:player_id", paymentCtrl.Summary)
	payments.Post("/checkout", paymentCtrl.Checkout)
}

// FinanceAdminRoutes — deletion and bookkeeping export
func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	paymentCtrl := paymentController.NewPaymentController(db)
	exportCtrl := paymentController.NewExportController(db)

	payments := admin.Group("/payments")
	payments.Delete("/:id", paymentCtrl.Delete)
	payments.Get("/export.csv", exportCtrl.ExportCSV)
}
