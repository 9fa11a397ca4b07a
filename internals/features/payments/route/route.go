package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payCtl "listrikku_backend/internals/features/payments/controller"
)

// Authenticated payment endpoints (customer or admin)
func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := payCtl.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/", ctl.Create)            // POST /api/u/payments
	payments.Post("/initiate", ctl.Initiate)  // POST /api/u/payments/initiate
}

// Public gateway webhook (path is auth-skipped)
func PaymentWebhookRoutes(app *fiber.App, db *gorm.DB) {
	ctl := payCtl.NewPaymentController(db)

	app.Post("/api/payments/notification", ctl.Webhook)
}
