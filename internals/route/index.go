// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"listrikku_backend/internals/constants"
	billRoute "listrikku_backend/internals/features/billing/route"
	connRoute "listrikku_backend/internals/features/connections/route"
	customerRoute "listrikku_backend/internals/features/customers/route"
	meteringRoute "listrikku_backend/internals/features/metering/route"
	notifRoute "listrikku_backend/internals/features/notifications/route"
	payRoute "listrikku_backend/internals/features/payments/route"
	reportRoute "listrikku_backend/internals/features/reports/route"
	authRoute "listrikku_backend/internals/features/users/auth/route"
	mwAuth "listrikku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC (webhooks) =====================
	log.Println("[INFO] Setting up payment webhook...")
	payRoute.PaymentWebhookRoutes(app, db)

	// ===================== PRIVATE (customer or admin) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", mwAuth.AuthMiddleware())

	billRoute.BillUserRoutes(private, db)
	payRoute.PaymentRoutes(private, db)
	notifRoute.NotificationUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		mwAuth.AuthMiddleware(),
		mwAuth.OnlyRoles(constants.RoleErrorAdmin("back office"), constants.RoleAdmin),
	)

	customerRoute.CustomerAdminRoutes(admin, db)
	connRoute.ConnectionAdminRoutes(admin, db)
	meteringRoute.MeterReadingAdminRoutes(admin, db)
	billRoute.BillAdminRoutes(admin, db)
	notifRoute.NotificationAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)

	// uptime probe
	app.Get("/api/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"uptime": time.Since(startTime).String()})
	})
}
