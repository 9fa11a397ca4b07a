package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtl "listrikku_backend/internals/features/reports/controller"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportCtl.NewReportController(db)

	r.Get("/reports", ctl.Export) // GET /api/a/reports
}
