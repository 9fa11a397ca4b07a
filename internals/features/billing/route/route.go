package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billCtl "listrikku_backend/internals/features/billing/controller"
)

// Customer-facing bill views
func BillUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billCtl.NewBillController(db)

	bills := r.Group("/bills")
	bills.Get("/", ctl.ListMine)    // GET /api/u/bills
	bills.Get("/:id", ctl.GetByID)  // GET /api/u/bills/:id
}

// Admin bill views
func BillAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billCtl.NewBillController(db)

	bills := r.Group("/bills")
	bills.Get("/", ctl.ListAll)     // GET /api/a/bills
}
