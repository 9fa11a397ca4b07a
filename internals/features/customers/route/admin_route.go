package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerCtl "listrikku_backend/internals/features/customers/controller"
)

func CustomerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := customerCtl.NewCustomerController(db)

	customers := r.Group("/customers")
	customers.Get("/", ctl.List)       // GET /api/a/customers
	customers.Get("/:id", ctl.GetByID) // GET /api/a/customers/:id
}
