package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	connCtl "listrikku_backend/internals/features/connections/controller"
)

func ConnectionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := connCtl.NewConnectionController(db)

	conns := r.Group("/connections")
	conns.Post("/", ctl.Create)                              // POST  /api/a/connections
	conns.Patch("/:connectionId", ctl.Update)                // PATCH /api/a/connections/:connectionId
	conns.Post("/:connectionId/deactivate", ctl.Deactivate)  // POST  /api/a/connections/:connectionId/deactivate

	r.Get("/customers/:id/connections", ctl.ListByCustomer)  // GET   /api/a/customers/:id/connections
}
