package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	meteringCtl "listrikku_backend/internals/features/metering/controller"
)

func MeterReadingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := meteringCtl.NewReadingController(db)

	readings := r.Group("/meter-readings")

	readings.Post("/", ctl.Create)           // POST /api/a/meter-readings
	readings.Get("/:meterId", ctl.History)   // GET  /api/a/meter-readings/:meterId
}
