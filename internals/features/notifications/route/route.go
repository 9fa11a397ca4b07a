package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtl "listrikku_backend/internals/features/notifications/controller"
)

func NotificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notifCtl.NewNotificationController(db)

	r.Post("/notifications", ctl.Send) // POST /api/a/notifications
}

func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notifCtl.NewNotificationController(db)

	r.Get("/notifications", ctl.ListMine) // GET /api/u/notifications
}
