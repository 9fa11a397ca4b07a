package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerModel "listrikku_backend/internals/features/customers/model"
	dto "listrikku_backend/internals/features/notifications/dto"
	model "listrikku_backend/internals/features/notifications/model"
	"listrikku_backend/internals/features/notifications/service"
	helper "listrikku_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, validate: validator.New()}
}

/* ======================= SEND ======================= */
// POST /api/a/notifications — ad-hoc send by an admin
func (h *NotificationController) Send(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var cust customerModel.CustomerModel
	if err := h.DB.First(&cust, "customer_id = ?", req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Customer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := service.Notify(h.DB, cust.CustomerID, req.Title, req.Message, nil); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send notification")
	}

	return helper.JsonCreated(c, "Notification sent", nil)
}

/* ======================= MINE ======================= */
// GET /api/u/notifications?page=&limit=
func (h *NotificationController) ListMine(c *fiber.Ctx) error {
	customerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.NotificationModel{}).
		Where("notification_customer_id = ?", customerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.NotificationModel
	if err := base.
		Order("notification_sent_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
