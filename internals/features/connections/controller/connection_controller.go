package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billModel "listrikku_backend/internals/features/billing/model"
	dto "listrikku_backend/internals/features/connections/dto"
	model "listrikku_backend/internals/features/connections/model"
	"listrikku_backend/internals/features/connections/service"
	customerModel "listrikku_backend/internals/features/customers/model"
	notifService "listrikku_backend/internals/features/notifications/service"
	helper "listrikku_backend/internals/helpers"
)

type ConnectionController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewConnectionController(db *gorm.DB) *ConnectionController {
	return &ConnectionController{DB: db, validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/connections
func (h *ConnectionController) Create(c *fiber.Ctx) error {
	var req dto.CreateConnectionRequest
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

	// Friendly pre-check; the unique index on customer_id is what actually
	// closes the race.
	var existing int64
	if err := h.DB.Model(&model.ConnectionModel{}).
		Where("connection_customer_id = ?", req.CustomerID).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Customer already has a connection")
	}

	row := model.ConnectionModel{
		ConnectionMeterNumber: service.NewMeterNumber(),
		ConnectionType:        req.ConnectionType,
		ConnectionCustomerID:  req.CustomerID,
		ConnectionIsActive:    true,
	}
	if err := h.DB.Create(&row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Customer already has a connection")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create connection")
	}

	_ = notifService.Notify(h.DB, cust.CustomerID,
		"Connection provisioned",
		fmt.Sprintf("A %s electricity connection with meter %s is now active on your account.",
			row.ConnectionType, row.ConnectionMeterNumber),
		map[string]interface{}{"connection_id": row.ConnectionID.String()})

	return helper.JsonCreated(c, "Connection created", dto.FromModel(row))
}

/* ======================= UPDATE ======================= */
// PATCH /api/a/connections/:connectionId
func (h *ConnectionController) Update(c *fiber.Ctx) error {
	idStr := c.Params("connectionId")
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Connection ID must not be empty")
	}

	var req dto.UpdateConnectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.ConnectionType == nil && req.Status == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	var row model.ConnectionModel
	if err := h.DB.First(&row, "connection_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Connection not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update connection")
	}

	_ = notifService.Notify(h.DB, row.ConnectionCustomerID,
		"Connection updated",
		fmt.Sprintf("Your connection %s is now type %s (active: %t).",
			row.ConnectionMeterNumber, row.ConnectionType, row.ConnectionIsActive),
		map[string]interface{}{"connection_id": row.ConnectionID.String()})

	return helper.JsonUpdated(c, "Connection updated", dto.FromModel(row))
}

/* ===================== DEACTIVATE ===================== */
// POST /api/a/connections/:connectionId/deactivate
func (h *ConnectionController) Deactivate(c *fiber.Ctx) error {
	idStr := c.Params("connectionId")
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Connection ID must not be empty")
	}

	var row model.ConnectionModel
	if err := h.DB.First(&row, "connection_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Connection not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var pending int64
	if err := h.DB.Model(&billModel.BillModel{}).
		Where("bill_customer_id = ? AND bill_is_paid = false", row.ConnectionCustomerID).
		Count(&pending).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := service.CanDeactivate(row.ConnectionIsActive, pending); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row.ConnectionIsActive = false
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate connection")
	}

	_ = notifService.Notify(h.DB, row.ConnectionCustomerID,
		"Connection deactivated",
		fmt.Sprintf("Your connection %s has been deactivated.", row.ConnectionMeterNumber),
		map[string]interface{}{"connection_id": row.ConnectionID.String()})

	return helper.JsonUpdated(c, "Connection deactivated", dto.FromModel(row))
}

/* ==================== LIST BY CUSTOMER ==================== */
// GET /api/a/customers/:id/connections
func (h *ConnectionController) ListByCustomer(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Customer ID must not be empty")
	}

	var cust customerModel.CustomerModel
	if err := h.DB.First(&cust, "customer_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Customer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.ConnectionModel
	if err := h.DB.
		Where("connection_customer_id = ?", cust.CustomerID).
		Order("connection_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}
