package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billModel "listrikku_backend/internals/features/billing/model"
	connModel "listrikku_backend/internals/features/connections/model"
	dto "listrikku_backend/internals/features/metering/dto"
	model "listrikku_backend/internals/features/metering/model"
	"listrikku_backend/internals/features/metering/service"
	notifService "listrikku_backend/internals/features/notifications/service"
	helper "listrikku_backend/internals/helpers"
)

type ReadingController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewReadingController(db *gorm.DB) *ReadingController {
	return &ReadingController{DB: db, validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/meter-readings
func (h *ReadingController) Create(c *fiber.Ctx) error {
	var req dto.CreateReadingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var conn connModel.ConnectionModel
	if err := h.DB.First(&conn, "connection_meter_number = ?", req.MeterNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Meter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !conn.ConnectionIsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "Connection is inactive")
	}

	// previous = latest reading of this connection, 0 when none
	previous := 0.0
	var last model.ReadingModel
	err := h.DB.
		Where("reading_connection_id = ?", conn.ConnectionID).
		Order("reading_created_at DESC").
		First(&last).Error
	switch {
	case err == nil:
		previous = last.ReadingCurrentUnit
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first reading for this meter
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	consumed, err := service.ValidateUnits(previous, *req.CurrentUnit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	amount, err := service.BillAmount(consumed, conn.ConnectionType)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	reading := model.ReadingModel{
		ReadingConnectionID:  conn.ConnectionID,
		ReadingMonth:         req.Month,
		ReadingPreviousUnit:  previous,
		ReadingCurrentUnit:   *req.CurrentUnit,
		ReadingUnitsConsumed: consumed,
	}
	var bill billModel.BillModel

	// Reading and its bill land together or not at all.
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reading).Error; err != nil {
			return err
		}
		bill = billModel.BillModel{
			BillCustomerID: conn.ConnectionCustomerID,
			BillReadingID:  reading.ReadingID,
			BillAmount:     amount,
			BillDueDate:    service.DueDate(reading.ReadingCreatedAt),
		}
		return tx.Create(&bill).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record reading")
	}

	_ = notifService.Notify(h.DB, conn.ConnectionCustomerID,
		"New electricity bill",
		fmt.Sprintf("Meter %s, period %s: %.2f units consumed, amount due %.2f by %s.",
			conn.ConnectionMeterNumber, req.Month, consumed, amount,
			bill.BillDueDate.Format("2006-01-02")),
		map[string]interface{}{
			"bill_id":    bill.BillID.String(),
			"reading_id": reading.ReadingID.String(),
			"amount":     amount,
		})

	return helper.JsonCreated(c, "Reading recorded & bill generated", dto.ReadingWithBillResponse{
		Reading: dto.FromModel(reading),
		Bill:    &bill,
	})
}

/* ======================== HISTORY ======================== */
// GET /api/a/meter-readings/:meterId?page=&limit=
func (h *ReadingController) History(c *fiber.Ctx) error {
	meter := c.Params("meterId")
	if meter == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Meter number must not be empty")
	}

	var conn connModel.ConnectionModel
	if err := h.DB.First(&conn, "connection_meter_number = ?", meter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Meter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ReadingModel{}).
		Where("reading_connection_id = ?", conn.ConnectionID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.ReadingModel
	if err := base.
		Order("reading_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	// attach bills in one query
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ReadingID)
	}
	billByReading := map[uuid.UUID]billModel.BillModel{}
	if len(ids) > 0 {
		var bills []billModel.BillModel
		if err := h.DB.Where("bill_reading_id IN ?", ids).Find(&bills).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		for _, b := range bills {
			billByReading[b.BillReadingID] = b
		}
	}

	items := make([]dto.ReadingWithBillResponse, 0, len(rows))
	for _, r := range rows {
		item := dto.ReadingWithBillResponse{Reading: dto.FromModel(r)}
		if b, ok := billByReading[r.ReadingID]; ok {
			bill := b
			item.Bill = &bill
		}
		items = append(items, item)
	}

	return helper.JsonList(c, "OK", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
