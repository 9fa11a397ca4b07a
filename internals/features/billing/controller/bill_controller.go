package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "listrikku_backend/internals/features/billing/model"
	helper "listrikku_backend/internals/helpers"
)

type BillController struct {
	DB *gorm.DB
}

func NewBillController(db *gorm.DB) *BillController {
	return &BillController{DB: db}
}

/* ======================== MY BILLS ======================== */
// GET /api/u/bills?is_paid=&page=&limit=
func (h *BillController) ListMine(c *fiber.Ctx) error {
	customerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	return h.list(c, &customerID)
}

/* ======================== ALL BILLS ======================== */
// GET /api/a/bills?customer_id=&is_paid=&page=&limit=
func (h *BillController) ListAll(c *fiber.Ctx) error {
	var customerID *uuid.UUID
	if s := c.Query("customer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid customer_id")
		}
		customerID = &id
	}
	return h.list(c, customerID)
}

/* ======================== DETAIL ======================== */
// GET /api/u/bills/:id (owner or admin)
func (h *BillController) GetByID(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	idStr := c.Params("id")
	var row model.BillModel
	if err := h.DB.First(&row, "bill_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Bill not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if !helper.IsAdmin(c) && row.BillCustomerID != callerID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not your bill")
	}

	return helper.JsonOK(c, "OK", row)
}

func (h *BillController) list(c *fiber.Ctx, customerID *uuid.UUID) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.BillModel{})
	if customerID != nil {
		base = base.Where("bill_customer_id = ?", *customerID)
	}
	if s := c.Query("is_paid"); s != "" {
		paid, err := strconv.ParseBool(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid is_paid")
		}
		base = base.Where("bill_is_paid = ?", paid)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.BillModel
	if err := base.
		Order("bill_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
