package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	connDto "listrikku_backend/internals/features/connections/dto"
	connModel "listrikku_backend/internals/features/connections/model"
	dto "listrikku_backend/internals/features/customers/dto"
	model "listrikku_backend/internals/features/customers/model"
	helper "listrikku_backend/internals/helpers"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

/* ======================== LIST / SEARCH ======================== */
// GET /api/a/customers?q=&page=&limit=
func (h *CustomerController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.CustomerModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where(
			"customer_name ILIKE ? OR customer_email ILIKE ? OR customer_phone ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.CustomerModel
	if err := base.
		Order("customer_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== DETAIL ======================== */
// GET /api/a/customers/:id
func (h *CustomerController) GetByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if idStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Customer ID must not be empty")
	}

	var row model.CustomerModel
	if err := h.DB.First(&row, "customer_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Customer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	resp := dto.CustomerDetailResponse{CustomerResponse: dto.FromModel(row)}

	var conn connModel.ConnectionModel
	err := h.DB.First(&conn, "connection_customer_id = ?", row.CustomerID).Error
	switch {
	case err == nil:
		cr := connDto.FromModel(conn)
		resp.Connection = &cr
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no connection yet
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", resp)
}
