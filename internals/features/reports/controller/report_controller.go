package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"listrikku_backend/internals/features/reports/dto"
	"listrikku_backend/internals/features/reports/service"
	helper "listrikku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

/* ======================= EXPORT ======================= */
// GET /api/a/reports?report_type=&format=&start_date=&end_date=&customer_id=
func (h *ReportController) Export(c *fiber.Ctx) error {
	q, err := dto.ParseReportQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	table, err := service.BuildTable(h.DB, q)
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	var (
		body        []byte
		contentType string
		ext         string
	)
	switch q.Format {
	case dto.FormatCSV:
		body, err = service.RenderCSV(table)
		contentType = "text/csv"
		ext = "csv"
	case dto.FormatPDF:
		body, err = service.RenderPDF(table)
		contentType = "application/pdf"
		ext = "pdf"
	case dto.FormatXLSX:
		body, err = service.RenderXLSX(table)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		ext = "xlsx"
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render report")
	}

	filename := fmt.Sprintf("%s-report-%s.%s", q.ReportType, time.Now().Format("20060102-150405"), ext)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(body)
}
