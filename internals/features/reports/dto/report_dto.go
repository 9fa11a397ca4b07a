package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	ReportCustomers = "customers"
	ReportBills     = "bills"
	ReportUnits     = "units"

	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

type ReportQuery struct {
	ReportType string
	Format     string
	StartDate  *time.Time
	EndDate    *time.Time
	CustomerID *uuid.UUID
}

// ParseReportQuery reads ?report_type=&format=&start_date=&end_date=&customer_id=
func ParseReportQuery(c *fiber.Ctx) (ReportQuery, error) {
	q := ReportQuery{
		ReportType: strings.ToLower(strings.TrimSpace(c.Query("report_type"))),
		Format:     strings.ToLower(strings.TrimSpace(c.Query("format", FormatCSV))),
	}

	switch q.ReportType {
	case ReportCustomers, ReportBills, ReportUnits:
	default:
		return q, fmt.Errorf("report_type must be one of customers, bills, units")
	}
	switch q.Format {
	case FormatCSV, FormatPDF, FormatXLSX:
	default:
		return q, fmt.Errorf("format must be one of csv, pdf, xlsx")
	}

	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return q, fmt.Errorf("start_date must be YYYY-MM-DD")
		}
		q.StartDate = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return q, fmt.Errorf("end_date must be YYYY-MM-DD")
		}
		// inclusive end of day
		t = t.Add(24*time.Hour - time.Nanosecond)
		q.EndDate = &t
	}
	if s := c.Query("customer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return q, fmt.Errorf("customer_id must be a UUID")
		}
		q.CustomerID = &id
	}

	return q, nil
}
