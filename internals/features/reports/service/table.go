package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	billModel "listrikku_backend/internals/features/billing/model"
	customerModel "listrikku_backend/internals/features/customers/model"
	meteringModel "listrikku_backend/internals/features/metering/model"
	"listrikku_backend/internals/features/reports/dto"
)

// ErrNoData: empty result set → 404, never an empty file.
var ErrNoData = errors.New("no data for the given filters")

// Table is the renderer-independent shape every report reduces to.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// BuildTable fetches and shapes the rows for the requested report.
func BuildTable(db *gorm.DB, q dto.ReportQuery) (Table, error) {
	switch q.ReportType {
	case dto.ReportCustomers:
		return customerTable(db, q)
	case dto.ReportBills:
		return billTable(db, q)
	case dto.ReportUnits:
		return unitsTable(db, q)
	default:
		return Table{}, fmt.Errorf("unknown report type %q", q.ReportType)
	}
}

func customerTable(db *gorm.DB, q dto.ReportQuery) (Table, error) {
	base := db.Model(&customerModel.CustomerModel{})
	if q.StartDate != nil {
		base = base.Where("customer_created_at >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		base = base.Where("customer_created_at <= ?", *q.EndDate)
	}
	if q.CustomerID != nil {
		base = base.Where("customer_id = ?", *q.CustomerID)
	}

	var rows []customerModel.CustomerModel
	if err := base.Order("customer_created_at").Find(&rows).Error; err != nil {
		return Table{}, err
	}
	if len(rows) == 0 {
		return Table{}, ErrNoData
	}

	t := Table{
		Title:   "Customers",
		Headers: []string{"Name", "Email", "Phone", "Address", "Registered"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.CustomerName,
			r.CustomerEmail,
			r.CustomerPhone,
			r.CustomerAddress,
			formatDate(r.CustomerCreatedAt),
		})
	}
	return t, nil
}

type billRow struct {
	billModel.BillModel
	CustomerName         string
	ReadingMonth         string
	ReadingUnitsConsumed float64
}

func billTable(db *gorm.DB, q dto.ReportQuery) (Table, error) {
	base := db.Model(&billModel.BillModel{}).
		Select(`bills.*, customers.customer_name, readings.reading_month, readings.reading_units_consumed`).
		Joins(`JOIN customers ON customers.customer_id = bills.bill_customer_id`).
		Joins(`JOIN readings ON readings.reading_id = bills.bill_reading_id`)
	if q.StartDate != nil {
		base = base.Where("bills.bill_created_at >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		base = base.Where("bills.bill_created_at <= ?", *q.EndDate)
	}
	if q.CustomerID != nil {
		base = base.Where("bills.bill_customer_id = ?", *q.CustomerID)
	}

	var rows []billRow
	if err := base.Order("bills.bill_created_at").Scan(&rows).Error; err != nil {
		return Table{}, err
	}
	if len(rows) == 0 {
		return Table{}, ErrNoData
	}

	t := Table{
		Title:   "Bills",
		Headers: []string{"Customer", "Period", "Units", "Amount", "Due Date", "Paid", "Created"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.CustomerName,
			r.ReadingMonth,
			fmt.Sprintf("%.2f", r.ReadingUnitsConsumed),
			formatCurrency(r.BillAmount),
			formatDate(r.BillDueDate),
			formatBool(r.BillIsPaid),
			formatDate(r.BillCreatedAt),
		})
	}
	return t, nil
}

type unitsRow struct {
	meteringModel.ReadingModel
	ConnectionMeterNumber string
	ConnectionType        string
	CustomerName          string
}

func unitsTable(db *gorm.DB, q dto.ReportQuery) (Table, error) {
	base := db.Model(&meteringModel.ReadingModel{}).
		Select(`readings.*, connections.connection_meter_number, connections.connection_type, customers.customer_name`).
		Joins(`JOIN connections ON connections.connection_id = readings.reading_connection_id`).
		Joins(`JOIN customers ON customers.customer_id = connections.connection_customer_id`)
	if q.StartDate != nil {
		base = base.Where("readings.reading_created_at >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		base = base.Where("readings.reading_created_at <= ?", *q.EndDate)
	}
	if q.CustomerID != nil {
		base = base.Where("connections.connection_customer_id = ?", *q.CustomerID)
	}

	var rows []unitsRow
	if err := base.Order("readings.reading_created_at").Scan(&rows).Error; err != nil {
		return Table{}, err
	}
	if len(rows) == 0 {
		return Table{}, ErrNoData
	}

	t := Table{
		Title:   "Units Consumed",
		Headers: []string{"Customer", "Meter", "Type", "Period", "Previous", "Current", "Consumed", "Recorded"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.CustomerName,
			r.ConnectionMeterNumber,
			r.ConnectionType,
			r.ReadingMonth,
			fmt.Sprintf("%.2f", r.ReadingPreviousUnit),
			fmt.Sprintf("%.2f", r.ReadingCurrentUnit),
			fmt.Sprintf("%.2f", r.ReadingUnitsConsumed),
			formatDate(r.ReadingCreatedAt),
		})
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

func formatCurrency(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
