package dto

import (
	"time"

	"github.com/google/uuid"

	billModel "listrikku_backend/internals/features/billing/model"
	m "listrikku_backend/internals/features/metering/model"
)

/* =============== REQUESTS =============== */

// Create (admin submits the meter value for a period)
type CreateReadingRequest struct {
	MeterNumber string   `json:"meter_number" validate:"required,min=3,max=30"`
	Month       string   `json:"month"        validate:"required,datetime=2006-01"`
	CurrentUnit *float64 `json:"current_unit" validate:"required,gte=0"`
}

/* =============== RESPONSES =============== */

type ReadingResponse struct {
	ReadingID           uuid.UUID `json:"reading_id"`
	ReadingConnectionID uuid.UUID `json:"reading_connection_id"`

	ReadingMonth string `json:"reading_month"`

	ReadingPreviousUnit  float64 `json:"reading_previous_unit"`
	ReadingCurrentUnit   float64 `json:"reading_current_unit"`
	ReadingUnitsConsumed float64 `json:"reading_units_consumed"`

	ReadingCreatedAt time.Time `json:"reading_created_at"`
}

type ReadingWithBillResponse struct {
	Reading ReadingResponse       `json:"reading"`
	Bill    *billModel.BillModel  `json:"bill,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.ReadingModel) ReadingResponse {
	return ReadingResponse{
		ReadingID:            x.ReadingID,
		ReadingConnectionID:  x.ReadingConnectionID,
		ReadingMonth:         x.ReadingMonth,
		ReadingPreviousUnit:  x.ReadingPreviousUnit,
		ReadingCurrentUnit:   x.ReadingCurrentUnit,
		ReadingUnitsConsumed: x.ReadingUnitsConsumed,
		ReadingCreatedAt:     x.ReadingCreatedAt,
	}
}
