package model

import (
	"time"

	"github.com/google/uuid"
)

type ReadingModel struct {
	ReadingID uuid.UUID `gorm:"column:reading_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reading_id"`

	ReadingConnectionID uuid.UUID `gorm:"column:reading_connection_id;type:uuid;not null;index" json:"reading_connection_id"`

	// Billing period, "YYYY-MM"
	ReadingMonth string `gorm:"column:reading_month;type:varchar(7);not null" json:"reading_month"`

	ReadingPreviousUnit  float64 `gorm:"column:reading_previous_unit;type:numeric(12,2);not null" json:"reading_previous_unit"`
	ReadingCurrentUnit   float64 `gorm:"column:reading_current_unit;type:numeric(12,2);not null" json:"reading_current_unit"`
	ReadingUnitsConsumed float64 `gorm:"column:reading_units_consumed;type:numeric(12,2);not null" json:"reading_units_consumed"`

	ReadingCreatedAt time.Time `gorm:"column:reading_created_at;autoCreateTime" json:"reading_created_at"`
}

func (ReadingModel) TableName() string { return "readings" }
