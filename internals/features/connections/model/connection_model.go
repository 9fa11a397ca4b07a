package model

import (
	"time"

	"github.com/google/uuid"
)

// Tariff categories driving the consumption-charge table.
const (
	ConnectionTypeDomestic   = "domestic"
	ConnectionTypeCommercial = "commercial"
	ConnectionTypeIndustrial = "industrial"
)

type ConnectionModel struct {
	ConnectionID uuid.UUID `gorm:"column:connection_id;type:uuid;default:gen_random_uuid();primaryKey" json:"connection_id"`

	ConnectionMeterNumber string `gorm:"column:connection_meter_number;type:varchar(30);not null;uniqueIndex" json:"connection_meter_number"`
	ConnectionType        string `gorm:"column:connection_type;type:varchar(20);not null" json:"connection_type"`

	// One connection per customer, enforced by the constraint rather than a
	// pre-insert check alone.
	ConnectionCustomerID uuid.UUID `gorm:"column:connection_customer_id;type:uuid;not null;uniqueIndex" json:"connection_customer_id"`

	ConnectionIsActive bool `gorm:"column:connection_is_active;not null;default:true" json:"connection_is_active"`

	ConnectionCreatedAt time.Time `gorm:"column:connection_created_at;autoCreateTime" json:"connection_created_at"`
}

func (ConnectionModel) TableName() string { return "connections" }

func IsValidConnectionType(t string) bool {
	switch t {
	case ConnectionTypeDomestic, ConnectionTypeCommercial, ConnectionTypeIndustrial:
		return true
	}
	return false
}
