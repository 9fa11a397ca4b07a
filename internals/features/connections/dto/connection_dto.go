package dto

import (
	"time"

	"github.com/google/uuid"

	m "listrikku_backend/internals/features/connections/model"
)

/* =============== REQUESTS =============== */

type CreateConnectionRequest struct {
	CustomerID     uuid.UUID `json:"customer_id"     validate:"required"`
	ConnectionType string    `json:"connection_type" validate:"required,oneof=domestic commercial industrial"`
}

// Update (partial)
type UpdateConnectionRequest struct {
	ConnectionType *string `json:"type"   validate:"omitempty,oneof=domestic commercial industrial"`
	Status         *bool   `json:"status" validate:"omitempty"`
}

func (r UpdateConnectionRequest) ApplyTo(mo *m.ConnectionModel) {
	if r.ConnectionType != nil {
		mo.ConnectionType = *r.ConnectionType
	}
	if r.Status != nil {
		mo.ConnectionIsActive = *r.Status
	}
}

/* =============== RESPONSES =============== */

type ConnectionResponse struct {
	ConnectionID          uuid.UUID `json:"connection_id"`
	ConnectionMeterNumber string    `json:"connection_meter_number"`
	ConnectionType        string    `json:"connection_type"`
	ConnectionCustomerID  uuid.UUID `json:"connection_customer_id"`
	ConnectionIsActive    bool      `json:"connection_is_active"`
	ConnectionCreatedAt   time.Time `json:"connection_created_at"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.ConnectionModel) ConnectionResponse {
	return ConnectionResponse{
		ConnectionID:          x.ConnectionID,
		ConnectionMeterNumber: x.ConnectionMeterNumber,
		ConnectionType:        x.ConnectionType,
		ConnectionCustomerID:  x.ConnectionCustomerID,
		ConnectionIsActive:    x.ConnectionIsActive,
		ConnectionCreatedAt:   x.ConnectionCreatedAt,
	}
}

func FromModels(list []m.ConnectionModel) []ConnectionResponse {
	out := make([]ConnectionResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
