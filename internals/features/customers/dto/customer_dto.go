package dto

import (
	"time"

	"github.com/google/uuid"

	connDto "listrikku_backend/internals/features/connections/dto"
	m "listrikku_backend/internals/features/customers/model"
)

/* =============== RESPONSES =============== */

type CustomerResponse struct {
	CustomerID      uuid.UUID `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerAddress string    `json:"customer_address"`

	CustomerCreatedAt time.Time `json:"customer_created_at"`
}

type CustomerDetailResponse struct {
	CustomerResponse
	Connection *connDto.ConnectionResponse `json:"connection,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.CustomerModel) CustomerResponse {
	return CustomerResponse{
		CustomerID:        x.CustomerID,
		CustomerName:      x.CustomerName,
		CustomerEmail:     x.CustomerEmail,
		CustomerPhone:     x.CustomerPhone,
		CustomerAddress:   x.CustomerAddress,
		CustomerCreatedAt: x.CustomerCreatedAt,
	}
}

func FromModels(list []m.CustomerModel) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
