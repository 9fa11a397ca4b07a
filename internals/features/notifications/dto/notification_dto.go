package dto

import (
	"github.com/google/uuid"
)

type SendNotificationRequest struct {
	CustomerID uuid.UUID `json:"customer_id" validate:"required"`
	Title      string    `json:"title"       validate:"required,min=3,max=150"`
	Message    string    `json:"message"     validate:"required,min=3"`
}
