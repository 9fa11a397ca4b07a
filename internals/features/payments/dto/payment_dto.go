package dto

import (
	"github.com/google/uuid"
)

/* =============== REQUESTS =============== */

type CreatePaymentRequest struct {
	BillID uuid.UUID `json:"bill_id" validate:"required"`
	Method string    `json:"method"  validate:"required,oneof=cash transfer online"`
	// Optional; when present it must equal the outstanding amount exactly.
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
}

type InitiatePaymentRequest struct {
	BillID uuid.UUID `json:"bill_id" validate:"required"`
}

// Midtrans HTTP notification payload (the fields we act on).
type GatewayNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount"`
}

/* =============== RESPONSES =============== */

type InitiatePaymentResponse struct {
	OrderID     string  `json:"order_id"`
	SnapToken   string  `json:"snap_token"`
	RedirectURL string  `json:"redirect_url"`
	Amount      float64 `json:"amount"`
}
