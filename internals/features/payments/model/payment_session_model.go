package model

import (
	"time"

	"github.com/google/uuid"
)

// Pending gateway checkouts. A Payment row is only written once the webhook
// confirms settlement.
type PaymentSessionModel struct {
	PaymentSessionID uuid.UUID `gorm:"column:payment_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_session_id"`

	PaymentSessionOrderID   string    `gorm:"column:payment_session_order_id;type:varchar(64);not null;uniqueIndex" json:"payment_session_order_id"`
	PaymentSessionBillID    uuid.UUID `gorm:"column:payment_session_bill_id;type:uuid;not null;index" json:"payment_session_bill_id"`
	PaymentSessionSnapToken string    `gorm:"column:payment_session_snap_token;type:text;not null" json:"payment_session_snap_token"`

	PaymentSessionCreatedAt time.Time `gorm:"column:payment_session_created_at;autoCreateTime" json:"payment_session_created_at"`
}

func (PaymentSessionModel) TableName() string { return "payment_sessions" }
