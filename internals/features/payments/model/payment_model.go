package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodOnline   = "online"
)

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentCustomerID uuid.UUID `gorm:"column:payment_customer_id;type:uuid;not null;index" json:"payment_customer_id"`

	// One payment per bill
	PaymentBillID uuid.UUID `gorm:"column:payment_bill_id;type:uuid;not null;uniqueIndex" json:"payment_bill_id"`

	PaymentAmount float64 `gorm:"column:payment_amount;type:numeric(12,2);not null" json:"payment_amount"`
	PaymentMethod string  `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`

	// Midtrans order id + snap token, online method only
	PaymentOrderID   *string `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex" json:"payment_order_id,omitempty"`
	PaymentSnapToken *string `gorm:"column:payment_snap_token;type:text" json:"payment_snap_token,omitempty"`

	PaymentPaidAt time.Time `gorm:"column:payment_paid_at;autoCreateTime" json:"payment_paid_at"`
}

func (PaymentModel) TableName() string { return "payments" }

func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodOnline:
		return true
	}
	return false
}
