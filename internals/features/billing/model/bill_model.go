package model

import (
	"time"

	"github.com/google/uuid"
)

type BillModel struct {
	BillID uuid.UUID `gorm:"column:bill_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bill_id"`

	BillCustomerID uuid.UUID `gorm:"column:bill_customer_id;type:uuid;not null;index" json:"bill_customer_id"`

	// One bill per reading
	BillReadingID uuid.UUID `gorm:"column:bill_reading_id;type:uuid;not null;uniqueIndex" json:"bill_reading_id"`

	BillAmount  float64   `gorm:"column:bill_amount;type:numeric(12,2);not null" json:"bill_amount"`
	BillDueDate time.Time `gorm:"column:bill_due_date;type:date;not null" json:"bill_due_date"`
	BillIsPaid  bool      `gorm:"column:bill_is_paid;not null;default:false" json:"bill_is_paid"`

	BillCreatedAt time.Time `gorm:"column:bill_created_at;autoCreateTime" json:"bill_created_at"`
}

func (BillModel) TableName() string { return "bills" }
