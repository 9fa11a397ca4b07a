package model

import (
	"time"

	"github.com/google/uuid"
)

type CustomerModel struct {
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"customer_id"`

	CustomerName     string `gorm:"column:customer_name;type:varchar(100);not null" json:"customer_name"`
	CustomerEmail    string `gorm:"column:customer_email;type:varchar(255);not null;uniqueIndex" json:"customer_email"`
	CustomerPhone    string `gorm:"column:customer_phone;type:varchar(20);not null" json:"customer_phone"`
	CustomerAddress  string `gorm:"column:customer_address;type:text" json:"customer_address"`
	CustomerPassword string `gorm:"column:customer_password;type:text;not null" json:"-"`

	CustomerCreatedAt time.Time `gorm:"column:customer_created_at;autoCreateTime" json:"customer_created_at"`
}

func (CustomerModel) TableName() string { return "customers" }
