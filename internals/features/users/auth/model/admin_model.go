package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`

	AdminName     string `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminEmail    string `gorm:"column:admin_email;type:varchar(255);not null;uniqueIndex" json:"admin_email"`
	AdminPassword string `gorm:"column:admin_password;type:text;not null" json:"-"`
	AdminPhone    string `gorm:"column:admin_phone;type:varchar(20);not null;uniqueIndex" json:"admin_phone"`
	AdminAddress  string `gorm:"column:admin_address;type:text" json:"admin_address"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

func (AdminModel) TableName() string { return "admins" }
