package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Append-only log. Rows are written as side effects of other operations and
// mirrored to an outbound email.
type NotificationModel struct {
	NotificationID uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`

	NotificationCustomerID uuid.UUID `gorm:"column:notification_customer_id;type:uuid;not null;index" json:"notification_customer_id"`

	NotificationTitle   string `gorm:"column:notification_title;type:varchar(150);not null" json:"notification_title"`
	NotificationMessage string `gorm:"column:notification_message;type:text;not null" json:"notification_message"`

	NotificationMetadata datatypes.JSONMap `gorm:"column:notification_metadata;type:jsonb" json:"notification_metadata,omitempty"`

	NotificationSentAt time.Time `gorm:"column:notification_sent_at;autoCreateTime" json:"notification_sent_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
