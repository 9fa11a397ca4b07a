package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	customerModel "listrikku_backend/internals/features/customers/model"
	"listrikku_backend/internals/features/notifications/model"
)

// Notify appends a notification row for the customer and mirrors it to email
// in the background. Email is best-effort: failures are logged, never
// surfaced to the caller. The row insert error is returned so callers can
// decide; all current callers also treat it as non-fatal.
func Notify(db *gorm.DB, customerID uuid.UUID, title, message string, metadata map[string]interface{}) error {
	row := model.NotificationModel{
		NotificationCustomerID: customerID,
		NotificationTitle:      title,
		NotificationMessage:    message,
	}
	if metadata != nil {
		row.NotificationMetadata = datatypes.JSONMap(metadata)
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("[NOTIF] insert failed for customer %s: %v", customerID, err)
		return err
	}

	go func() {
		var cust customerModel.CustomerModel
		if err := db.First(&cust, "customer_id = ?", customerID).Error; err != nil {
			log.Printf("[NOTIF] customer lookup for mail failed: %v", err)
			return
		}
		_ = SendEmail(cust.CustomerEmail, title, message)
	}()

	return nil
}
