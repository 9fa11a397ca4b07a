package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billModel "listrikku_backend/internals/features/billing/model"
	customerModel "listrikku_backend/internals/features/customers/model"
	notifService "listrikku_backend/internals/features/notifications/service"
	dto "listrikku_backend/internals/features/payments/dto"
	model "listrikku_backend/internals/features/payments/model"
	"listrikku_backend/internals/features/payments/service"
	helper "listrikku_backend/internals/helpers"
)

type PaymentController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/u/payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var bill billModel.BillModel
	if err := h.DB.First(&bill, "bill_id = ?", req.BillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Bill not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := service.AuthorizeSettlement(bill, callerID, role, req.Amount); err != nil {
		switch err.(type) {
		case service.ErrNotOwner:
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	payment, err := h.settle(bill, req.Method, nil, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helper.JsonCreated(c, "Payment recorded", payment)
}

/* ====================== INITIATE ====================== */
// POST /api/u/payments/initiate — Midtrans Snap checkout for a bill
func (h *PaymentController) Initiate(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var req dto.InitiatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var bill billModel.BillModel
	if err := h.DB.First(&bill, "bill_id = ?", req.BillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Bill not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := service.AuthorizeSettlement(bill, callerID, role, nil); err != nil {
		switch err.(type) {
		case service.ErrNotOwner:
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	var cust customerModel.CustomerModel
	if err := h.DB.First(&cust, "customer_id = ?", bill.BillCustomerID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	orderID := fmt.Sprintf("BILL-%s-%s", bill.BillID.String()[:8], uuid.NewString()[:8])
	token, redirectURL, err := service.GenerateSnapToken(orderID, bill, cust.CustomerName, cust.CustomerEmail)
	if err != nil {
		log.Println("[ERROR] snap token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment session")
	}

	session := model.PaymentSessionModel{
		PaymentSessionOrderID:   orderID,
		PaymentSessionBillID:    bill.BillID,
		PaymentSessionSnapToken: token,
	}
	if err := h.DB.Create(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store payment session")
	}

	return helper.JsonCreated(c, "Payment session created", dto.InitiatePaymentResponse{
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
		Amount:      bill.BillAmount,
	})
}

/* ====================== WEBHOOK ======================= */
// POST /api/payments/notification — called by Midtrans, auth-skipped path
func (h *PaymentController) Webhook(c *fiber.Ctx) error {
	var body dto.GatewayNotification
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if body.OrderID == "" || body.TransactionStatus == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	log.Printf("📄 gateway notification order=%s status=%s", body.OrderID, body.TransactionStatus)

	if !service.SettledStatus(body.TransactionStatus, body.FraudStatus) {
		// expire/cancel/pending: nothing to settle
		return helper.JsonOK(c, "Notification ignored", nil)
	}

	var session model.PaymentSessionModel
	if err := h.DB.First(&session, "payment_session_order_id = ?", body.OrderID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Unknown order")
	}

	var bill billModel.BillModel
	if err := h.DB.First(&bill, "bill_id = ?", session.PaymentSessionBillID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Bill not found")
	}
	if bill.BillIsPaid {
		// duplicate notification
		return helper.JsonOK(c, "Already settled", nil)
	}

	orderID := body.OrderID
	if _, err := h.settle(bill, model.PaymentMethodOnline, &orderID, nil); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to settle bill")
	}

	return helper.JsonOK(c, "Bill settled", nil)
}

// settle inserts the payment row and flips the bill in one transaction —
// both writes land or neither does.
func (h *PaymentController) settle(bill billModel.BillModel, method string, orderID, snapToken *string) (*model.PaymentModel, error) {
	payment := model.PaymentModel{
		PaymentCustomerID: bill.BillCustomerID,
		PaymentBillID:     bill.BillID,
		PaymentAmount:     bill.BillAmount,
		PaymentMethod:     method,
		PaymentOrderID:    orderID,
		PaymentSnapToken:  snapToken,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// guard against a concurrent settle: only one update flips the flag
		res := tx.Model(&billModel.BillModel{}).
			Where("bill_id = ? AND bill_is_paid = false", bill.BillID).
			Update("bill_is_paid", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("bill already paid")
		}
		return tx.Create(&payment).Error
	}); err != nil {
		return nil, err
	}

	_ = notifService.Notify(h.DB, bill.BillCustomerID,
		"Payment received",
		fmt.Sprintf("Your payment of %.2f for bill %s via %s has been recorded. Thank you.",
			payment.PaymentAmount, bill.BillID, method),
		map[string]interface{}{
			"payment_id": payment.PaymentID.String(),
			"bill_id":    bill.BillID.String(),
		})

	return &payment, nil
}
