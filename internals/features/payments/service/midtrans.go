package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	billModel "listrikku_backend/internals/features/billing/model"
)

var SnapClient snap.Client

// Call at app bootstrap (sandbox)
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Snap token + redirect_url for an online bill
// payment.
func GenerateSnapToken(orderID string, bill billModel.BillModel, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(bill.BillAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}

// SettledStatus reports whether a gateway notification means the money is in.
func SettledStatus(transactionStatus, fraudStatus string) bool {
	switch transactionStatus {
	case "settlement":
		return true
	case "capture":
		return fraudStatus == "accept"
	}
	return false
}
