package service

import (
	"fmt"

	"github.com/google/uuid"

	"listrikku_backend/internals/constants"
	billModel "listrikku_backend/internals/features/billing/model"
)

type ErrNotOwner struct{}

func (ErrNotOwner) Error() string { return "you may only pay your own bills" }

type ErrAlreadyPaid struct{}

func (ErrAlreadyPaid) Error() string { return "bill is already paid" }

type ErrAmountMismatch struct {
	Outstanding float64
}

func (e ErrAmountMismatch) Error() string {
	return fmt.Sprintf("amount must equal the outstanding amount %.2f exactly", e.Outstanding)
}

// AuthorizeSettlement decides whether the caller may settle the bill.
// Admins may pay any bill; customers only their own. The bill must be
// unpaid, and a supplied amount must match the outstanding amount exactly
// (partial payments are not supported).
func AuthorizeSettlement(bill billModel.BillModel, callerID uuid.UUID, role string, amount *float64) error {
	if role != constants.RoleAdmin && bill.BillCustomerID != callerID {
		return ErrNotOwner{}
	}
	if bill.BillIsPaid {
		return ErrAlreadyPaid{}
	}
	if amount != nil && *amount != bill.BillAmount {
		return ErrAmountMismatch{Outstanding: bill.BillAmount}
	}
	return nil
}
