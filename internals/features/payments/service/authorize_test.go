package service

import (
	"testing"

	"github.com/google/uuid"

	"listrikku_backend/internals/constants"
	billModel "listrikku_backend/internals/features/billing/model"
)

func unpaidBill(owner uuid.UUID, amount float64) billModel.BillModel {
	return billModel.BillModel{
		BillID:         uuid.New(),
		BillCustomerID: owner,
		BillAmount:     amount,
		BillIsPaid:     false,
	}
}

func TestAuthorizeSettlement_OwnerMayPay(t *testing.T) {
	owner := uuid.New()
	bill := unpaidBill(owner, 131.25)

	if err := AuthorizeSettlement(bill, owner, constants.RoleCustomer, nil); err != nil {
		t.Errorf("expected owner to be authorized, got %v", err)
	}
}

func TestAuthorizeSettlement_OtherCustomerForbidden(t *testing.T) {
	bill := unpaidBill(uuid.New(), 131.25)

	err := AuthorizeSettlement(bill, uuid.New(), constants.RoleCustomer, nil)
	if err == nil {
		t.Fatal("expected error for foreign customer")
	}
	if _, ok := err.(ErrNotOwner); !ok {
		t.Errorf("expected ErrNotOwner, got %T", err)
	}
}

func TestAuthorizeSettlement_AdminMayPayAnyBill(t *testing.T) {
	bill := unpaidBill(uuid.New(), 131.25)

	if err := AuthorizeSettlement(bill, uuid.New(), constants.RoleAdmin, nil); err != nil {
		t.Errorf("expected admin to be authorized, got %v", err)
	}
}

func TestAuthorizeSettlement_AlreadyPaid(t *testing.T) {
	owner := uuid.New()
	bill := unpaidBill(owner, 131.25)
	bill.BillIsPaid = true

	err := AuthorizeSettlement(bill, owner, constants.RoleCustomer, nil)
	if err == nil {
		t.Fatal("expected error for paid bill")
	}
	if _, ok := err.(ErrAlreadyPaid); !ok {
		t.Errorf("expected ErrAlreadyPaid, got %T", err)
	}
}

func TestAuthorizeSettlement_AmountMustMatchExactly(t *testing.T) {
	owner := uuid.New()
	bill := unpaidBill(owner, 131.25)

	partial := 100.00
	err := AuthorizeSettlement(bill, owner, constants.RoleCustomer, &partial)
	if err == nil {
		t.Fatal("expected error for partial amount")
	}
	mismatch, ok := err.(ErrAmountMismatch)
	if !ok {
		t.Fatalf("expected ErrAmountMismatch, got %T", err)
	}
	if mismatch.Outstanding != 131.25 {
		t.Errorf("expected outstanding 131.25 in error, got %.2f", mismatch.Outstanding)
	}
}

func TestAuthorizeSettlement_ExactAmountAccepted(t *testing.T) {
	owner := uuid.New()
	bill := unpaidBill(owner, 131.25)

	exact := 131.25
	if err := AuthorizeSettlement(bill, owner, constants.RoleCustomer, &exact); err != nil {
		t.Errorf("expected exact amount to be accepted, got %v", err)
	}
}
