package service

import (
	"testing"
	"time"
)

func TestConsumptionCharge_DomesticFirstTier(t *testing.T) {
	charge, err := ConsumptionCharge(50, "domestic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge != 75.00 {
		t.Errorf("expected 75.00, got %.2f", charge)
	}
}

func TestConsumptionCharge_DomesticAcrossTiers(t *testing.T) {
	// 100*1.50 + 200*2.50 + 50*4.00 = 150 + 500 + 200
	charge, err := ConsumptionCharge(350, "domestic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge != 850.00 {
		t.Errorf("expected 850.00, got %.2f", charge)
	}
}

func TestConsumptionCharge_TierBoundary(t *testing.T) {
	// exactly at the first cap: all units priced in tier one
	charge, err := ConsumptionCharge(100, "commercial")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge != 300.00 {
		t.Errorf("expected 300.00, got %.2f", charge)
	}
}

func TestConsumptionCharge_ZeroUnits(t *testing.T) {
	charge, err := ConsumptionCharge(0, "industrial")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge != 0 {
		t.Errorf("expected 0, got %.2f", charge)
	}
}

func TestConsumptionCharge_UnknownType(t *testing.T) {
	if _, err := ConsumptionCharge(10, "agricultural"); err == nil {
		t.Error("expected error for unknown tariff type")
	}
}

func TestConsumptionCharge_NegativeUnits(t *testing.T) {
	if _, err := ConsumptionCharge(-1, "domestic"); err == nil {
		t.Error("expected error for negative consumption")
	}
}

func TestBillAmount_DomesticExample(t *testing.T) {
	// 50 units domestic: consumption 75.00 + fixed 50.00 = 125.00, +5% tax
	amount, err := BillAmount(50, "domestic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amount != 131.25 {
		t.Errorf("expected 131.25, got %.2f", amount)
	}
}

func TestBillAmount_ZeroConsumptionStillFixedCharge(t *testing.T) {
	amount, err := BillAmount(0, "domestic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amount != 52.50 {
		t.Errorf("expected 52.50 (fixed charge + tax), got %.2f", amount)
	}
}

func TestDueDate_FifteenDays(t *testing.T) {
	created := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	due := DueDate(created)
	expected := time.Date(2024, 1, 25, 9, 30, 0, 0, time.UTC)
	if !due.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, due)
	}
}

func TestValidateUnits_Delta(t *testing.T) {
	consumed, err := ValidateUnits(100, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != 50 {
		t.Errorf("expected 50, got %.2f", consumed)
	}
}

func TestValidateUnits_BelowPrevious(t *testing.T) {
	if _, err := ValidateUnits(100, 90); err == nil {
		t.Error("expected error when current is below previous")
	}
}

func TestValidateUnits_NegativeCurrent(t *testing.T) {
	if _, err := ValidateUnits(0, -5); err == nil {
		t.Error("expected error for negative current unit")
	}
}

func TestValidateUnits_FirstReading(t *testing.T) {
	consumed, err := ValidateUnits(0, 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed != 120 {
		t.Errorf("expected 120, got %.2f", consumed)
	}
}
