package service

import (
	"fmt"
	"math"
	"time"

	connModel "listrikku_backend/internals/features/connections/model"
)

// Pricing policy. The tier boundaries and rates are the supplied rate table;
// swap this block to change pricing without touching the billing flow.
const (
	FixedCharge = 50.00
	TaxRate     = 0.05
	DueDateDays = 15
)

type tariffTier struct {
	UpToUnits float64 // 0 = no cap (last tier)
	Rate      float64 // per unit
}

var tariffTable = map[string][]tariffTier{
	connModel.ConnectionTypeDomestic: {
		{UpToUnits: 100, Rate: 1.50},
		{UpToUnits: 300, Rate: 2.50},
		{UpToUnits: 0, Rate: 4.00},
	},
	connModel.ConnectionTypeCommercial: {
		{UpToUnits: 100, Rate: 3.00},
		{UpToUnits: 300, Rate: 4.50},
		{UpToUnits: 0, Rate: 6.50},
	},
	connModel.ConnectionTypeIndustrial: {
		{UpToUnits: 500, Rate: 5.50},
		{UpToUnits: 0, Rate: 7.00},
	},
}

// ConsumptionCharge prices unitsConsumed against the tiered table for the
// tariff type. Unknown types and negative consumption are errors.
func ConsumptionCharge(unitsConsumed float64, tariffType string) (float64, error) {
	if unitsConsumed < 0 {
		return 0, fmt.Errorf("units consumed must not be negative")
	}
	tiers, ok := tariffTable[tariffType]
	if !ok {
		return 0, fmt.Errorf("unknown tariff type %q", tariffType)
	}

	charge := 0.0
	prevCap := 0.0
	for _, tier := range tiers {
		if tier.UpToUnits == 0 || unitsConsumed <= tier.UpToUnits {
			charge += (unitsConsumed - prevCap) * tier.Rate
			return round2(charge), nil
		}
		charge += (tier.UpToUnits - prevCap) * tier.Rate
		prevCap = tier.UpToUnits
	}
	return round2(charge), nil
}

// BillAmount = (consumption charge + fixed charge) + 5% tax on that subtotal.
func BillAmount(unitsConsumed float64, tariffType string) (float64, error) {
	consumption, err := ConsumptionCharge(unitsConsumed, tariffType)
	if err != nil {
		return 0, err
	}
	subtotal := consumption + FixedCharge
	return round2(subtotal * (1 + TaxRate)), nil
}

// DueDate is the submission time plus 15 days.
func DueDate(createdAt time.Time) time.Time {
	return createdAt.AddDate(0, 0, DueDateDays)
}

// ValidateUnits checks the meter delta: the new value must not be below the
// previous one. Returns the consumed units.
func ValidateUnits(previousUnit, currentUnit float64) (float64, error) {
	if currentUnit < 0 {
		return 0, fmt.Errorf("current unit must not be negative")
	}
	if currentUnit < previousUnit {
		return 0, fmt.Errorf("current unit (%.2f) is below the previous reading (%.2f)", currentUnit, previousUnit)
	}
	return currentUnit - previousUnit, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
