package costing

import (
	"fmt"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// Convert translates a quantity from one unit to another.
// Supported pairs: identity, g<->kg and ml<->l (factor 1000). "unite"
// converts only to itself. Any cross-dimension pairing returns
// domain.ErrIncompatibleUnit; the caller decides whether that degrades
// the line or surfaces a warning.
func Convert(qty float64, from, to domain.Unit) (float64, error) {
	if !domain.ValidUnits[from] || !domain.ValidUnits[to] {
		return 0, fmt.Errorf("%w: %s -> %s", domain.ErrUnknownUnit, from, to)
	}
	if from == to {
		return qty, nil
	}

	switch {
	case from.IsMass() && to.IsMass():
		if from == domain.UnitGram {
			return qty / domain.GramsPerKilogram, nil
		}
		return qty * domain.GramsPerKilogram, nil
	case from.IsVolume() && to.IsVolume():
		if from == domain.UnitMilliliter {
			return qty / domain.MillilitersPerLiter, nil
		}
		return qty * domain.MillilitersPerLiter, nil
	}

	return 0, fmt.Errorf("%w: %s -> %s", domain.ErrIncompatibleUnit, from, to)
}
