package domain

import "strings"

// Unit represents a measurement unit for ingredient quantities.
// The set is closed: two mass units, two volume units, and a count unit
// ("unite", a single piece such as one egg).
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitPiece      Unit = "unite"
)

// GramsPerKilogram and MillilitersPerLiter are the only conversion
// factors in the unit system.
const (
	GramsPerKilogram    = 1000.0
	MillilitersPerLiter = 1000.0
)

// ValidUnits defines the supported units for validation
var ValidUnits = map[Unit]bool{
	UnitKilogram:   true,
	UnitGram:       true,
	UnitLiter:      true,
	UnitMilliliter: true,
	UnitPiece:      true,
}

// ParseUnit normalizes and validates a unit string.
// Returns the canonical Unit and true, or "" and false for unknown input.
func ParseUnit(s string) (Unit, bool) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if ValidUnits[u] {
		return u, true
	}
	return "", false
}

// IsMass reports whether the unit measures mass.
func (u Unit) IsMass() bool {
	return u == UnitKilogram || u == UnitGram
}

// IsVolume reports whether the unit measures volume.
func (u Unit) IsVolume() bool {
	return u == UnitLiter || u == UnitMilliliter
}
