package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

func TestConvert_CompatiblePairs(t *testing.T) {
	tests := []struct {
		name     string
		qty      float64
		from, to domain.Unit
		expected float64
	}{
		{"grams to kilograms", 1000, domain.UnitGram, domain.UnitKilogram, 1},
		{"kilograms to grams", 1.5, domain.UnitKilogram, domain.UnitGram, 1500},
		{"milliliters to liters", 250, domain.UnitMilliliter, domain.UnitLiter, 0.25},
		{"liters to milliliters", 2, domain.UnitLiter, domain.UnitMilliliter, 2000},
		{"identity kg", 3, domain.UnitKilogram, domain.UnitKilogram, 3},
		{"identity piece", 12, domain.UnitPiece, domain.UnitPiece, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.qty, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestConvert_IncompatiblePairs(t *testing.T) {
	tests := []struct {
		name     string
		from, to domain.Unit
	}{
		{"mass to volume", domain.UnitKilogram, domain.UnitLiter},
		{"volume to mass", domain.UnitMilliliter, domain.UnitGram},
		{"piece to mass", domain.UnitPiece, domain.UnitKilogram},
		{"volume to piece", domain.UnitLiter, domain.UnitPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(1, tt.from, tt.to)
			require.ErrorIs(t, err, domain.ErrIncompatibleUnit)
			assert.Zero(t, got)
		})
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	_, err := Convert(1, domain.Unit("oz"), domain.UnitKilogram)
	require.ErrorIs(t, err, domain.ErrUnknownUnit)

	_, err = Convert(1, domain.UnitKilogram, domain.Unit(""))
	require.ErrorIs(t, err, domain.ErrUnknownUnit)
}
