// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"fmt"
	"math"
)

// CalibrationTable maps a measured RTD resistance to the nearest calibrated
// temperature. Index i of the table corresponds to i-200 degC. The table is
// immutable after construction and safe to share across any number of
// concurrent Parser instances.
//
// Lookup does not assume the resistances are sorted: the WTX factory curve
// contains out-of-order runs and duplicated entries, and the search must
// take the data as it is. No interpolation is performed.
type CalibrationTable struct {
	resistances []float64
	min, max    float64
}

// NewRTDTable returns the built-in WTX RTD calibration table
// (1083 entries, -200 degC through 882 degC).
func NewRTDTable() *CalibrationTable {
	return NewCalibrationTable(rtdResistances)
}

// NewCalibrationTable builds a table over the given resistance curve. The
// slice is not copied; callers must not mutate it afterwards.
func NewCalibrationTable(resistances []float64) *CalibrationTable {
	t := &CalibrationTable{resistances: resistances}
	if len(resistances) > 0 {
		t.min = resistances[0]
		t.max = resistances[0]
		for _, r := range resistances[1:] {
			if r < t.min {
				t.min = r
			}
			if r > t.max {
				t.max = r
			}
		}
	}
	return t
}

// Lookup returns the calibrated temperature in degC nearest to the given
// resistance in ohms. The scan keeps the first index on ties. Resistances
// beyond the table's extremes match the nearest boundary entry; there is no
// out-of-range failure. Lookup fails with ErrInvalidInput for NaN, infinite
// or negative resistances, and for an empty table.
func (t *CalibrationTable) Lookup(resistance float64) (int, error) {
	if math.IsNaN(resistance) || math.IsInf(resistance, 0) {
		return 0, fmt.Errorf("%w: resistance is not finite", ErrInvalidInput)
	}
	if resistance < 0 {
		return 0, fmt.Errorf("%w: negative resistance %v", ErrInvalidInput, resistance)
	}
	if len(t.resistances) == 0 {
		return 0, fmt.Errorf("%w: calibration table is empty", ErrInvalidInput)
	}

	bestIndex := 0
	bestDistance := math.Abs(t.resistances[0] - resistance)
	for i := 1; i < len(t.resistances); i++ {
		d := math.Abs(t.resistances[i] - resistance)
		if d < bestDistance {
			bestDistance = d
			bestIndex = i
		}
	}
	return bestIndex + baseTemperature, nil
}

// Len returns the number of calibration entries.
func (t *CalibrationTable) Len() int {
	return len(t.resistances)
}

// MinResistance returns the smallest resistance in the table, or 0 for an
// empty table.
func (t *CalibrationTable) MinResistance() float64 {
	return t.min
}

// MaxResistance returns the largest resistance in the table, or 0 for an
// empty table.
func (t *CalibrationTable) MaxResistance() float64 {
	return t.max
}
