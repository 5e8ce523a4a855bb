// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"errors"
	"math"
	"testing"
)

// ============================================================
// Built-in Table Tests
// ============================================================

func TestRTDTable_Extremes(t *testing.T) {
	table := NewRTDTable()
	if table.Len() != 1083 {
		t.Fatalf("table has %d entries, want 1083", table.Len())
	}

	tests := []struct {
		name       string
		resistance float64
		want       int
	}{
		{"table floor", 18.4932, -200},
		{"table ceiling", 390.2623, 882},
		{"platinum zero point", 100.0000, 0},
		{"below floor clamps", 1.2207, -200},
		{"zero clamps to floor", 0.0, -200},
		{"above ceiling clamps", 1e6, 882},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Lookup(tt.resistance)
			if err != nil {
				t.Fatalf("Lookup error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%v) = %d, want %d", tt.resistance, got, tt.want)
			}
		})
	}
}

func TestRTDTable_NonMonotonicRuns(t *testing.T) {
	// The factory curve repeats values in two sub-ranges. An exact match
	// on a duplicated value must return the first occurrence.
	table := NewRTDTable()

	tests := []struct {
		resistance float64
		want       int
	}{
		{175.1042, 198}, // also present at index 400 (200 degC)
		{194.0743, 261}, // also at 271 and 272
		{197.3257, 252}, // also at 262 and 281
	}

	for _, tt := range tests {
		got, err := table.Lookup(tt.resistance)
		if err != nil {
			t.Fatalf("Lookup error: %v", err)
		}
		if got != tt.want {
			t.Errorf("Lookup(%v) = %d, want first occurrence %d", tt.resistance, got, tt.want)
		}
	}
}

func TestRTDTable_ResistanceRangeAccessors(t *testing.T) {
	table := NewRTDTable()
	if table.MinResistance() != 18.4932 {
		t.Errorf("MinResistance = %v, want 18.4932", table.MinResistance())
	}
	if table.MaxResistance() != 390.2623 {
		t.Errorf("MaxResistance = %v, want 390.2623", table.MaxResistance())
	}
}

// ============================================================
// Input Validation Tests
// ============================================================

func TestLookup_InvalidInput(t *testing.T) {
	table := NewRTDTable()

	tests := []struct {
		name       string
		resistance float64
	}{
		{"negative", -1.0},
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := table.Lookup(tt.resistance); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestLookup_EmptyTable(t *testing.T) {
	table := NewCalibrationTable(nil)
	if _, err := table.Lookup(100.0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

// ============================================================
// Custom Table Tests
// ============================================================

func TestLookup_TieBreaksOnFirstOccurrence(t *testing.T) {
	// Equidistant neighbors and exact duplicates both resolve to the
	// lowest index under the strict less-than scan.
	table := NewCalibrationTable([]float64{10, 20, 20, 30})

	got, err := table.Lookup(20)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if got != 1-200 {
		t.Errorf("duplicate value resolved to %d, want %d", got, 1-200)
	}

	// 15 is equidistant from indexes 0 and 1.
	got, err = table.Lookup(15)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if got != 0-200 {
		t.Errorf("equidistant value resolved to %d, want %d", got, 0-200)
	}
}

func TestLookup_UnsortedTable(t *testing.T) {
	// Nearest-neighbor search must not assume sorted input.
	table := NewCalibrationTable([]float64{50, 10, 40, 20, 30})

	got, err := table.Lookup(11)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if got != 1-200 {
		t.Errorf("Lookup(11) = %d, want %d", got, 1-200)
	}
	if table.MinResistance() != 10 || table.MaxResistance() != 50 {
		t.Errorf("extremes = [%v, %v], want [10, 50]", table.MinResistance(), table.MaxResistance())
	}
}
