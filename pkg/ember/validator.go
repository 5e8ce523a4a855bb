// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import "fmt"

// AnomalyType represents different types of reading anomalies
type AnomalyType int

const (
	AnomalyImplausibleTemp AnomalyType = iota
	AnomalyBatteryRange
	AnomalyResistanceRange
)

// ValidationError represents an advisory finding on a reading. Advisories
// flag suspicious values without rejecting the reading; the hard checks live
// in SensorReading.Validate.
type ValidationError struct {
	Type    AnomalyType
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	return v.Message
}

// ValidateReading inspects a reading for anomalous values.
// Returns a slice of validation errors (empty if nothing stands out).
func ValidateReading(r *SensorReading) []ValidationError {
	errors := []ValidationError{}

	if r.Temperature < MinPlausibleTemperature || r.Temperature > MaxPlausibleTemperature {
		errors = append(errors, ValidationError{
			Type: AnomalyImplausibleTemp,
			Message: fmt.Sprintf("Temperature out of plausible range (%.4f degC, expected %.0f to %.0f)",
				r.Temperature, MinPlausibleTemperature, MaxPlausibleTemperature),
			Details: map[string]interface{}{"value": r.Temperature, "min": MinPlausibleTemperature, "max": MaxPlausibleTemperature},
		})
	}

	if r.BatteryVoltage < MinBatteryVoltage || r.BatteryVoltage > MaxBatteryVoltage {
		errors = append(errors, ValidationError{
			Type: AnomalyBatteryRange,
			Message: fmt.Sprintf("Battery voltage out of range (%.3f V, valid: %.0f to %.0f V)",
				r.BatteryVoltage, MinBatteryVoltage, MaxBatteryVoltage),
			Details: map[string]interface{}{"value": r.BatteryVoltage, "min": MinBatteryVoltage, "max": MaxBatteryVoltage},
		})
	}

	if r.RTDResistance < rtdTableMin || r.RTDResistance > rtdTableMax {
		errors = append(errors, ValidationError{
			Type: AnomalyResistanceRange,
			Message: fmt.Sprintf("RTD resistance beyond calibration range (%.4f ohm, table covers %.4f to %.4f)",
				r.RTDResistance, rtdTableMin, rtdTableMax),
			Details: map[string]interface{}{"value": r.RTDResistance, "min": rtdTableMin, "max": rtdTableMax},
		})
	}

	return errors
}

// Calibration extremes of the built-in table, used to flag readings whose
// RTD conversion clamped to a boundary entry.
var rtdTableMin, rtdTableMax = calibrationExtremes()

func calibrationExtremes() (float64, float64) {
	t := NewRTDTable()
	return t.MinResistance(), t.MaxResistance()
}
