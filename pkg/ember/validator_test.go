// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================
// Advisory Validation Tests
// ============================================================

func TestValidateReading_CleanReading(t *testing.T) {
	r := &SensorReading{
		Temperature:    21.5,
		RTDResistance:  100.0,
		BatteryVoltage: 3.3,
		Raw:            defaultPacket(),
	}
	if anomalies := ValidateReading(r); len(anomalies) != 0 {
		t.Errorf("clean reading produced %d anomalies: %v", len(anomalies), anomalies)
	}
}

func TestValidateReading_Anomalies(t *testing.T) {
	tests := []struct {
		name    string
		reading SensorReading
		want    AnomalyType
	}{
		{
			name:    "temperature above plausible range",
			reading: SensorReading{Temperature: 150.0, RTDResistance: 100.0, BatteryVoltage: 3.3},
			want:    AnomalyImplausibleTemp,
		},
		{
			name:    "temperature below plausible range",
			reading: SensorReading{Temperature: -150.0, RTDResistance: 100.0, BatteryVoltage: 3.3},
			want:    AnomalyImplausibleTemp,
		},
		{
			name:    "battery out of range",
			reading: SensorReading{Temperature: 21.5, RTDResistance: 100.0, BatteryVoltage: 12.0},
			want:    AnomalyBatteryRange,
		},
		{
			name:    "resistance beyond calibration table",
			reading: SensorReading{Temperature: 21.5, RTDResistance: 500.0, BatteryVoltage: 3.3},
			want:    AnomalyResistanceRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anomalies := ValidateReading(&tt.reading)
			if len(anomalies) != 1 {
				t.Fatalf("expected 1 anomaly, got %d: %v", len(anomalies), anomalies)
			}
			if anomalies[0].Type != tt.want {
				t.Errorf("anomaly type = %d, want %d", anomalies[0].Type, tt.want)
			}
			if anomalies[0].Error() == "" {
				t.Error("anomaly has empty message")
			}
		})
	}
}

func TestValidateReading_MultipleAnomalies(t *testing.T) {
	r := &SensorReading{Temperature: 500.0, RTDResistance: 500.0, BatteryVoltage: 12.0}
	if anomalies := ValidateReading(r); len(anomalies) != 3 {
		t.Errorf("expected 3 anomalies, got %d", len(anomalies))
	}
}

// ============================================================
// Statistics Tests
// ============================================================

func TestStatistics_Update(t *testing.T) {
	stats := NewStatistics()
	parser := NewParser(NewRTDTable())

	// Two valid frames, one anomalous, one rejected.
	valid := defaultPacket()
	anomalous := buildPacket(2500000, [4]byte{1, 2, 3, 4}, 8192, 0, 3300) // 250 degC
	rejected := buildPacket(250000, [4]byte{1, 2, 3, 4}, 8192, 0, 0xFFFF)

	for _, packet := range []RawPacket{valid, valid, anomalous, rejected} {
		reading, err := parser.Parse(packet)
		var warnings []ValidationError
		if err == nil {
			warnings = ValidateReading(reading)
		}
		stats.Update(reading, err, warnings)
	}

	if stats.TotalFrames != 4 {
		t.Errorf("TotalFrames = %d, want 4", stats.TotalFrames)
	}
	if stats.ValidReadings != 2 {
		t.Errorf("ValidReadings = %d, want 2", stats.ValidReadings)
	}
	if stats.AnomalousValues != 1 || stats.ImplausibleTemp != 1 {
		t.Errorf("anomaly counters = %d/%d, want 1/1", stats.AnomalousValues, stats.ImplausibleTemp)
	}
	if stats.DataErrors != 1 {
		t.Errorf("DataErrors = %d, want 1", stats.DataErrors)
	}
}

func TestStatistics_ErrorClassification(t *testing.T) {
	stats := NewStatistics()
	stats.Update(nil, ErrInvalidLength, nil)
	stats.Update(nil, errors.Join(ErrInvalidSensorValue, errors.New("detail")), nil)
	stats.Update(nil, ErrInvalidSensorData, nil)

	if stats.LengthErrors != 1 || stats.ValueErrors != 1 || stats.DataErrors != 1 {
		t.Errorf("classification = %d/%d/%d, want 1/1/1",
			stats.LengthErrors, stats.ValueErrors, stats.DataErrors)
	}
}

func TestStatistics_StringAndReset(t *testing.T) {
	stats := NewStatistics()
	stats.AddBytes(128)
	stats.SetFramesDiscarded(2)
	stats.Update(nil, ErrInvalidLength, nil)

	summary := stats.String()
	for _, want := range []string{"Bytes Read", "Total Frames", "Discarded Frames", "Bad Length"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}

	stats.Reset()
	if stats.BytesRead != 0 || stats.TotalFrames != 0 || stats.FramesDiscarded != 0 {
		t.Error("Reset left counters set")
	}
}
