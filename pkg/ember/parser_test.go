// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

// ============================================================
// Test Helpers
// ============================================================

// buildPacket assembles a frame body from raw wire fields. Battery defaults
// to a healthy 3.3 V unless overridden so hard validation passes.
func buildPacket(tempRaw uint32, deviceID [4]byte, rtdRaw, tcRaw, battRaw uint16) RawPacket {
	p := make(RawPacket, PacketLength)
	binary.LittleEndian.PutUint32(p[offsetTemperature:], tempRaw)
	copy(p[offsetDeviceID:], deviceID[:])
	binary.LittleEndian.PutUint16(p[offsetRTD:], rtdRaw)
	binary.LittleEndian.PutUint16(p[offsetThermocouple:], tcRaw)
	binary.LittleEndian.PutUint16(p[offsetBattery:], battRaw)
	return p
}

func defaultPacket() RawPacket {
	return buildPacket(250000, [4]byte{1, 2, 3, 4}, 8192, 1234, 3300)
}

func newTestParser() *Parser {
	return NewParser(NewRTDTable())
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// ============================================================
// Field Decoding Tests
// ============================================================

func TestParse_FieldScaling(t *testing.T) {
	p := newTestParser()
	reading, err := p.Parse(defaultPacket())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if !almostEqual(reading.Temperature, 25.0, 1e-9) {
		t.Errorf("temperature = %v, want 25.0", reading.Temperature)
	}
	if reading.DeviceID != "1 2 3 4" {
		t.Errorf("device ID = %q, want \"1 2 3 4\"", reading.DeviceID)
	}
	if !almostEqual(reading.RTDResistance, 100.0, 1e-9) {
		t.Errorf("RTD resistance = %v, want 100.0", reading.RTDResistance)
	}
	if reading.RTDTemperature != 0 {
		t.Errorf("RTD temperature = %d, want 0 (100 ohm is the 0 degC point)", reading.RTDTemperature)
	}
	if reading.Thermocouple != 1234 {
		t.Errorf("thermocouple = %v, want 1234", reading.Thermocouple)
	}
	if !almostEqual(reading.BatteryVoltage, 3.3, 1e-9) {
		t.Errorf("battery voltage = %v, want 3.3", reading.BatteryVoltage)
	}
	if len(reading.Raw) != PacketLength {
		t.Errorf("raw packet not retained")
	}
}

func TestParse_DeviceIDKeepsByteComponents(t *testing.T) {
	// The identity stays four separate decimal components, never a merged
	// integer.
	packet := buildPacket(0, [4]byte{0, 255, 16, 1}, 8192, 0, 3300)
	reading, err := newTestParser().Parse(packet)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if reading.DeviceID != "0 255 16 1" {
		t.Errorf("device ID = %q, want \"0 255 16 1\"", reading.DeviceID)
	}
}

func TestParse_ReservedBytesIgnored(t *testing.T) {
	a := defaultPacket()
	b := defaultPacket()
	b[0] = 0xFF
	b[5] = 0xFF
	b[6] = 0xFF
	b[17] = 0xFF

	p := newTestParser()
	ra, err := p.Parse(a)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	rb, err := p.Parse(b)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if ra.Temperature != rb.Temperature || ra.DeviceID != rb.DeviceID ||
		ra.RTDResistance != rb.RTDResistance || ra.Thermocouple != rb.Thermocouple ||
		ra.BatteryVoltage != rb.BatteryVoltage {
		t.Error("reserved bytes influenced decoded fields")
	}
}

// ============================================================
// Length Validation Tests
// ============================================================

func TestParse_InvalidLength(t *testing.T) {
	tests := []struct {
		name   string
		packet RawPacket
	}{
		{"nil packet", nil},
		{"empty packet", RawPacket{}},
		{"truncated packet", make(RawPacket, PacketLength-1)},
		{"oversized packet", make(RawPacket, PacketLength+1)},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.packet)
			if !errors.Is(err, ErrInvalidLength) {
				t.Errorf("error = %v, want ErrInvalidLength", err)
			}
		})
	}
}

// ============================================================
// Battery Voltage Validation Tests
// ============================================================

func TestParse_BatteryVoltageBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		battRaw uint16
		valid   bool
	}{
		{"zero volts", 0, true},
		{"nominal", 3836, true},
		{"exactly ten volts", 10000, true},
		{"just over ten volts", 10001, false},
		{"all ones", 0xFFFF, false},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packet := buildPacket(250000, [4]byte{1, 2, 3, 4}, 8192, 0, tt.battRaw)
			reading, err := p.Parse(packet)
			if tt.valid {
				if err != nil {
					t.Fatalf("Parse error: %v", err)
				}
				want := float64(tt.battRaw) / 1000.0
				if !almostEqual(reading.BatteryVoltage, want, 1e-9) {
					t.Errorf("battery voltage = %v, want %v", reading.BatteryVoltage, want)
				}
			} else if !errors.Is(err, ErrInvalidSensorData) {
				t.Errorf("error = %v, want ErrInvalidSensorData", err)
			}
		})
	}
}

func TestValidate_BatteryVoltageEdges(t *testing.T) {
	// Validate is callable on readings built directly, which reaches
	// fractional voltages the millivolt wire field cannot encode.
	tests := []struct {
		voltage float64
		valid   bool
	}{
		{0.0, true},
		{10.0, true},
		{10.0001, false},
		{-0.0001, false},
	}

	for _, tt := range tests {
		r := &SensorReading{BatteryVoltage: tt.voltage, Raw: defaultPacket()}
		err := r.Validate()
		if tt.valid && err != nil {
			t.Errorf("Validate(%v V) = %v, want nil", tt.voltage, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidSensorData) {
			t.Errorf("Validate(%v V) = %v, want ErrInvalidSensorData", tt.voltage, err)
		}
	}
}

func TestValidate_RawLength(t *testing.T) {
	r := &SensorReading{BatteryVoltage: 3.3, Raw: RawPacket{1, 2, 3}}
	if err := r.Validate(); !errors.Is(err, ErrInvalidSensorData) {
		t.Errorf("error = %v, want ErrInvalidSensorData", err)
	}
}

// ============================================================
// Advisory Range Tests
// ============================================================

func TestParse_ImplausibleTemperatureAccepted(t *testing.T) {
	// 429496.7295 degC decodes from an all-ones field; advisory only,
	// never rejected.
	packet := buildPacket(0xFFFFFFFF, [4]byte{1, 2, 3, 4}, 8192, 0, 3300)
	reading, err := newTestParser().Parse(packet)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !almostEqual(reading.Temperature, 429496.7295, 1e-4) {
		t.Errorf("temperature = %v, want 429496.7295", reading.Temperature)
	}
}

func TestParse_ThermocoupleNeverRejected(t *testing.T) {
	packet := buildPacket(250000, [4]byte{1, 2, 3, 4}, 8192, 0xFFFF, 3300)
	reading, err := newTestParser().Parse(packet)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if reading.Thermocouple != 65535 {
		t.Errorf("thermocouple = %v, want 65535", reading.Thermocouple)
	}
}

// ============================================================
// Calibration Fallback Tests
// ============================================================

func TestParse_LookupFailureSubstitutesZero(t *testing.T) {
	// An empty table fails every lookup; the parse must still succeed
	// with RTDTemperature 0.
	p := NewParser(NewCalibrationTable(nil))
	reading, err := p.Parse(defaultPacket())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if reading.RTDTemperature != 0 {
		t.Errorf("RTD temperature = %d, want fallback 0", reading.RTDTemperature)
	}
	if !almostEqual(reading.RTDResistance, 100.0, 1e-9) {
		t.Errorf("RTD resistance = %v, want 100.0 despite lookup failure", reading.RTDResistance)
	}
}

// ============================================================
// Purity Tests
// ============================================================

func TestParse_Deterministic(t *testing.T) {
	p := newTestParser()
	packet := defaultPacket()

	first, err := p.Parse(packet)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	// Interleave unrelated parses, including failing ones.
	p.Parse(buildPacket(0, [4]byte{9, 9, 9, 9}, 0, 0, 0xFFFF))
	p.Parse(nil)

	second, err := p.Parse(packet)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if first.Temperature != second.Temperature || first.DeviceID != second.DeviceID ||
		first.RTDResistance != second.RTDResistance || first.RTDTemperature != second.RTDTemperature ||
		first.Thermocouple != second.Thermocouple || first.BatteryVoltage != second.BatteryVoltage {
		t.Error("identical packets parsed to different readings")
	}
}

// ============================================================
// Pipeline Tests
// ============================================================

func TestPipeline_EndToEndScenario(t *testing.T) {
	// The reference transmission: temperature 1000/10000 = 0.1 degC, RTD
	// 100 counts = 1.2207 ohm, battery 0x0EFC = 3.836 V.
	body := make([]byte, PacketLength)
	copy(body[1:5], []byte{0xE8, 0x03, 0x00, 0x00})
	copy(body[7:11], []byte{10, 20, 30, 40})
	copy(body[11:13], []byte{0x64, 0x00})
	copy(body[15:17], []byte{0xFC, 0x0E})

	d := NewDecoder()
	parser := newTestParser()

	// Frame the body for the wire; the device-ID byte 10 collides with the
	// frame-end code and must travel escaped.
	stream, err := EncodeFrame(body)
	if err != nil {
		t.Fatalf("EncodeFrame error: %v", err)
	}

	var readings []*SensorReading
	for _, b := range stream {
		if packet := d.DecodeByte(b); packet != nil {
			reading, err := parser.Parse(packet)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			readings = append(readings, reading)
		}
	}

	if len(readings) != 1 {
		t.Fatalf("expected 1 reading, got %d", len(readings))
	}
	r := readings[0]
	if !almostEqual(r.Temperature, 0.1, 1e-9) {
		t.Errorf("temperature = %v, want 0.1", r.Temperature)
	}
	if !almostEqual(r.RTDResistance, 1.2207, 1e-4) {
		t.Errorf("RTD resistance = %v, want ~1.2207", r.RTDResistance)
	}
	if r.RTDTemperature != -200 {
		t.Errorf("RTD temperature = %d, want -200 (below the table floor)", r.RTDTemperature)
	}
	if !almostEqual(r.BatteryVoltage, 3.836, 1e-9) {
		t.Errorf("battery voltage = %v, want 3.836", r.BatteryVoltage)
	}
	if r.DeviceID != "10 20 30 40" {
		t.Errorf("device ID = %q, want \"10 20 30 40\"", r.DeviceID)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("reference reading failed validation: %v", err)
	}
}
