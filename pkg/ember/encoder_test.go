// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"bytes"
	"errors"
	"testing"
)

// ============================================================
// Encode / Parse Round-Trip Tests
// ============================================================

func TestEncodePacket_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		fields PacketFields
	}{
		{
			name: "nominal reading",
			fields: PacketFields{
				Temperature:    21.5,
				DeviceID:       [4]byte{10, 20, 30, 40},
				RTDResistance:  108.3068, // 21 degC point, representable in counts
				Thermocouple:   1502,
				BatteryVoltage: 3.836,
			},
		},
		{
			name: "all zero",
			fields: PacketFields{
				DeviceID: [4]byte{0, 0, 0, 0},
			},
		},
		{
			name: "battery at the validation ceiling",
			fields: PacketFields{
				Temperature:    0.1,
				DeviceID:       [4]byte{255, 255, 255, 255},
				RTDResistance:  200.0,
				Thermocouple:   65535,
				BatteryVoltage: 10.0,
			},
		},
	}

	parser := NewParser(NewRTDTable())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packet, err := EncodePacket(tt.fields)
			if err != nil {
				t.Fatalf("EncodePacket error: %v", err)
			}
			reading, err := parser.Parse(packet)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}

			// Quantization: temperature to 1e-4 degC, resistance to one
			// count of 400/32768 ohm, battery to 1 mV.
			if !almostEqual(reading.Temperature, tt.fields.Temperature, 0.5e-4) {
				t.Errorf("temperature = %v, want %v", reading.Temperature, tt.fields.Temperature)
			}
			if !almostEqual(reading.RTDResistance, tt.fields.RTDResistance, 400.0/32768.0) {
				t.Errorf("RTD resistance = %v, want %v", reading.RTDResistance, tt.fields.RTDResistance)
			}
			if reading.Thermocouple != float64(tt.fields.Thermocouple) {
				t.Errorf("thermocouple = %v, want %d", reading.Thermocouple, tt.fields.Thermocouple)
			}
			if !almostEqual(reading.BatteryVoltage, tt.fields.BatteryVoltage, 0.5e-3) {
				t.Errorf("battery voltage = %v, want %v", reading.BatteryVoltage, tt.fields.BatteryVoltage)
			}
		})
	}
}

func TestEncodePacket_UnrepresentableValues(t *testing.T) {
	tests := []struct {
		name   string
		fields PacketFields
	}{
		{"negative temperature", PacketFields{Temperature: -5.0}},
		{"temperature overflow", PacketFields{Temperature: 1e6}},
		{"negative resistance", PacketFields{RTDResistance: -1.0}},
		{"resistance overflow", PacketFields{RTDResistance: 800.0}},
		{"negative battery", PacketFields{BatteryVoltage: -0.5}},
		{"battery overflow", PacketFields{BatteryVoltage: 70.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EncodePacket(tt.fields); !errors.Is(err, ErrInvalidSensorValue) {
				t.Errorf("error = %v, want ErrInvalidSensorValue", err)
			}
		})
	}
}

// ============================================================
// Frame Encoding Tests
// ============================================================

func TestEncodeFrame_RoundTrip(t *testing.T) {
	body := testPacketBody()
	frame, err := EncodeFrame(body)
	if err != nil {
		t.Fatalf("EncodeFrame error: %v", err)
	}
	if frame[0] != FrameStart || frame[len(frame)-1] != FrameEnd {
		t.Fatal("frame missing start or end marker")
	}

	d := NewDecoder()
	packets := feedBytes(d, frame)
	if len(packets) != 1 {
		t.Fatalf("expected 1 packet, got %d", len(packets))
	}
	if !bytes.Equal(packets[0], body) {
		t.Errorf("decoded packet mismatch:\n got %v\nwant %v", packets[0], body)
	}
}

func TestEncodeFrame_EscapesControlBytes(t *testing.T) {
	// Battery raw 0x0D0A puts both the frame-start and frame-end values
	// into the body; offset 0 carries the escape value itself.
	body := testPacketBody()
	body[0] = EscapeByte
	body[offsetBattery] = 0x0A
	body[offsetBattery+1] = 0x0D

	frame, err := EncodeFrame(body)
	if err != nil {
		t.Fatalf("EncodeFrame error: %v", err)
	}
	if len(frame) != PacketLength+2+3 {
		t.Errorf("frame length = %d, want %d (three escapes)", len(frame), PacketLength+5)
	}

	d := NewDecoder()
	packets := feedBytes(d, frame)
	if len(packets) != 1 {
		t.Fatalf("expected 1 packet, got %d", len(packets))
	}
	if !bytes.Equal(packets[0], body) {
		t.Errorf("escaped control bytes did not survive the round trip: %v", packets[0])
	}
}

func TestEncodeFrame_WrongLength(t *testing.T) {
	if _, err := EncodeFrame(RawPacket{1, 2, 3}); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("error = %v, want ErrInvalidLength", err)
	}
	if _, err := EncodeFrame(nil); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("error = %v, want ErrInvalidLength", err)
	}
}

func TestEncodeFrame_BackToBackFrames(t *testing.T) {
	bodies := [][]byte{testPacketBody(), bytes.Repeat([]byte{0x0D}, PacketLength)}

	var stream []byte
	for _, body := range bodies {
		frame, err := EncodeFrame(body)
		if err != nil {
			t.Fatalf("EncodeFrame error: %v", err)
		}
		stream = append(stream, frame...)
	}

	d := NewDecoder()
	packets := feedBytes(d, stream)
	if len(packets) != len(bodies) {
		t.Fatalf("expected %d packets, got %d", len(bodies), len(packets))
	}
	for i := range bodies {
		if !bytes.Equal(packets[i], bodies[i]) {
			t.Errorf("packet %d mismatch", i)
		}
	}
}
