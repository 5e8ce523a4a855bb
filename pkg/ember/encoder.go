// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"encoding/binary"
	"fmt"
	"math"
)

// PacketFields holds the engineering values written into a frame body.
// EncodePacket applies the inverse of the field scalings used by Parse, so
// an encoded packet parses back to these values within rounding error.
type PacketFields struct {
	Temperature    float64 // degC, scaled to u32 tenths of millidegrees
	DeviceID       [4]byte // transmitter identity, wire order
	RTDResistance  float64 // ohms, scaled to u16 counts of 400/32768 ohm
	Thermocouple   uint16  // raw ADC counts, written as-is
	BatteryVoltage float64 // volts, scaled to u16 millivolts
}

// EncodePacket builds an 18-byte packet body from engineering values. It
// fails when a value does not fit its wire field: the wire carries only
// unsigned quantities, so negative temperatures, resistances and voltages
// are not representable. Reserved offsets are written as zero.
func EncodePacket(f PacketFields) (RawPacket, error) {
	tempRaw, err := scaleToUint32("temperature", f.Temperature, 10000.0)
	if err != nil {
		return nil, err
	}
	rtdRaw, err := scaleToUint16("RTD resistance", f.RTDResistance, 32768.0/400.0)
	if err != nil {
		return nil, err
	}
	battRaw, err := scaleToUint16("battery voltage", f.BatteryVoltage, 1000.0)
	if err != nil {
		return nil, err
	}

	packet := make(RawPacket, PacketLength)
	binary.LittleEndian.PutUint32(packet[offsetTemperature:], tempRaw)
	copy(packet[offsetDeviceID:offsetDeviceID+4], f.DeviceID[:])
	binary.LittleEndian.PutUint16(packet[offsetRTD:], rtdRaw)
	binary.LittleEndian.PutUint16(packet[offsetThermocouple:], f.Thermocouple)
	binary.LittleEndian.PutUint16(packet[offsetBattery:], battRaw)
	return packet, nil
}

// EncodeFrame wraps a packet body in wire framing: a frame-start byte, the
// body with every control-code value escaped, and a frame-end byte. The
// result fed byte-by-byte to a Decoder yields the original packet.
func EncodeFrame(packet RawPacket) ([]byte, error) {
	if len(packet) != PacketLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(packet), PacketLength)
	}

	frame := make([]byte, 0, PacketLength+6)
	frame = append(frame, FrameStart)
	for _, b := range packet {
		if b == EscapeByte || b == FrameStart || b == FrameEnd {
			frame = append(frame, EscapeByte)
		}
		frame = append(frame, b)
	}
	frame = append(frame, FrameEnd)
	return frame, nil
}

func scaleToUint32(name string, value, scale float64) (uint32, error) {
	raw := math.Round(value * scale)
	if math.IsNaN(raw) || raw < 0 || raw > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s %v does not fit a 32-bit field", ErrInvalidSensorValue, name, value)
	}
	return uint32(raw), nil
}

func scaleToUint16(name string, value, scale float64) (uint16, error) {
	raw := math.Round(value * scale)
	if math.IsNaN(raw) || raw < 0 || raw > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %s %v does not fit a 16-bit field", ErrInvalidSensorValue, name, value)
	}
	return uint16(raw), nil
}
