// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"fmt"
	"strings"
)

// RawPacket is the body of one decoded Ember frame: PacketLength unsigned
// bytes with framing and escape sequences already removed. A RawPacket is
// produced once per complete frame and owned by the pipeline until parsed.
type RawPacket []byte

// String renders the packet as space-separated hex bytes.
func (p RawPacket) String() string {
	var sb strings.Builder
	for i, b := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// SensorReading is one decoded transmission from a WTX sensor. Readings are
// constructed by Parser.Parse, are immutable afterwards, and carry the
// originating packet for audit.
type SensorReading struct {
	// Temperature is the primary probe temperature in degC (advisory
	// plausible range -100..100, not enforced).
	Temperature float64

	// DeviceID is the four-byte transmitter identity with each byte kept
	// as its own decimal component, space-joined in wire order.
	DeviceID string

	// RTDResistance is the RTD element resistance in ohms.
	RTDResistance float64

	// RTDTemperature is the nearest calibrated temperature in degC for
	// RTDResistance, or 0 when calibration lookup failed.
	RTDTemperature int

	// Thermocouple is the raw thermocouple ADC count. The transmitter
	// applies no scaling.
	Thermocouple float64

	// BatteryVoltage is the transmitter battery voltage in volts.
	BatteryVoltage float64

	// Raw is the originating packet.
	Raw RawPacket
}

// Validate re-checks the hard invariants of a reading: the raw packet must
// be exactly PacketLength bytes and the battery voltage must lie inside
// [MinBatteryVoltage, MaxBatteryVoltage]. Out-of-range temperature and
// thermocouple values do not fail validation.
func (r *SensorReading) Validate() error {
	if len(r.Raw) != PacketLength {
		return fmt.Errorf("%w: raw packet is %d bytes", ErrInvalidSensorData, len(r.Raw))
	}
	if r.BatteryVoltage < MinBatteryVoltage || r.BatteryVoltage > MaxBatteryVoltage {
		return fmt.Errorf("%w: battery voltage %.4f V outside [%.0f, %.0f]",
			ErrInvalidSensorData, r.BatteryVoltage, MinBatteryVoltage, MaxBatteryVoltage)
	}
	return nil
}
