// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

// Package ember provides a Go implementation of the Ember wireless sensor
// link protocol.
//
// Ember is the one-way framed binary protocol spoken by Thermetra WTX
// battery transmitters over their serial radio bridge. This package provides
// frame decoding, packet parsing into engineering units, RTD calibration
// lookup, reading validation, and capture file handling.
package ember

// Protocol framing bytes. The link reuses ASCII BS/CR/LF as its control
// alphabet; any of these values occurring as data inside a frame arrives
// escaped.
const (
	EscapeByte = 0x08
	FrameStart = 0x0D
	FrameEnd   = 0x0A
)

// PacketLength is the fixed frame body size. Ember frames carry no length
// prefix and no checksum; the body is always exactly this many data bytes.
const PacketLength = 18

// Packet field offsets. Multi-byte fields are little-endian. Offsets 0, 5-6
// and 17 are reserved by the transmitter firmware and ignored here.
const (
	offsetTemperature  = 1  // 4 bytes, u32 / 10000 -> degC
	offsetDeviceID     = 7  // 4 bytes, kept as separate decimal components
	offsetRTD          = 11 // 2 bytes, u16 * 400 / 32768 -> ohms
	offsetThermocouple = 13 // 2 bytes, raw ADC count
	offsetBattery      = 15 // 2 bytes, u16 / 1000 -> volts
)

// Hard validation bounds. A reading whose battery voltage falls outside this
// range is rejected outright.
const (
	MinBatteryVoltage = 0.0
	MaxBatteryVoltage = 10.0
)

// Advisory bounds. Values outside these ranges are logged and flagged but do
// not reject the reading.
const (
	MinPlausibleTemperature = -100.0
	MaxPlausibleTemperature = 100.0
)

// baseTemperature is the temperature of calibration table index 0 in degC.
const baseTemperature = -200
