// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"encoding/binary"
	"fmt"
)

// Parser decodes raw packets into sensor readings. It holds only a reference
// to an immutable CalibrationTable, so a single Parser may be shared by any
// number of goroutines.
type Parser struct {
	rtd *CalibrationTable
}

// NewParser creates a parser converting RTD resistances through the given
// calibration table.
func NewParser(table *CalibrationTable) *Parser {
	return &Parser{rtd: table}
}

// Parse maps an 18-byte packet to a SensorReading. It is a pure function of
// the packet and the calibration table: identical packets yield identical
// results regardless of call order.
//
// Failures are wrapped sentinel errors: ErrInvalidLength for a packet whose
// length is not PacketLength, ErrInvalidSensorValue for a negative RTD
// resistance, ErrInvalidSensorData when the constructed reading fails
// validation. A calibration lookup failure does not abort the parse; the
// reading is produced with RTDTemperature 0 and the failure is logged.
func (p *Parser) Parse(packet RawPacket) (*SensorReading, error) {
	if len(packet) != PacketLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(packet), PacketLength)
	}

	temperature := float64(binary.LittleEndian.Uint32(packet[offsetTemperature:offsetTemperature+4])) / 10000.0
	if temperature < MinPlausibleTemperature || temperature > MaxPlausibleTemperature {
		Logf("ember: temperature %.4f degC outside plausible range", temperature)
	}

	deviceID := fmt.Sprintf("%d %d %d %d",
		packet[offsetDeviceID], packet[offsetDeviceID+1],
		packet[offsetDeviceID+2], packet[offsetDeviceID+3])

	rtdRaw := binary.LittleEndian.Uint16(packet[offsetRTD : offsetRTD+2])
	rtdResistance := float64(rtdRaw) * 400.0 / 32768.0
	// Unreachable with a 16-bit unsigned field, kept in case the field
	// width or scaling ever changes.
	if rtdResistance < 0 {
		return nil, fmt.Errorf("%w: negative RTD resistance %.4f", ErrInvalidSensorValue, rtdResistance)
	}

	rtdTemperature, err := p.rtd.Lookup(rtdResistance)
	if err != nil {
		Logf("ember: RTD conversion failed for %.4f ohm: %v", rtdResistance, err)
		rtdTemperature = 0
	}

	thermocouple := float64(binary.LittleEndian.Uint16(packet[offsetThermocouple : offsetThermocouple+2]))

	batteryVoltage := float64(binary.LittleEndian.Uint16(packet[offsetBattery:offsetBattery+2])) / 1000.0
	if batteryVoltage < MinBatteryVoltage || batteryVoltage > MaxBatteryVoltage {
		Logf("ember: battery voltage %.4f V out of range", batteryVoltage)
	}

	reading := &SensorReading{
		Temperature:    temperature,
		DeviceID:       deviceID,
		RTDResistance:  rtdResistance,
		RTDTemperature: rtdTemperature,
		Thermocouple:   thermocouple,
		BatteryVoltage: batteryVoltage,
		Raw:            packet,
	}

	if err := reading.Validate(); err != nil {
		return nil, err
	}
	return reading, nil
}
