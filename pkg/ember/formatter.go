// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"fmt"
	"strings"
	"time"
)

// FormatReading formats a reading as a multi-line human-readable block.
func FormatReading(r *SensorReading) string {
	result := fmt.Sprintf("  Temperature:  %.4f degC\n", r.Temperature)
	result += fmt.Sprintf("  Device ID:    %s\n", r.DeviceID)
	result += fmt.Sprintf("  RTD:          %.4f ohm (%d degC)\n", r.RTDResistance, r.RTDTemperature)
	result += fmt.Sprintf("  Thermocouple: %.0f counts\n", r.Thermocouple)
	result += fmt.Sprintf("  Battery:      %.3f V\n", r.BatteryVoltage)
	return result
}

// FormatReadingLine formats a reading as a single log line with a timestamp.
func FormatReadingLine(t time.Time, r *SensorReading) string {
	return fmt.Sprintf("[%s] dev %-15s temp %9.4f degC  rtd %8.4f ohm (%4d degC)  tc %5.0f  batt %.3f V",
		t.Format("15:04:05.000"), r.DeviceID, r.Temperature,
		r.RTDResistance, r.RTDTemperature, r.Thermocouple, r.BatteryVoltage)
}

// FormatUptime formats a duration as a human-friendly string.
func FormatUptime(d time.Duration) string {
	seconds := uint64(d.Seconds())
	if seconds == 0 {
		return "0 seconds"
	}

	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	seconds %= 60
	minutes %= 60
	hours %= 24

	parts := []string{}
	add := func(n uint64, unit string) {
		if n == 1 {
			parts = append(parts, "1 "+unit)
		} else if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %ss", n, unit))
		}
	}
	add(days, "day")
	add(hours, "hour")
	add(minutes, "minute")
	if seconds > 0 || len(parts) == 0 {
		add(seconds, "second")
	}

	if len(parts) == 1 {
		return parts[0]
	}
	last := parts[len(parts)-1]
	rest := strings.Join(parts[:len(parts)-1], ", ")
	return rest + " and " + last
}
