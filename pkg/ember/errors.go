// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import "errors"

// Parse and lookup failures are reported as wrapped sentinel errors so
// callers can classify them with errors.Is. Framing discards are not errors:
// the decoder drops bad frames silently and keeps listening.
var (
	// ErrInvalidLength is returned when Parse is handed a packet whose
	// length is not PacketLength. With a correctly used Decoder upstream
	// this indicates a caller bug, but Parse checks independently.
	ErrInvalidLength = errors.New("invalid packet length")

	// ErrInvalidSensorValue is returned when a decoded field violates a
	// hard invariant, such as a negative RTD resistance.
	ErrInvalidSensorValue = errors.New("invalid sensor value")

	// ErrInvalidSensorData is returned when a fully decoded reading fails
	// validation (battery voltage outside [0, 10] V or wrong raw length).
	ErrInvalidSensorData = errors.New("invalid sensor data")

	// ErrInvalidInput is returned by CalibrationTable.Lookup for
	// non-finite or negative resistances, and for an empty table.
	ErrInvalidInput = errors.New("invalid lookup input")
)
