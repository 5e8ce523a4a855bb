// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"errors"
	"fmt"
	"time"
)

// Statistics tracks stream health: frame, reading and error counts plus
// derived rates.
type Statistics struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	// Counters
	BytesRead       uint64
	FramesDiscarded uint64 // mirrored from Decoder.Discards
	TotalFrames     uint64 // frames handed to the parser
	ValidReadings   uint64
	LengthErrors    uint64
	ValueErrors     uint64
	DataErrors      uint64
	AnomalousValues uint64
	ImplausibleTemp uint64
	BatteryRange    uint64
	ResistanceRange uint64

	// Rates (calculated)
	FrameRate float64 // frames/sec
	ErrorRate float64 // errors/sec
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// Update records the outcome of parsing one frame.
func (s *Statistics) Update(reading *SensorReading, parseErr error, warnings []ValidationError) {
	s.TotalFrames++

	if parseErr != nil {
		switch {
		case errors.Is(parseErr, ErrInvalidLength):
			s.LengthErrors++
		case errors.Is(parseErr, ErrInvalidSensorValue):
			s.ValueErrors++
		default:
			s.DataErrors++
		}
		return
	}

	if len(warnings) > 0 {
		for _, w := range warnings {
			switch w.Type {
			case AnomalyImplausibleTemp:
				s.ImplausibleTemp++
			case AnomalyBatteryRange:
				s.BatteryRange++
			case AnomalyResistanceRange:
				s.ResistanceRange++
			}
			s.AnomalousValues++
		}
	} else {
		s.ValidReadings++
	}

	s.LastUpdateTime = time.Now()
}

// AddBytes adds to the raw byte counter.
func (s *Statistics) AddBytes(n int) {
	s.BytesRead += uint64(n)
}

// SetFramesDiscarded mirrors the decoder's discard counter into the summary.
func (s *Statistics) SetFramesDiscarded(n uint64) {
	s.FramesDiscarded = n
}

// CalculateRates calculates frame and error rates
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed > 0 {
		s.FrameRate = float64(s.TotalFrames) / elapsed
		errorCount := s.FramesDiscarded + s.LengthErrors + s.ValueErrors + s.DataErrors + s.AnomalousValues
		s.ErrorRate = float64(errorCount) / elapsed
	}
}

// String returns a formatted statistics summary
func (s *Statistics) String() string {
	s.CalculateRates()

	var validPercent, discardPercent, parseErrorPercent, anomalousPercent float64
	parseErrors := s.LengthErrors + s.ValueErrors + s.DataErrors
	if s.TotalFrames > 0 {
		validPercent = float64(s.ValidReadings) * 100.0 / float64(s.TotalFrames)
		discardPercent = float64(s.FramesDiscarded) * 100.0 / float64(s.TotalFrames)
		parseErrorPercent = float64(parseErrors) * 100.0 / float64(s.TotalFrames)
		anomalousPercent = float64(s.AnomalousValues) * 100.0 / float64(s.TotalFrames)
	}

	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Bytes Read:      %8d\n", s.BytesRead)
	result += fmt.Sprintf("Total Frames:    %8d\n", s.TotalFrames)
	result += fmt.Sprintf("Valid Readings:  %8d (%.1f%%)\n", s.ValidReadings, validPercent)

	if s.FramesDiscarded > 0 {
		result += fmt.Sprintf("Discarded Frames:%8d (%.1f%%)\n", s.FramesDiscarded, discardPercent)
	}
	if parseErrors > 0 {
		result += fmt.Sprintf("Parse Errors:    %8d (%.1f%%)\n", parseErrors, parseErrorPercent)
		if s.LengthErrors > 0 {
			result += fmt.Sprintf("  Bad Length:       %5d\n", s.LengthErrors)
		}
		if s.ValueErrors > 0 {
			result += fmt.Sprintf("  Bad Values:       %5d\n", s.ValueErrors)
		}
		if s.DataErrors > 0 {
			result += fmt.Sprintf("  Rejected Data:    %5d\n", s.DataErrors)
		}
	}
	if s.AnomalousValues > 0 {
		result += fmt.Sprintf("Anomalous Values:%8d (%.1f%%)\n", s.AnomalousValues, anomalousPercent)
		if s.ImplausibleTemp > 0 {
			result += fmt.Sprintf("  Implausible Temp: %5d\n", s.ImplausibleTemp)
		}
		if s.BatteryRange > 0 {
			result += fmt.Sprintf("  Battery Range:    %5d\n", s.BatteryRange)
		}
		if s.ResistanceRange > 0 {
			result += fmt.Sprintf("  RTD Range:        %5d\n", s.ResistanceRange)
		}
	}

	result += fmt.Sprintf("Frame Rate:      %8.1f frames/sec\n", s.FrameRate)
	result += fmt.Sprintf("Error Rate:      %8.1f errors/sec\n", s.ErrorRate)
	result += "================================\n"

	return result
}

// Reset resets all statistics counters
func (s *Statistics) Reset() {
	now := time.Now()
	s.StartTime = now
	s.LastUpdateTime = now
	s.BytesRead = 0
	s.FramesDiscarded = 0
	s.TotalFrames = 0
	s.ValidReadings = 0
	s.LengthErrors = 0
	s.ValueErrors = 0
	s.DataErrors = 0
	s.AnomalousValues = 0
	s.ImplausibleTemp = 0
	s.BatteryRange = 0
	s.ResistanceRange = 0
	s.FrameRate = 0
	s.ErrorRate = 0
}
