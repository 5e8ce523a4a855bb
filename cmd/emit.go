// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Robin Achterberg, Thermetra

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Thermetra/thermoscope/pkg/ember"
	"github.com/spf13/cobra"
)

var (
	emitTemperature float64
	emitDeviceID    string
	emitResistance  float64
	emitTC          uint16
	emitBattery     float64
	emitCount       int
	emitInterval    int
	emitHex         bool
)

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Synthesize Ember frames from engineering values",
	Long: `Build valid Ember frames from engineering values and either print them as
hex or write them to the connection.

Values are scaled into the wire fields with the inverse of the decoding
scalings, and control bytes in the body are escaped. With --hex (or when no
connection is given) the framed bytes are printed one frame per line;
otherwise each frame is written to the serial port or WebSocket, which is
useful for loopback and bridge bench testing.

Examples:
  # Print one frame as hex
  thermoscope emit --temp 21.5 --battery 3.3 --hex

  # Send ten frames, one per second, through a loopback adapter
  thermoscope emit --port /dev/ttyUSB0 --count 10 --interval 1000`,
	RunE: runEmit,
}

func init() {
	rootCmd.AddCommand(emitCmd)
	emitCmd.Flags().Float64Var(&emitTemperature, "temp", 21.5, "Temperature in degC")
	emitCmd.Flags().StringVar(&emitDeviceID, "device", "1.2.3.4", "Device ID as four dot-separated bytes")
	emitCmd.Flags().Float64Var(&emitResistance, "rtd", 108.3068, "RTD resistance in ohms")
	emitCmd.Flags().Uint16Var(&emitTC, "tc", 0, "Thermocouple raw counts")
	emitCmd.Flags().Float64Var(&emitBattery, "battery", 3.3, "Battery voltage in volts")
	emitCmd.Flags().IntVar(&emitCount, "count", 1, "Number of frames to emit")
	emitCmd.Flags().IntVar(&emitInterval, "interval", 1000, "Delay between frames in milliseconds")
	emitCmd.Flags().BoolVar(&emitHex, "hex", false, "Print frames as hex instead of writing to the connection")
}

// parseDeviceID parses "a.b.c.d" into four bytes.
func parseDeviceID(s string) ([4]byte, error) {
	var id [4]byte
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return id, fmt.Errorf("device ID must have four dot-separated components, got %q", s)
	}
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return id, fmt.Errorf("device ID component %q is not a byte value", part)
		}
		id[i] = byte(v)
	}
	return id, nil
}

func runEmit(cmd *cobra.Command, args []string) error {
	deviceID, err := parseDeviceID(emitDeviceID)
	if err != nil {
		return err
	}

	fields := ember.PacketFields{
		Temperature:    emitTemperature,
		DeviceID:       deviceID,
		RTDResistance:  emitResistance,
		Thermocouple:   emitTC,
		BatteryVoltage: emitBattery,
	}

	packet, err := ember.EncodePacket(fields)
	if err != nil {
		return err
	}
	frame, err := ember.EncodeFrame(packet)
	if err != nil {
		return err
	}

	hexOnly := emitHex || (portName == "" && wsURL == "")

	var conn Connection
	if !hexOnly {
		var connInfo string
		conn, connInfo, err = OpenConnection()
		if err != nil {
			return err
		}
		defer conn.Close()
		fmt.Printf("Thermoscope - Frame Emitter\n")
		fmt.Printf("Connection: %s\n", connInfo)
		fmt.Printf("Frames: %d, interval %d ms\n\n", emitCount, emitInterval)
	}

	for i := 0; i < emitCount; i++ {
		if i > 0 && emitInterval > 0 {
			time.Sleep(time.Duration(emitInterval) * time.Millisecond)
		}

		if hexOnly {
			var sb strings.Builder
			for j, b := range frame {
				if j > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprintf(&sb, "%02X", b)
			}
			fmt.Println(sb.String())
			continue
		}

		if _, err := conn.Write(frame); err != nil {
			return fmt.Errorf("write failed on frame %d: %v", i+1, err)
		}
		fmt.Printf("Sent frame %d/%d (%d bytes)\n", i+1, emitCount, len(frame))
	}

	return nil
}
