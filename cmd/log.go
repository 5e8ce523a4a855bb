// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Robin Achterberg, Thermetra

package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Thermetra/thermoscope/pkg/ember"
	"github.com/spf13/cobra"
)

var (
	logShowRaw    bool
	logRecordFile string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Stream sensor readings in human-readable format",
	Long: `Continuously decode and display Ember sensor readings as they arrive.

Each valid frame is printed as one line with timestamp, device ID,
temperature, RTD resistance and temperature, thermocouple counts and battery
voltage. Rejected frames are reported inline without stopping the stream.

Use --raw to append the 18-byte frame body as hex, and --record to append
every decoded frame to a CBOR capture file for later replay with 'dump'.

Supports both serial and WebSocket connections.`,
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().BoolVar(&logShowRaw, "raw", false, "Append raw frame bytes as hex")
	logCmd.Flags().StringVar(&logRecordFile, "record", "", "Append decoded frames to a CBOR capture file")
}

func runLog(cmd *cobra.Command, args []string) error {
	// Open connection (serial or WebSocket)
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	var recorder *ember.RecordWriter
	if logRecordFile != "" {
		f, err := os.OpenFile(logRecordFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open capture file: %v", err)
		}
		defer f.Close()
		recorder = ember.NewRecordWriter(f)
	}

	fmt.Printf("Thermoscope - Reading Log\n")
	fmt.Printf("Connection: %s\n", connInfo)
	if logRecordFile != "" {
		fmt.Printf("Recording to: %s\n", logRecordFile)
	}
	fmt.Printf("Press Ctrl+C to exit\n\n")

	decoder := ember.NewDecoder()
	parser := ember.NewParser(ember.NewRTDTable())
	buf := make([]byte, 128)

	for {
		n, err := conn.Read(buf)
		if err != nil {
			// For WebSocket connections, a read error usually means
			// the connection is permanently closed - exit gracefully
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				return nil
			}
			log.Printf("Read error: %v", err)
			continue
		}

		for i := 0; i < n; i++ {
			packet := decoder.DecodeByte(buf[i])
			if packet == nil {
				continue
			}
			now := time.Now()

			if recorder != nil {
				if err := recorder.Write(now, packet); err != nil {
					log.Printf("Record error: %v", err)
				}
			}

			reading, err := parser.Parse(packet)
			if err != nil {
				fmt.Printf("[%s] REJECTED: %v  raw %s\n", now.Format("15:04:05.000"), err, packet)
				continue
			}

			line := ember.FormatReadingLine(now, reading)
			if logShowRaw {
				line += "  raw " + packet.String()
			}
			fmt.Println(line)
		}
	}
}
