// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Robin Achterberg, Thermetra

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Thermetra/thermoscope/pkg/ember"
	"github.com/spf13/cobra"
)

var checkTimeout int

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test connection by waiting for a valid sensor reading",
	Long: `Wait for a valid Ember sensor reading on the connection until timeout.

This command connects to a serial port or WebSocket and waits for a complete
frame that parses into a valid reading. Line noise and malformed frames are
skipped silently while waiting.

Exit codes:
  0 - Valid reading received before timeout
  1 - Timeout reached without a valid reading
  2 - Connection error

Useful for testing connectivity to a transmitter or the WebSocket bridge.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVar(&checkTimeout, "timeout", 10, "Timeout in seconds to wait for a reading")
}

func runCheck(cmd *cobra.Command, args []string) error {
	// Open connection (serial or WebSocket)
	conn, connInfo, err := OpenConnection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	fmt.Printf("Thermoscope - Connection Check\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Timeout: %d seconds\n", checkTimeout)
	fmt.Printf("Waiting for valid sensor reading...\n\n")

	decoder := ember.NewDecoder()
	parser := ember.NewParser(ember.NewRTDTable())
	buf := make([]byte, 128)

	readingChan := make(chan *ember.SensorReading, 1)
	errChan := make(chan error, 1)

	// Reader goroutine
	go func() {
		bytesBeforeSync := 0
		rejectedFrames := 0
		for {
			n, err := conn.Read(buf)
			if err != nil {
				errChan <- err
				return
			}

			for i := 0; i < n; i++ {
				packet := decoder.DecodeByte(buf[i])
				if packet == nil {
					bytesBeforeSync++
					continue
				}

				reading, parseErr := parser.Parse(packet)
				if parseErr != nil {
					rejectedFrames++
					continue
				}

				if rejectedFrames > 0 {
					fmt.Printf("(consumed %d bytes and %d rejected frames before sync)\n",
						bytesBeforeSync, rejectedFrames)
				}
				readingChan <- reading
				return
			}
		}
	}()

	select {
	case reading := <-readingChan:
		fmt.Printf("SUCCESS: Received valid reading\n")
		fmt.Print(ember.FormatReading(reading))
		os.Exit(0)

	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "Read error: %v\n", err)
		os.Exit(2)

	case <-time.After(time.Duration(checkTimeout) * time.Second):
		fmt.Fprintf(os.Stderr, "TIMEOUT: No valid reading received within %d seconds\n", checkTimeout)
		os.Exit(1)
	}

	return nil
}
