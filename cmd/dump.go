// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Robin Achterberg, Thermetra

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Thermetra/thermoscope/pkg/ember"
	"github.com/spf13/cobra"
)

var dumpStats bool

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Replay a capture file through the parser",
	Long: `Replay a CBOR capture file written by 'log --record' through the packet
parser, printing one reading line per captured frame with its original
capture timestamp.

Rejected frames are reported inline. Use --stats for a summary at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolVar(&dumpStats, "stats", false, "Print a statistics summary at the end")
}

func runDump(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open capture file: %v", err)
	}
	defer f.Close()

	parser := ember.NewParser(ember.NewRTDTable())
	reader := ember.NewRecordReader(f)
	stats := ember.NewStatistics()

	records := 0
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("capture file corrupt after %d records: %v", records, err)
		}
		records++

		reading, parseErr := parser.Parse(rec.Packet)
		var warnings []ember.ValidationError
		if parseErr == nil {
			warnings = ember.ValidateReading(reading)
		}
		stats.Update(reading, parseErr, warnings)
		stats.AddBytes(len(rec.Packet))

		if parseErr != nil {
			fmt.Printf("[%s] REJECTED: %v\n", rec.CapturedAt.Format("15:04:05.000"), parseErr)
			continue
		}
		fmt.Println(ember.FormatReadingLine(rec.CapturedAt, reading))
		for _, w := range warnings {
			fmt.Printf("    WARNING: %s\n", w.Message)
		}
	}

	if dumpStats {
		fmt.Println()
		fmt.Print(stats.String())
	} else {
		fmt.Printf("\n%d records replayed\n", records)
	}

	return nil
}
