// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Robin Achterberg, Thermetra

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.bug.st/serial/enumerator"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List available serial ports",
	Long: `Enumerate serial ports on this machine with USB metadata where available.

Use this to find the radio bridge device to pass to --port. Bridges show up
as USB serial adapters; the product string usually identifies them.`,
	RunE: runPorts,
}

func init() {
	rootCmd.AddCommand(portsCmd)
}

func runPorts(cmd *cobra.Command, args []string) error {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return fmt.Errorf("failed to enumerate serial ports: %v", err)
	}

	if len(ports) == 0 {
		fmt.Println("No serial ports found")
		return nil
	}

	for _, port := range ports {
		if port.Product != "" {
			fmt.Printf("%s - %s\n", port.Name, port.Product)
		} else {
			fmt.Printf("%s\n", port.Name)
		}
		if port.IsUSB {
			fmt.Printf("    USB ID: %s:%s", port.VID, port.PID)
			if port.SerialNumber != "" {
				fmt.Printf("  Serial: %s", port.SerialNumber)
			}
			fmt.Println()
		}
	}

	return nil
}
