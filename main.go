// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra
//
// Thermoscope - Ember Wireless Sensor Monitor
//
// A CLI tool for monitoring Thermetra WTX wireless sensor transmitters
// over their serial radio bridge.

package main

import (
	"os"

	"github.com/Thermetra/thermoscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
