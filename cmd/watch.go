// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Robin Achterberg, Thermetra

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/Thermetra/thermoscope/pkg/ember"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	watchShowAll       bool
	watchStatsInterval int
	watchTextMode      bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor link health and sensor readings",
	Long: `Track frames, rejections and anomalous readings with live statistics.

Every frame is parsed and validated:
  - Discarded frames (wrong length at frame end)
  - Rejected readings (battery voltage out of range)
  - Anomalous values (implausible temperature, battery or RTD range warnings)
  - Statistics and trends (frame rate, error rate, valid percentage)

By default a full-screen dashboard is shown; it reconnects automatically if
the link drops. Use --text for plain line output with periodic statistics
summaries instead.

By default only problems are displayed in the event log. Use --show-all to
log every valid reading too.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchShowAll, "show-all", false, "Show all readings (not just problems)")
	watchCmd.Flags().IntVar(&watchStatsInterval, "stats-interval", 10, "Statistics update interval (seconds, text mode)")
	watchCmd.Flags().BoolVar(&watchTextMode, "text", false, "Plain text output instead of the dashboard")
}

// streamEvent is the outcome of one parsed frame.
type streamEvent struct {
	reading  *ember.SensorReading
	warnings []ember.ValidationError
	parseErr error
	at       time.Time
}

// Dashboard messages. The reader goroutine batches stream events so the TUI
// redraws at most every flushInterval under load.
type streamBatchMsg struct {
	events   []streamEvent
	bytes    int
	discards uint64
}
type streamSyncMsg struct {
	skippedBytes int
}
type streamDisconnectMsg struct {
	err     error
	retryIn time.Duration
}
type streamConnectMsg struct {
	info string
}

const flushInterval = 50 * time.Millisecond

func runWatch(cmd *cobra.Command, args []string) error {
	if watchTextMode {
		return runWatchText()
	}
	return runWatchTUI()
}

// runWatchTUI runs the full-screen dashboard with automatic reconnection.
func runWatchTUI() error {
	if portName == "" && wsURL == "" {
		return fmt.Errorf("either --port or --url must be specified")
	}

	// Decoder/parser warnings would corrupt the alternate screen; the
	// dashboard surfaces them structurally instead.
	ember.SetLogger(nil)

	m := newWatchModel(watchShowAll)
	p := tea.NewProgram(m)

	go watchStreamLoop(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}

// watchStreamLoop feeds the dashboard, reopening the connection with
// exponential backoff when it drops.
func watchStreamLoop(p *tea.Program) {
	backoff := time.Second
	const maxBackoff = 30 * time.Second

	for {
		conn, connInfo, err := OpenConnection()
		if err != nil {
			p.Send(streamDisconnectMsg{err: err, retryIn: backoff})
			time.Sleep(backoff)
			if backoff *= 2; backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}
		p.Send(streamConnectMsg{info: connInfo})
		backoff = time.Second

		readErr := feedDashboard(p, conn)
		conn.Close()
		p.Send(streamDisconnectMsg{err: readErr, retryIn: backoff})
		time.Sleep(backoff)
	}
}

// feedDashboard runs the decode loop until the connection fails, flushing
// batched events to the program every flushInterval.
func feedDashboard(p *tea.Program, conn Connection) error {
	decoder := ember.NewDecoder()
	parser := ember.NewParser(ember.NewRTDTable())
	buf := make([]byte, 128)

	synchronized := false
	bytesBeforeSync := 0
	var pending []streamEvent
	pendingBytes := 0
	lastFlush := time.Now()

	flush := func() {
		if len(pending) == 0 && pendingBytes == 0 {
			return
		}
		p.Send(streamBatchMsg{events: pending, bytes: pendingBytes, discards: decoder.Discards()})
		pending = nil
		pendingBytes = 0
		lastFlush = time.Now()
	}

	for {
		n, err := conn.Read(buf)
		if err != nil {
			flush()
			return err
		}
		pendingBytes += n

		for i := 0; i < n; i++ {
			packet := decoder.DecodeByte(buf[i])
			if packet == nil {
				if !synchronized {
					bytesBeforeSync++
				}
				continue
			}
			if !synchronized {
				synchronized = true
				p.Send(streamSyncMsg{skippedBytes: bytesBeforeSync})
			}

			event := streamEvent{at: time.Now()}
			event.reading, event.parseErr = parser.Parse(packet)
			if event.parseErr == nil {
				event.warnings = ember.ValidateReading(event.reading)
			}
			pending = append(pending, event)
		}

		if time.Since(lastFlush) >= flushInterval {
			flush()
		}
	}
}

// runWatchText runs the monitor in plain text mode.
func runWatchText() error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Thermoscope - Link Monitor\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Statistics interval: %d seconds\n", watchStatsInterval)
	if watchShowAll {
		fmt.Printf("Mode: All readings\n")
	} else {
		fmt.Printf("Mode: Problems only\n")
	}
	fmt.Printf("Press Ctrl+C to exit\n\n")

	decoder := ember.NewDecoder()
	parser := ember.NewParser(ember.NewRTDTable())
	stats := ember.NewStatistics()
	buf := make([]byte, 128)

	// Sync tracking - stay quiet until the first complete frame
	synchronized := false
	bytesBeforeSync := 0

	statsTicker := time.NewTicker(time.Duration(watchStatsInterval) * time.Second)
	defer statsTicker.Stop()

	// Channel for non-blocking reads so the stats ticker keeps firing
	dataChan := make(chan []byte, 10)
	errChan := make(chan error, 1)
	go func() {
		for {
			n, err := conn.Read(buf)
			if err != nil {
				errChan <- err
				return
			}
			data := make([]byte, n)
			copy(data, buf[:n])
			dataChan <- data
		}
	}()

	for {
		select {
		case data := <-dataChan:
			stats.AddBytes(len(data))
			for _, b := range data {
				packet := decoder.DecodeByte(b)
				if packet == nil {
					if !synchronized {
						bytesBeforeSync++
					}
					continue
				}
				if !synchronized {
					synchronized = true
					if bytesBeforeSync > 0 {
						fmt.Printf("[SYNC] Synchronized after %d bytes\n\n", bytesBeforeSync)
					} else {
						fmt.Printf("[SYNC] Synchronized\n\n")
					}
				}

				now := time.Now()
				reading, parseErr := parser.Parse(packet)
				var warnings []ember.ValidationError
				if parseErr == nil {
					warnings = ember.ValidateReading(reading)
				}
				stats.Update(reading, parseErr, warnings)
				stats.SetFramesDiscarded(decoder.Discards())

				switch {
				case parseErr != nil:
					fmt.Printf("[%s] \033[1;31mREJECTED:\033[0m %v\n  raw %s\n\n",
						now.Format("15:04:05.000"), parseErr, packet)
				case len(warnings) > 0:
					fmt.Println(ember.FormatReadingLine(now, reading))
					for _, w := range warnings {
						fmt.Printf("    \033[1;33mWARNING:\033[0m %s\n", w.Message)
					}
				case watchShowAll:
					fmt.Println(ember.FormatReadingLine(now, reading))
				}
			}

		case err := <-errChan:
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				fmt.Println()
				fmt.Print(stats.String())
				return nil
			}
			return fmt.Errorf("read error: %v", err)

		case <-statsTicker.C:
			stats.SetFramesDiscarded(decoder.Discards())
			fmt.Println()
			fmt.Print(stats.String())
			fmt.Println()
		}
	}
}
