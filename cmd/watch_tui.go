// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Robin Achterberg, Thermetra

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/Thermetra/thermoscope/pkg/ember"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Event log entry
type eventLogEntry struct {
	timestamp time.Time
	message   string
	isError   bool // true for rejections/disconnects, false for info/warnings
}

type watchTickMsg time.Time

// Dashboard model
type watchModel struct {
	showAll       bool
	connInfo      string
	connected     bool
	retryIn       time.Duration
	lastError     error
	stats         *ember.Statistics
	spin          spinner.Model
	eventLog      viewport.Model
	events        []eventLogEntry
	maxLogEntries int
	synchronized  bool
	skippedBytes  int
	lastReading   *ember.SensorReading
	lastReadingAt time.Time
	width         int
	height        int
	ready         bool
	quitting      bool
}

// Styles
var (
	watchTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	watchHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	watchLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	watchValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	watchErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	watchWarningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11"))

	watchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func newWatchModel(showAll bool) watchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = watchWarningStyle

	return watchModel{
		showAll:       showAll,
		stats:         ember.NewStatistics(),
		spin:          s,
		events:        make([]eventLogEntry, 0),
		maxLogEntries: 200,
		width:         80,
		height:        24,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		watchTickCmd(),
		tea.EnterAltScreen,
	)
}

func watchTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logHeight := m.logHeight()
		if !m.ready {
			m.eventLog = viewport.New(m.width-4, logHeight)
			m.ready = true
		} else {
			m.eventLog.Width = m.width - 4
			m.eventLog.Height = logHeight
		}
		m.refreshEventLog()

	case watchTickMsg:
		m.stats.CalculateRates()
		return m, watchTickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case streamConnectMsg:
		m.connected = true
		m.lastError = nil
		m.connInfo = msg.info
		m.synchronized = false
		m.skippedBytes = 0
		m.addEvent(fmt.Sprintf("Connected: %s", msg.info), false)

	case streamDisconnectMsg:
		m.connected = false
		m.lastError = msg.err
		m.retryIn = msg.retryIn
		m.synchronized = false
		if msg.err != nil {
			m.addEvent(fmt.Sprintf("Disconnected: %v (retrying in %s)", msg.err, msg.retryIn), true)
		} else {
			m.addEvent(fmt.Sprintf("Disconnected (retrying in %s)", msg.retryIn), true)
		}

	case streamSyncMsg:
		m.synchronized = true
		m.skippedBytes = msg.skippedBytes
		if msg.skippedBytes > 0 {
			m.addEvent(fmt.Sprintf("Synchronized after %d bytes", msg.skippedBytes), false)
		} else {
			m.addEvent("Synchronized", false)
		}

	case streamBatchMsg:
		m.stats.AddBytes(msg.bytes)
		m.stats.SetFramesDiscarded(msg.discards)
		for _, event := range msg.events {
			m.stats.Update(event.reading, event.parseErr, event.warnings)

			if event.parseErr != nil {
				m.addEvent(fmt.Sprintf("REJECTED: %v", event.parseErr), true)
				continue
			}

			m.lastReading = event.reading
			m.lastReadingAt = event.at
			for _, w := range event.warnings {
				m.addEvent(w.Message, false)
			}
			if m.showAll && len(event.warnings) == 0 {
				m.addEvent(fmt.Sprintf("dev %s  %.4f degC  batt %.3f V",
					event.reading.DeviceID, event.reading.Temperature,
					event.reading.BatteryVoltage), false)
			}
		}
		m.refreshEventLog()
	}

	return m, nil
}

func (m *watchModel) logHeight() int {
	h := m.height - 16 // header, sync line, stats and reading panels
	if h < 5 {
		h = 5
	}
	return h
}

func (m *watchModel) addEvent(message string, isError bool) {
	m.events = append(m.events, eventLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	})
	if len(m.events) > m.maxLogEntries {
		m.events = m.events[len(m.events)-m.maxLogEntries:]
	}
	m.refreshEventLog()
}

// refreshEventLog rebuilds the viewport content and follows the tail.
func (m *watchModel) refreshEventLog() {
	if !m.ready {
		return
	}
	var sb strings.Builder
	if len(m.events) == 0 {
		sb.WriteString(watchHeaderStyle.Render("  (no events yet)"))
	}
	for _, entry := range m.events {
		timestamp := entry.timestamp.Format("15:04:05.000")
		if entry.isError {
			sb.WriteString(fmt.Sprintf("%s %s\n",
				watchHeaderStyle.Render(timestamp),
				watchErrorStyle.Render("✗ "+entry.message)))
		} else {
			sb.WriteString(fmt.Sprintf("%s %s\n",
				watchHeaderStyle.Render(timestamp),
				watchWarningStyle.Render("ℹ "+entry.message)))
		}
	}
	m.eventLog.SetContent(sb.String())
	m.eventLog.GotoBottom()
}

func (m watchModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var s strings.Builder
	s.WriteString(watchTitleStyle.Render("THERMOSCOPE - LINK MONITOR"))
	s.WriteString("\n")
	mode := "Problems only"
	if m.showAll {
		mode = "All readings"
	}
	s.WriteString(watchHeaderStyle.Render(fmt.Sprintf("Mode: %s | Uptime: %s | Press 'q' to quit",
		mode, ember.FormatUptime(time.Since(m.stats.StartTime)))))
	s.WriteString("\n\n")

	// Connection and sync status
	switch {
	case !m.connected:
		s.WriteString(m.spin.View())
		if m.lastError != nil {
			s.WriteString(watchErrorStyle.Render(fmt.Sprintf("Disconnected: %v", m.lastError)))
			s.WriteString(watchHeaderStyle.Render(fmt.Sprintf(" (retrying in %s)", m.retryIn)))
		} else {
			s.WriteString(watchWarningStyle.Render("Connecting..."))
		}
	case !m.synchronized:
		s.WriteString(m.spin.View())
		s.WriteString(watchWarningStyle.Render(fmt.Sprintf("Waiting for synchronization on %s...", m.connInfo)))
	default:
		s.WriteString(watchValueStyle.Render("✓ " + m.connInfo))
		if m.skippedBytes > 0 {
			s.WriteString(watchHeaderStyle.Render(fmt.Sprintf(" (synchronized after %d bytes)", m.skippedBytes)))
		}
	}
	s.WriteString("\n\n")

	s.WriteString(watchBoxStyle.Render(m.statsView()))
	s.WriteString("\n\n")

	if m.lastReading != nil {
		s.WriteString(watchLabelStyle.Render("Latest Reading:"))
		s.WriteString("\n")
		s.WriteString(watchBoxStyle.Render(m.readingView()))
		s.WriteString("\n\n")
	}

	s.WriteString(watchLabelStyle.Render("Recent Events:"))
	s.WriteString("\n")
	if m.ready {
		s.WriteString(watchBoxStyle.Width(m.width - 4).Render(m.eventLog.View()))
	}

	return s.String()
}

func (m watchModel) statsView() string {
	m.stats.CalculateRates()

	var validPercent, errorPercent float64
	parseErrors := m.stats.LengthErrors + m.stats.ValueErrors + m.stats.DataErrors
	totalErrors := m.stats.FramesDiscarded + parseErrors + m.stats.AnomalousValues
	if m.stats.TotalFrames > 0 {
		validPercent = float64(m.stats.ValidReadings) * 100.0 / float64(m.stats.TotalFrames)
		errorPercent = float64(totalErrors) * 100.0 / float64(m.stats.TotalFrames)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		watchLabelStyle.Render("Frames:"), watchValueStyle.Render(fmt.Sprintf("%d", m.stats.TotalFrames)),
		watchLabelStyle.Render("Valid:"), watchValueStyle.Render(fmt.Sprintf("%d (%.1f%%)", m.stats.ValidReadings, validPercent)),
		watchLabelStyle.Render("Problems:"), watchErrorStyle.Render(fmt.Sprintf("%d (%.1f%%)", totalErrors, errorPercent)),
	))

	if m.stats.FramesDiscarded > 0 || parseErrors > 0 {
		sb.WriteString(fmt.Sprintf("%s %s   %s %s\n",
			watchLabelStyle.Render("Discarded:"), watchErrorStyle.Render(fmt.Sprintf("%d", m.stats.FramesDiscarded)),
			watchLabelStyle.Render("Rejected:"), watchErrorStyle.Render(fmt.Sprintf("%d", parseErrors)),
		))
	}

	if m.stats.AnomalousValues > 0 {
		sb.WriteString(fmt.Sprintf("%s %s (%s: %d, %s: %d, %s: %d)\n",
			watchLabelStyle.Render("Anomalous:"), watchWarningStyle.Render(fmt.Sprintf("%d", m.stats.AnomalousValues)),
			watchHeaderStyle.Render("temp"), m.stats.ImplausibleTemp,
			watchHeaderStyle.Render("battery"), m.stats.BatteryRange,
			watchHeaderStyle.Render("rtd"), m.stats.ResistanceRange,
		))
	}

	sb.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s",
		watchLabelStyle.Render("Bytes:"), watchValueStyle.Render(fmt.Sprintf("%d", m.stats.BytesRead)),
		watchLabelStyle.Render("Frame Rate:"), watchValueStyle.Render(fmt.Sprintf("%.1f/s", m.stats.FrameRate)),
		watchLabelStyle.Render("Error Rate:"), func() string {
			if m.stats.ErrorRate > 0 {
				return watchErrorStyle.Render(fmt.Sprintf("%.1f/s", m.stats.ErrorRate))
			}
			return watchValueStyle.Render(fmt.Sprintf("%.1f/s", m.stats.ErrorRate))
		}(),
	))

	return sb.String()
}

func (m watchModel) readingView() string {
	r := m.lastReading

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		watchLabelStyle.Render("Device:"), watchValueStyle.Render(r.DeviceID),
		watchLabelStyle.Render("At:"), watchValueStyle.Render(m.lastReadingAt.Format("15:04:05.000")),
	))
	sb.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		watchLabelStyle.Render("Temperature:"), watchValueStyle.Render(fmt.Sprintf("%.4f degC", r.Temperature)),
		watchLabelStyle.Render("Thermocouple:"), watchValueStyle.Render(fmt.Sprintf("%.0f counts", r.Thermocouple)),
	))
	sb.WriteString(fmt.Sprintf("%s %s   %s %s",
		watchLabelStyle.Render("RTD:"), watchValueStyle.Render(fmt.Sprintf("%.4f ohm (%d degC)", r.RTDResistance, r.RTDTemperature)),
		watchLabelStyle.Render("Battery:"), func() string {
			if r.BatteryVoltage < 3.0 {
				return watchWarningStyle.Render(fmt.Sprintf("%.3f V", r.BatteryVoltage))
			}
			return watchValueStyle.Render(fmt.Sprintf("%.3f V", r.BatteryVoltage))
		}(),
	))

	return sb.String()
}
