// Package ui provides the Bubbletea progress display for shrinktune.
package ui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pollInterval is how often the model reads the completion counter.
const pollInterval = time.Second

// Model renders a transient "processed/total (percent%)" line. It is purely
// observational: workers only bump an atomic counter, and the model polls it
// on a fixed tick, clamping the display to the total.
type Model struct {
	Total     int
	Completed *atomic.Int64

	processed int64
	started   bool
	Done      bool
	Err       error
}

// NewModel returns a Model waiting for discovery to finish.
func NewModel() Model {
	return Model{}
}

// Init waits for the StartMsg; ticking begins once the counter exists.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case StartMsg:
		m.Total = msg.Total
		m.Completed = msg.Completed
		m.started = true
		return m, tick()

	case tickMsg:
		if !m.started || m.Done {
			return m, nil
		}
		m.processed = m.Completed.Load()
		if m.processed > int64(m.Total) {
			m.processed = int64(m.Total)
		}
		// The reporter cancels its own loop once everything is accounted
		// for; it does not wait for an external signal.
		if m.processed >= int64(m.Total) {
			m.Done = true
			return m, tea.Quit
		}
		return m, tick()

	case DoneMsg:
		m.Done = true
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Done {
		return ""
	}
	if !m.started {
		return renderScanning()
	}
	return renderProgress(m)
}

// tick schedules the next counter poll.
func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
