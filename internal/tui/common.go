package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewTasks
	viewAnalytics
	viewPomodoro
	viewSettings
)

var viewNames = []string{"Dashboard", "Tasks", "Analytics", "Pomodoro", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// tickMsg fires once a second and drives the clock and the pomodoro
// countdown.
type tickMsg time.Time

// clockCheckMsg fires once a minute; every fire re-evaluates the rollover
// conditions.
type clockCheckMsg time.Time

// rolloverMsg is emitted after a day rollover has been applied so every view
// can refresh.
type rolloverMsg struct {
	date string
}

type widgetsDataMsg struct {
	events []store.Event
	links  []store.Link
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
	}
}

func noticeCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
