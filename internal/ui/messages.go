package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time

type exportDoneMsg struct {
	path string
	err  error
}

// frameCmd drives spring animation and status expiry at ~30 fps.
func frameCmd() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
