package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "ctrl+c":
		return true
	}
	return false
}

func composerHelp(editing bool) string {
	if editing {
		return "enter apply  esc cancel"
	}
	return "a add  x delete  ↑/↓ row  ←/→ field  +/- adjust  enter edit  m magnitude  space play  e export  q quit"
}

func analyzerHelp() string {
	return "←/→ move window  +/- window size  q quit"
}
