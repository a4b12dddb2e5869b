package browser

import tea "github.com/charmbracelet/bubbletea"

func copyCmd(clip Clipboard, what, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clip(text); err != nil {
			return copyFailedMsg{Err: err}
		}
		return copiedMsg{What: what}
	}
}
