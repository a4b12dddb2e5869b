package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case copiedMsg:
		m.notice = fmt.Sprintf("Copied %s to clipboard", msg.What)
		m.err = nil
		return m, nil

	case copyFailedMsg:
		m.notice = ""
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.NextTheme):
		m.moveTheme(1)

	case key.Matches(msg, m.keys.PrevTheme):
		m.moveTheme(-1)

	case key.Matches(msg, m.keys.Up):
		m.moveColor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveColor(1)

	case key.Matches(msg, m.keys.Left):
		m.moveSwatch(-1)

	case key.Matches(msg, m.keys.Right):
		m.moveSwatch(1)

	case key.Matches(msg, m.keys.CopyValue):
		c := m.CurrentSwatch()
		if c == nil {
			return m, nil
		}
		return m, copyCmd(m.clipboard, c.Name(), c.Value().CSS())

	case key.Matches(msg, m.keys.CopyPalette):
		css, err := m.palette.CSS()
		if err != nil {
			m.err = err
			return m, nil
		}
		return m, copyCmd(m.clipboard, "palette CSS", css)
	}

	return m, nil
}
