package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.palette.Name()))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	theme := m.CurrentTheme()
	switch {
	case theme == nil:
		b.WriteString(mutedStyle.Render("Palette has no themes"))
	case len(theme.Colors()) == 0:
		b.WriteString(mutedStyle.Render("Theme has no colors"))
	default:
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderColorList(), "  ", m.renderDetail()))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTabs() string {
	themes := m.palette.Themes()
	tabs := make([]string, 0, len(themes))
	for i, t := range themes {
		if i == m.themeIndex {
			tabs = append(tabs, activeTabStyle.Render(t.Name()))
			continue
		}
		tabs = append(tabs, tabStyle.Render(t.Name()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderColorList() string {
	var lines []string
	for i, tc := range m.CurrentTheme().Colors() {
		if i == m.colorIndex {
			lines = append(lines, cursorStyle.Render("> "+tc.Name()))
			continue
		}
		lines = append(lines, "  "+tc.Name())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	c := m.CurrentSwatch()
	card, err := m.renderer.SwatchCard(c)
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	lines := []string{c.CSSVariableName()}
	for _, format := range color.Formats() {
		v, err := color.ToFormat(c.Value(), format)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		lines = append(lines, fmt.Sprintf("%-5s %s", format, v.CSS()))
	}

	variants := len(m.CurrentColor().Variants())
	if variants > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("swatch %d/%d", m.swatchIndex+1, variants+1)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, card, "  ", detailStyle.Render(strings.Join(lines, "\n")))
}
