package swatch

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

var (
	passColor  = lipgloss.Color("42")  // Green
	goodColor  = lipgloss.Color("39")  // Blue
	poorColor  = lipgloss.Color("226") // Yellow
	failColor  = lipgloss.Color("196") // Red
	mutedColor = lipgloss.Color("245") // Gray
	titleColor = lipgloss.Color("99")  // Purple
)

type styles struct {
	preview lipgloss.Style
	name    lipgloss.Style
	title   lipgloss.Style
	theme   lipgloss.Style
	muted   lipgloss.Style
	grade   map[color.Grade]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	grade := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c).Bold(true)
	}

	return styles{
		preview: r.NewStyle().
			Width(cardWidth).
			Height(3).
			Align(lipgloss.Center, lipgloss.Center),
		name: r.NewStyle().
			Width(cardWidth).
			MaxWidth(cardWidth),
		title: r.NewStyle().
			Bold(true).
			Foreground(titleColor).
			MarginBottom(1),
		theme: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1),
		muted: r.NewStyle().Foreground(mutedColor),
		grade: map[color.Grade]lipgloss.Style{
			color.GradePass: grade(passColor),
			color.GradeGood: grade(goodColor),
			color.GradePoor: grade(poorColor),
			color.GradeFail: grade(failColor),
		},
	}
}

// GradeStyle returns the badge style for a contrast grade.
func (r *Renderer) GradeStyle(g color.Grade) lipgloss.Style {
	if s, ok := r.styles.grade[g]; ok {
		return s
	}
	return r.styles.muted
}
