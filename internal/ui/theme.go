package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FocusBoard theme (CLI + TUI).

const (
	IconRoutine     = "🗓️"
	IconSparkle     = "✨"
	IconPlus        = "➕"
	IconDone        = "✅"
	IconTodo        = "⬜"
	IconTrophy      = "🏆"
	IconBolt        = "⚡"
	IconInfo        = "ℹ️"
	IconWarn        = "⚠️"
	IconError       = "🧨"
	IconNote        = "📝"
	IconPin         = "📌"
	IconQuiz        = "🧠"
	IconInspiration = "🎨"
	IconJournal     = "🤖"
	IconFire        = "🔥"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	LevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// XPDelta renders a signed xp change, green when positive.
func XPDelta(delta int) string {
	if delta >= 0 {
		return Good.Render(fmt.Sprintf("+%d XP", delta))
	}
	return Bad.Render(fmt.Sprintf("%d XP", delta))
}

// ProgressBar draws a width-cell bar for percent in [0, 100].
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(width, filled))
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

func TaskMark(completed bool) string {
	if completed {
		return IconDone
	}
	return IconTodo
}

// ScoreText colours a 0-5 journal score.
func ScoreText(score int) string {
	s := fmt.Sprintf("%d/5", score)
	switch {
	case score >= 4:
		return Good.Render(s)
	case score <= 1:
		return Bad.Render(s)
	default:
		return Warn.Render(s)
	}
}
