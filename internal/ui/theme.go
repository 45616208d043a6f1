package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pawmate theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPaw     = "🐾"
	IconMission = "🎯"
	IconDone    = "✅"
	IconHeart   = "💖"
	IconCoin    = "🪙"
	IconSpin    = "🎰"
	IconSparkle = "✨"
	IconTrophy  = "🏆"
	IconBell    = "🔔"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconCloset  = "👒"
	IconTrash   = "🗑️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cEpic    = lipgloss.Color("135") // purple
	cRare    = lipgloss.Color("39")  // cyan-blue
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
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	styleCommon    = lipgloss.NewStyle().Foreground(cMuted)
	styleRare      = lipgloss.NewStyle().Bold(true).Foreground(cRare)
	styleEpic      = lipgloss.NewStyle().Bold(true).Foreground(cEpic)
	styleLegendary = lipgloss.NewStyle().Bold(true).Foreground(cGold)
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

// Rarity renders a rarity tier name in its tier color.
func Rarity(rarity string) string {
	switch strings.ToLower(strings.TrimSpace(rarity)) {
	case "legendary":
		return styleLegendary.Render("legendary")
	case "epic":
		return styleEpic.Render("epic")
	case "rare":
		return styleRare.Render("rare")
	default:
		return styleCommon.Render("common")
	}
}

// ProgressHearts renders the 0-3 daily pet care indicator.
func ProgressHearts(state, max int) string {
	full := strings.Repeat("●", state)
	empty := strings.Repeat("○", max-state)
	return Good.Render(full) + Muted.Render(empty)
}
