package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timepaisa/internal/domain"
)

// Slate/emerald palette.
var (
	ColorGreen  = lipgloss.Color("#10B981")
	ColorYellow = lipgloss.Color("#F59E0B")
	ColorRed    = lipgloss.Color("#F43F5E")
	ColorBlue   = lipgloss.Color("#3B82F6")
	ColorPurple = lipgloss.Color("#A78BFA")
	ColorDim    = lipgloss.Color("#64748B")
	ColorFg     = lipgloss.Color("#F1F5F9")
	ColorHeader = lipgloss.Color("#10B981")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Pastel category colours, one per category label.
var (
	timeColors = map[domain.TimeCategory]lipgloss.Color{
		domain.TimeStudy:   "#A7F3D0",
		domain.TimeReels:   "#FCA5A5",
		domain.TimeFood:    "#FDE68A",
		domain.TimeSleep:   "#DDD6FE",
		domain.TimeFitness: "#BFDBFE",
		domain.TimeOthers:  "#E2E8F0",
	}
	moneyColors = map[domain.MoneyCategory]lipgloss.Color{
		domain.MoneyFood:          "#FED7AA",
		domain.MoneyTransport:     "#BFDBFE",
		domain.MoneySnacks:        "#FBCFE8",
		domain.MoneyEntertainment: "#FCA5A5",
		domain.MoneyBills:         "#D1D5DB",
		domain.MoneyOthers:        "#E2E8F0",
	}
	fallbackColor = lipgloss.Color("#94A3B8")
)

// TimeCategoryStyle returns the display style for a time category.
func TimeCategoryStyle(c domain.TimeCategory) lipgloss.Style {
	if col, ok := timeColors[c]; ok {
		return lipgloss.NewStyle().Foreground(col)
	}
	return lipgloss.NewStyle().Foreground(fallbackColor)
}

// MoneyCategoryStyle returns the display style for a money category.
func MoneyCategoryStyle(c domain.MoneyCategory) lipgloss.Style {
	if col, ok := moneyColors[c]; ok {
		return lipgloss.NewStyle().Foreground(col)
	}
	return lipgloss.NewStyle().Foreground(fallbackColor)
}

// ScoreStyle colours a 0-100 score: green from 67, yellow from 34, red below.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 67:
		return StyleGreen
	case score >= 34:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
