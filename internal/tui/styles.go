package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorPrimary  = lipgloss.Color("63")
	ColorSubtle   = lipgloss.Color("241")
	ColorInfo     = lipgloss.Color("39")
	ColorCritical = lipgloss.Color("196")
	ColorSelectFg = lipgloss.Color("229")
	ColorSelectBg = lipgloss.Color("57")
	ColorBorder   = lipgloss.Color("238")
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are package-level constants in practice.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().Bold(true)

	SubtleStyle = lipgloss.NewStyle().Foreground(ColorSubtle)

	InfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)

	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)

	SpinnerStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	FocusedHeaderStyle = TableHeaderStyle.Underline(true).Foreground(ColorSelectFg).Background(ColorSelectBg)

	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorSelectFg).Background(ColorSelectBg)

	ActivePageStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSelectFg).Background(ColorPrimary)

	PlaceholderStyle = lipgloss.NewStyle().Italic(true).Foreground(ColorSubtle)
)
