package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how results are presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without interaction.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// DetectOutputMode picks a mode for stdout. plain and noColor force plain
// output; forceColor yields styled output even when stdout is not a
// terminal. NO_COLOR and TERM=dumb are honored. Interactive mode also needs
// stdin to be a terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain,
		isTerminal(os.Stdout), isTerminal(os.Stdin), os.LookupEnv)
}

func detectOutputMode(
	forceColor, noColor, plain, stdoutTTY, stdinTTY bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, set := lookupEnv("NO_COLOR"); set {
		return OutputModePlain
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return OutputModePlain
	}
	if forceColor && !stdoutTTY {
		return OutputModeStyled
	}
	if !stdoutTTY {
		return OutputModePlain
	}
	if !stdinTTY {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns stdout's width, or fallback when unknown.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
