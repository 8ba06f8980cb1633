package ui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode of the command.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether prompts can be shown.
//
// Returns ModeNonInteractive if:
//   - DIRMAP_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - stdin or stderr is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv("DIRMAP_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	// Prompts are written to stderr
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModeNonInteractive
	}
	return ModeInteractive
}
