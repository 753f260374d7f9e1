// Package detector provides environment detection for output mode selection.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode represents how rendered scenes are written.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeStyled highlights prim headers and notices with terminal colors.
	ModeStyled
	// ModePlain writes the dump format unchanged.
	ModePlain
)

// DetectEnvironment returns the recommended output mode for w.
// Only terminals outside CI get styled output.
func DetectEnvironment(w io.Writer) OutputMode {
	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return ModePlain
	}

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}
	return ModeStyled
}

// ResolveMode applies the user override flag to auto-detection.
// userFlag should be one of: "auto", "styled", "plain", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "styled":
		return ModeStyled
	case "plain", "ci":
		return ModePlain
	default:
		return autoDetected
	}
}
