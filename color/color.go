// Package color holds the ANSI colors used for CLI output.
package color

import "github.com/charmbracelet/lipgloss"

// New returns a color from an ANSI code or a hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	Black  = New("8")
)

// High intensity.
var (
	HiRed    = New("9")
	HiBlue   = New("12")
	HiPurple = New("13")
)
