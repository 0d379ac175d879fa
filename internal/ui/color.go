// Package ui holds console styling helpers shared by the commands
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each color.
var DarkTheme bool

// DisableColor turns off styling for pterm output and the terminal UI.
func DisableColor() {
	pterm.DisableStyling()
	lipgloss.SetColorProfile(termenv.Ascii)
}

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}
