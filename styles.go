package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	err  lipgloss.Style
	info lipgloss.Style
}

// ANSI colour 1 is red, 2 is green and 7 is white
func newStyles() styles {
	return styles{
		err:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		info: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
	}
}
