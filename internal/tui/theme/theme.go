// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme is the semantic style set used for report lines and prompts.
type Theme struct {
	Enabled bool

	Header  lipgloss.Style
	Muted   lipgloss.Style
	Value   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// ForOutput returns styles for out. Styling is only enabled when out is
// a terminal and NO_COLOR is unset.
func ForOutput(out io.Writer) Theme {
	file, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return Theme{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Theme{}
	}
	return Theme{
		Enabled: true,
		Header:  lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Value:   lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Render applies style when the theme is enabled.
func (t Theme) Render(style lipgloss.Style, text string) string {
	if !t.Enabled {
		return text
	}
	return style.Render(text)
}
