// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Huh builds the form theme used for dialog prompts.
func Huh() *huh.Theme {
	theme := huh.ThemeBase()
	accent := lipgloss.Color("6")
	muted := lipgloss.Color("8")
	err := lipgloss.Color("1")

	theme.Group.Title = theme.Group.Title.Bold(true)
	theme.Group.Description = theme.Group.Description.Foreground(muted)
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n\n")

	theme.Focused.Title = theme.Focused.Title.Bold(true)
	theme.Focused.Description = theme.Focused.Description.Foreground(muted)
	theme.Focused.ErrorIndicator = theme.Focused.ErrorIndicator.Foreground(err)
	theme.Focused.ErrorMessage = theme.Focused.ErrorMessage.Foreground(err)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(accent)
	theme.Focused.TextInput.Placeholder = theme.Focused.TextInput.Placeholder.Foreground(muted)

	theme.Blurred = theme.Focused
	return theme
}
