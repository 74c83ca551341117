// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func buildHuhTheme(pal tokens) *huh.Theme {
	theme := huh.ThemeBase()
	accent := lipgloss.Color(pal.accent)
	muted := lipgloss.Color(pal.muted)
	label := lipgloss.Color(pal.label)
	header := lipgloss.Color(pal.helpHeader)
	err := lipgloss.Color(pal.error)

	theme.Group.Title = theme.Group.Title.Foreground(header).Bold(true)
	theme.Group.Description = theme.Group.Description.Foreground(muted)

	theme.Focused.Title = theme.Focused.Title.Foreground(header).Bold(true)
	theme.Focused.Description = theme.Focused.Description.Foreground(muted)
	theme.Focused.ErrorIndicator = theme.Focused.ErrorIndicator.Foreground(err)
	theme.Focused.ErrorMessage = theme.Focused.ErrorMessage.Foreground(err)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(accent)
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(accent)
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.Background(accent).Foreground(lipgloss.Color("255")).Bold(true)
	theme.Focused.BlurredButton = theme.Focused.BlurredButton.Foreground(label)

	theme.Blurred = theme.Focused
	theme.Blurred.Base = theme.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	theme.Blurred.Card = theme.Blurred.Base
	return theme
}

// HuhTheme picks the themed huh styles when colour is enabled and huh's
// default otherwise.
func HuhTheme(t Theme) *huh.Theme {
	if t.Enabled && t.Huh != nil {
		return t.Huh
	}
	return huh.ThemeBase()
}
