// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay centres dialog over a dimmed copy of background. The result is at
// least height lines tall and every background line is padded to width.
func Overlay(background, dialog string, width, height int, dim lipgloss.Style) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	for i, line := range bgLines {
		plain := ansi.Strip(line)
		if w := lipgloss.Width(plain); w < width {
			plain += strings.Repeat(" ", width-w)
		}
		bgLines[i] = plain
	}

	overlayLines := strings.Split(dialog, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}
	startX := max(0, (width-overlayWidth)/2)
	startY := max(0, (height-len(overlayLines))/2)

	out := make([]string, len(bgLines))
	for y, bg := range bgLines {
		idx := y - startY
		if idx < 0 || idx >= len(overlayLines) {
			out[y] = dim.Render(bg)
			continue
		}
		line := overlayLines[idx]
		left := ansi.Truncate(bg, startX, "")
		right := ansi.TruncateLeft(bg, startX+lipgloss.Width(line), "")
		out[y] = dim.Render(left) + line + dim.Render(right)
	}
	return strings.Join(out, "\n")
}
