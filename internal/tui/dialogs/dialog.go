// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Result discriminators for button clicks. List selections report the item
// position instead, which is always >= 0.
const (
	ButtonPositive = -1
	ButtonNegative = -2
)

type Dialog interface {
	ID() string
	Init() tea.Cmd
	Update(tea.Msg) (Dialog, tea.Cmd)
	View() string
}

type Result struct {
	Cancelled bool
	Which     int
}
