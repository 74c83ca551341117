// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tenth151/AsciiArtBoardReader/internal/bundle"
)

type call struct {
	kind        string
	requestCode int
	resultCode  int
	params      bundle.Bundle
}

type recorder struct {
	calls []call
}

func (r *recorder) OnSucceeded(requestCode, resultCode int, params bundle.Bundle) {
	r.calls = append(r.calls, call{kind: "succeeded", requestCode: requestCode, resultCode: resultCode, params: params})
}

func (r *recorder) OnCancelled(requestCode int, params bundle.Bundle) {
	r.calls = append(r.calls, call{kind: "cancelled", requestCode: requestCode, params: params})
}

type screenHost struct {
	recorder
	screen *Screen
}

func (h *screenHost) Screen() *Screen { return h.screen }

type paneHost struct {
	recorder
	pane *Pane
}

func (h *paneHost) Pane() *Pane { return h.pane }

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)
