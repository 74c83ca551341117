// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tenth151/AsciiArtBoardReader/internal/bundle"
	"github.com/tenth151/AsciiArtBoardReader/internal/logging"
	"github.com/tenth151/AsciiArtBoardReader/internal/store"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui/theme"
)

// DefaultTag keys dialogs shown without an explicit tag.
const DefaultTag = "default"

// Manager holds the dialogs presented by one screen or pane. The most recent
// dialog is on top and receives input.
type Manager struct {
	open []*Controller
}

func NewManager() *Manager { return &Manager{} }

// Show presents c under tag. A dialog already shown under the same tag is
// closed and replaced.
func (m *Manager) Show(tag string, c *Controller) tea.Cmd {
	if tag == "" {
		tag = DefaultTag
	}
	c.tag = tag
	if idx := m.index(tag); idx >= 0 {
		logging.Logger.Debug("replacing dialog", "tag", tag)
		m.open[idx].Close()
		m.open = slices.Delete(m.open, idx, idx+1)
	}
	m.open = append(m.open, c)
	return c.Init()
}

func (m *Manager) index(tag string) int {
	return slices.IndexFunc(m.open, func(c *Controller) bool { return c.tag == tag })
}

func (m *Manager) Find(tag string) (*Controller, bool) {
	if idx := m.index(tag); idx >= 0 {
		return m.open[idx], true
	}
	return nil, false
}

func (m *Manager) Top() (*Controller, bool) {
	if len(m.open) == 0 {
		return nil, false
	}
	return m.open[len(m.open)-1], true
}

func (m *Manager) Len() int { return len(m.open) }

// Update forwards msg to the top dialog and drops it once dismissed.
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	top, ok := m.Top()
	if !ok {
		return nil
	}
	_, cmd := top.Update(msg)
	m.Prune()
	return cmd
}

func (m *Manager) View() string {
	top, ok := m.Top()
	if !ok {
		return ""
	}
	return top.View()
}

// Cancel is the host-driven dismissal, such as a click outside the dialog.
// It is refused for dialogs built with Cancelable(false).
func (m *Manager) Cancel(tag string) error {
	c, ok := m.Find(tag)
	if !ok {
		return ErrNotFound
	}
	if !c.Cancelable() {
		return ErrNotCancelable
	}
	err := c.Cancel()
	m.Prune()
	return err
}

// CloseAll tears down every dialog without notifying listeners.
func (m *Manager) CloseAll() {
	for _, c := range m.open {
		c.Close()
	}
	m.open = nil
}

// Prune drops dialogs that were dismissed outside of Update, for example by
// a presenter that drove the controller directly.
func (m *Manager) Prune() {
	m.open = slices.DeleteFunc(m.open, func(c *Controller) bool { return c.state == StateDismissed })
}

// Snapshot returns the open dialogs bottom to top, ready for store.Save.
func (m *Manager) Snapshot() []store.Record {
	records := make([]store.Record, 0, len(m.open))
	for _, c := range m.open {
		records = append(records, c.record())
	}
	return records
}

// Restore shows the dialogs from a snapshot again, reporting to listener.
func (m *Manager) Restore(records []store.Record, listener Listener, styles *theme.DialogStyles, width int) ([]tea.Cmd, error) {
	cmds := make([]tea.Cmd, 0, len(records))
	for _, rec := range records {
		opts := []Option{withID(rec.ID), WithWidth(width)}
		if rec.Owner != "" {
			opts = append(opts, WithTarget(Target{Owner: rec.Owner, RequestCode: rec.TargetRequestCode}))
		}
		if styles != nil {
			opts = append(opts, WithStyles(*styles))
		}
		c, err := New(bundle.FromMap(rec.Args), listener, opts...)
		if err != nil {
			return cmds, err
		}
		cmds = append(cmds, m.Show(rec.Tag, c))
	}
	return cmds, nil
}
