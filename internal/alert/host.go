// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tenth151/AsciiArtBoardReader/internal/res"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui/dialogs"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui/theme"
)

// ScreenHost is a top-level model that presents dialogs on its own Screen.
type ScreenHost interface {
	Listener
	Screen() *Screen
}

// PaneHost is a nested component that presents dialogs on its Pane.
type PaneHost interface {
	Listener
	Pane() *Pane
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithTheme sets the styles dialogs on the screen and its panes are drawn with.
func WithTheme(t theme.Theme) ScreenOption {
	return func(s *Screen) { s.theme = t }
}

// WithDialogWidth sets the default dialog width in columns.
func WithDialogWidth(width int) ScreenOption {
	return func(s *Screen) { s.width = width }
}

// Screen is the top-level presentation context: it carries the string
// catalog, its own dialogs and the panes attached to it.
type Screen struct {
	strings    *res.Catalog
	dialogs    *Manager
	panes      []*Pane
	theme      theme.Theme
	width      int
	termWidth  int
	termHeight int
}

// NewScreen returns a screen resolving strings from catalog. A nil catalog
// makes every resource lookup fail with ErrNoContext.
func NewScreen(catalog *res.Catalog, opts ...ScreenOption) *Screen {
	s := &Screen{
		strings: catalog,
		dialogs: NewManager(),
		theme:   theme.Plain(),
		width:   dialogs.DefaultWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Screen) Dialogs() *Manager  { return s.dialogs }
func (s *Screen) Panes() []*Pane     { return slices.Clone(s.panes) }
func (s *Screen) Theme() theme.Theme { return s.theme }
func (s *Screen) DialogWidth() int   { return s.width }

func (s *Screen) Strings() (*res.Catalog, error) {
	if s == nil || s.strings == nil {
		return nil, ErrNoContext
	}
	return s.strings, nil
}

func (s *Screen) Pane(name string) (*Pane, bool) {
	idx := slices.IndexFunc(s.panes, func(p *Pane) bool { return p.name == name })
	if idx < 0 {
		return nil, false
	}
	return s.panes[idx], true
}

// Active reports whether any dialog is open on the screen or its panes.
func (s *Screen) Active() bool {
	_, ok := s.topManager()
	return ok
}

// topManager picks the manager whose top dialog receives input: the most
// recently attached pane with dialogs, then the screen itself.
func (s *Screen) topManager() (*Manager, bool) {
	for i := len(s.panes) - 1; i >= 0; i-- {
		if s.panes[i].dialogs.Len() > 0 {
			return s.panes[i].dialogs, true
		}
	}
	if s.dialogs.Len() > 0 {
		return s.dialogs, true
	}
	return nil, false
}

// Update routes msg to the active dialog. Window sizes are recorded for
// View.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		s.termWidth, s.termHeight = size.Width, size.Height
		return nil
	}
	m, ok := s.topManager()
	if !ok {
		return nil
	}
	return m.Update(msg)
}

// View draws the active dialog over a dimmed background. Without an active
// dialog the background is returned unchanged.
func (s *Screen) View(background string) string {
	m, ok := s.topManager()
	if !ok {
		return background
	}
	view := m.View()
	if s.termWidth == 0 || s.termHeight == 0 {
		if background == "" {
			return view
		}
		return background + "\n" + view
	}
	return dialogs.Overlay(background, view, s.termWidth, s.termHeight, s.theme.Dialog.Dim)
}

func (s *Screen) attach(p *Pane) {
	if !slices.Contains(s.panes, p) {
		s.panes = append(s.panes, p)
	}
}

func (s *Screen) detach(p *Pane) {
	s.panes = slices.DeleteFunc(s.panes, func(other *Pane) bool { return other == p })
}

// Pane is a nested presentation context. It resolves strings and draws its
// dialogs through the screen it is attached to.
type Pane struct {
	name    string
	screen  *Screen
	dialogs *Manager
}

func NewPane(name string) *Pane {
	return &Pane{name: name, dialogs: NewManager()}
}

func (p *Pane) Name() string      { return p.name }
func (p *Pane) Dialogs() *Manager { return p.dialogs }
func (p *Pane) Attached() bool    { return p.screen != nil }
func (p *Pane) Screen() *Screen   { return p.screen }

func (p *Pane) AttachTo(s *Screen) {
	if p.screen == s {
		return
	}
	if p.screen != nil {
		p.screen.detach(p)
	}
	p.screen = s
	s.attach(p)
}

// Detach closes the pane's dialogs and leaves the screen.
func (p *Pane) Detach() {
	p.dialogs.CloseAll()
	if p.screen != nil {
		p.screen.detach(p)
	}
	p.screen = nil
}

func (p *Pane) Strings() (*res.Catalog, error) {
	if p == nil || p.screen == nil {
		return nil, ErrNoContext
	}
	return p.screen.Strings()
}
