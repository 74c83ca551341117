// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tenth151/AsciiArtBoardReader/internal/bundle"
	"github.com/tenth151/AsciiArtBoardReader/internal/logging"
	"github.com/tenth151/AsciiArtBoardReader/internal/res"
)

// Builder collects the configuration of one alert and presents it on the
// host it was created for.
type Builder struct {
	screenHost ScreenHost
	paneHost   PaneHost

	title       string
	message     string
	items       []string
	positive    string
	negative    string
	requestCode int
	tag         string
	cancelable  bool
	params      bundle.Bundle
	width       int

	err error
}

func newBuilder() *Builder {
	return &Builder{
		requestCode: NoRequestCode,
		tag:         DefaultTag,
		cancelable:  true,
	}
}

// ForScreen builds a dialog shown on the host's screen. The host receives
// the result.
func ForScreen(h ScreenHost) *Builder {
	b := newBuilder()
	b.screenHost = h
	return b
}

// ForPane builds a dialog shown on the host's pane. The host receives the
// result.
func ForPane(h PaneHost) *Builder {
	b := newBuilder()
	b.paneHost = h
	return b
}

func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

func (b *Builder) TitleRes(id res.ID) *Builder {
	b.title = b.resolve(id)
	return b
}

func (b *Builder) Message(message string) *Builder {
	b.message = message
	return b
}

func (b *Builder) MessageRes(id res.ID) *Builder {
	b.message = b.resolve(id)
	return b
}

// Items turns the dialog into a single-choice list. The list replaces the
// buttons when both are set.
func (b *Builder) Items(items ...string) *Builder {
	b.items = slices.Clone(items)
	return b
}

func (b *Builder) Positive(label string) *Builder {
	b.positive = label
	return b
}

func (b *Builder) PositiveRes(id res.ID) *Builder {
	b.positive = b.resolve(id)
	return b
}

func (b *Builder) Negative(label string) *Builder {
	b.negative = label
	return b
}

func (b *Builder) NegativeRes(id res.ID) *Builder {
	b.negative = b.resolve(id)
	return b
}

func (b *Builder) RequestCode(code int) *Builder {
	b.requestCode = code
	return b
}

func (b *Builder) Tag(tag string) *Builder {
	b.tag = tag
	return b
}

func (b *Builder) Cancelable(cancelable bool) *Builder {
	b.cancelable = cancelable
	return b
}

// Params sets the bag handed back to the listener. It is copied.
func (b *Builder) Params(params bundle.Bundle) *Builder {
	b.params = params.Clone()
	return b
}

// Width overrides the host's dialog width.
func (b *Builder) Width(width int) *Builder {
	b.width = width
	return b
}

// Err returns the first error recorded while building.
func (b *Builder) Err() error { return b.err }

func (b *Builder) resolve(id res.ID) string {
	if b.err != nil {
		return ""
	}
	catalog, err := b.strings()
	if err != nil {
		b.err = fmt.Errorf("resolve %q: %w", id, err)
		return ""
	}
	s, err := catalog.String(id)
	if err != nil {
		b.err = fmt.Errorf("resolve %q: %w", id, err)
		return ""
	}
	return s
}

func (b *Builder) strings() (*res.Catalog, error) {
	switch {
	case b.paneHost != nil:
		return b.paneHost.Pane().Strings()
	case b.screenHost != nil:
		return b.screenHost.Screen().Strings()
	default:
		return nil, ErrNoContext
	}
}

// Args packs the configuration into an argument bag. Empty text fields are
// left out.
func (b *Builder) Args() bundle.Bundle {
	args := bundle.New()
	if b.title != "" {
		args.PutString(KeyTitle, b.title)
	}
	if b.message != "" {
		args.PutString(KeyMessage, b.message)
	}
	if len(b.items) > 0 {
		args.PutStrings(KeyItems, b.items)
	}
	if b.positive != "" {
		args.PutString(KeyPositiveLabel, b.positive)
	}
	if b.negative != "" {
		args.PutString(KeyNegativeLabel, b.negative)
	}
	args.PutBool(KeyCancelable, b.cancelable)
	args.PutBundle(KeyParams, b.params)
	args.PutInt(KeyRequestCode, b.requestCode)
	return args
}

// Show presents the dialog. It fails when a string could not be resolved, the
// host has no screen to draw on or the dialog could never be closed; nothing
// is shown in that case.
func (b *Builder) Show() (tea.Cmd, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.cancelable && len(b.items) == 0 && b.positive == "" && b.negative == "" {
		return nil, ErrNoActions
	}
	if len(b.items) > 0 && (b.positive != "" || b.negative != "") {
		logging.Logger.Warn("dialog has both items and buttons; buttons are not shown", "tag", b.tag)
	}

	var (
		listener Listener
		manager  *Manager
		screen   *Screen
		opts     []Option
	)
	switch {
	case b.paneHost != nil:
		pane := b.paneHost.Pane()
		if pane == nil || !pane.Attached() {
			return nil, ErrNoContext
		}
		listener, manager, screen = b.paneHost, pane.Dialogs(), pane.Screen()
		opts = append(opts, WithTarget(Target{Owner: pane.Name(), RequestCode: NoRequestCode}))
	case b.screenHost != nil:
		screen = b.screenHost.Screen()
		if screen == nil {
			return nil, ErrNoContext
		}
		listener, manager = b.screenHost, screen.Dialogs()
	default:
		return nil, ErrNoContext
	}

	width := b.width
	if width <= 0 {
		width = screen.DialogWidth()
	}
	opts = append(opts, WithTag(b.tag), WithWidth(width), WithStyles(screen.Theme().Dialog))
	c, err := New(b.Args(), listener, opts...)
	if err != nil {
		return nil, err
	}
	return manager.Show(b.tag, c), nil
}
