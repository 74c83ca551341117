// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tenth151/AsciiArtBoardReader/internal/bundle"
	"github.com/tenth151/AsciiArtBoardReader/internal/logging"
	"github.com/tenth151/AsciiArtBoardReader/internal/store"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui/dialogs"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui/theme"
)

// State is where a controller is in its lifecycle.
type State int

const (
	StateNotAttached State = iota
	StateArmed
	StateShown
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateShown:
		return "shown"
	case StateDismissed:
		return "dismissed"
	default:
		return "not-attached"
	}
}

// Target routes a dialog back to the pane that asked for it. RequestCode is
// only consulted for argument bags that carry no request code of their own.
type Target struct {
	Owner       string
	RequestCode int
}

// Option configures a Controller.
type Option func(*Controller)

// WithTag sets the tag the dialog is known by in its Manager.
func WithTag(tag string) Option {
	return func(c *Controller) { c.tag = tag }
}

// WithTarget marks the dialog as shown on behalf of a pane.
func WithTarget(t Target) Option {
	return func(c *Controller) { c.target = &t }
}

// WithWidth sets the dialog width in columns.
func WithWidth(width int) Option {
	return func(c *Controller) { c.width = width }
}

// WithStyles sets the styles the widget is drawn with.
func WithStyles(styles theme.DialogStyles) Option {
	return func(c *Controller) { c.styles = &styles }
}

func withID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.id = id
		}
	}
}

// Controller owns one dialog presentation: it keeps the argument bag, builds
// the widget from it and reports the outcome to its listener exactly once.
type Controller struct {
	id       string
	tag      string
	args     bundle.Bundle
	target   *Target
	width    int
	styles   *theme.DialogStyles
	listener Listener
	state    State
	widget   *dialogs.AlertDialog
	result   *dialogs.Result
}

// New arms a controller for args. The bag is copied.
func New(args bundle.Bundle, listener Listener, opts ...Option) (*Controller, error) {
	if listener == nil {
		return nil, ErrNoListener
	}
	c := &Controller{
		id:       store.NewID(),
		tag:      DefaultTag,
		args:     args.Clone(),
		listener: listener,
		state:    StateArmed,
	}
	if c.args == nil {
		c.args = bundle.New()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Controller) ID() string          { return c.id }
func (c *Controller) Tag() string         { return c.tag }
func (c *Controller) State() State        { return c.state }
func (c *Controller) Args() bundle.Bundle { return c.args.Clone() }
func (c *Controller) Listener() Listener  { return c.listener }

func (c *Controller) Target() (Target, bool) {
	if c.target == nil {
		return Target{}, false
	}
	return *c.target, true
}

func (c *Controller) Cancelable() bool {
	return c.args.GetBool(KeyCancelable, true)
}

// RequestCode prefers the bag, then the target, then NoRequestCode.
func (c *Controller) RequestCode() int {
	if c.args.Has(KeyRequestCode) {
		return c.args.GetInt(KeyRequestCode, NoRequestCode)
	}
	if c.target != nil {
		return c.target.RequestCode
	}
	return NoRequestCode
}

// Spec is the widget configuration described by the bag.
func (c *Controller) Spec() dialogs.AlertSpec {
	return specFromArgs(c.args, c.width)
}

func (c *Controller) Params() bundle.Bundle {
	return c.args.GetBundle(KeyParams).Clone()
}

// Init builds the widget from the bag. Calling it again is a no-op.
func (c *Controller) Init() tea.Cmd {
	if c.state != StateArmed {
		return nil
	}
	var opts []dialogs.AlertOption
	if c.styles != nil {
		opts = append(opts, dialogs.WithStyles(*c.styles))
	}
	c.widget = dialogs.NewAlertDialog(c.id, specFromArgs(c.args, c.width), opts...)
	c.state = StateShown
	logging.Logger.Debug("dialog shown", "tag", c.tag, "id", c.id, "request_code", c.RequestCode())
	return c.widget.Init()
}

func (c *Controller) Update(msg tea.Msg) (dialogs.Dialog, tea.Cmd) {
	if c.state != StateShown {
		return c, nil
	}
	_, cmd := c.widget.Update(msg)
	res, ok := c.widget.Result()
	if !ok {
		return c, cmd
	}
	if res.Cancelled {
		_ = c.Cancel()
	} else {
		_ = c.Click(res.Which)
	}
	return c, cmd
}

func (c *Controller) View() string {
	if c.state != StateShown {
		return ""
	}
	return c.widget.View()
}

func (c *Controller) active() bool {
	return c.state == StateArmed || c.state == StateShown
}

// Click dismisses the dialog and reports which to OnSucceeded. which is
// ResultPositive, ResultNegative or a list position.
func (c *Controller) Click(which int) error {
	if !c.active() {
		return ErrNotShown
	}
	c.dismiss(dialogs.Result{Which: which})
	logging.Logger.Debug("dialog succeeded", "tag", c.tag, "result", ResultName(which), "which", which)
	c.listener.OnSucceeded(c.RequestCode(), which, c.Params())
	return nil
}

// Cancel dismisses the dialog and reports OnCancelled. It does not check
// Cancelable; hosts decide whether a cancel gesture is allowed.
func (c *Controller) Cancel() error {
	if !c.active() {
		return ErrNotShown
	}
	c.dismiss(dialogs.Result{Cancelled: true})
	logging.Logger.Debug("dialog cancelled", "tag", c.tag)
	c.listener.OnCancelled(c.RequestCode(), c.Params())
	return nil
}

func (c *Controller) dismiss(res dialogs.Result) {
	c.state = StateDismissed
	c.result = &res
	if c.widget != nil {
		c.widget.Dismiss(res)
	}
}

// Close tears the controller down. No callback runs afterwards.
func (c *Controller) Close() {
	c.listener = nil
	c.state = StateDismissed
}

// Result reports the outcome once the dialog was dismissed through Click or
// Cancel.
func (c *Controller) Result() (*dialogs.Result, bool) {
	if c.result == nil {
		return nil, false
	}
	return c.result, true
}

func (c *Controller) record() store.Record {
	rec := store.Record{
		ID:   c.id,
		Tag:  c.tag,
		Args: map[string]any(c.args.Clone()),
	}
	if c.target != nil {
		rec.Owner = c.target.Owner
		rec.TargetRequestCode = c.target.RequestCode
	}
	return rec
}
