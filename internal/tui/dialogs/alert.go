// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tenth151/AsciiArtBoardReader/internal/tui/theme"
)

const (
	DefaultWidth      = 50
	minWidth          = 20
	defaultMaxVisible = 8
)

// AlertSpec is what an alert shows. Empty fields are left out of the view.
// A non-empty Items list replaces the buttons.
type AlertSpec struct {
	Title      string
	Message    string
	Items      []string
	Positive   string
	Negative   string
	Cancelable bool
	Width      int
}

// HasActions reports whether the alert offers anything besides cancelling.
func (s AlertSpec) HasActions() bool {
	return len(s.Items) > 0 || s.Positive != "" || s.Negative != ""
}

type AlertOption func(*AlertDialog)

func WithStyles(styles theme.DialogStyles) AlertOption {
	return func(d *AlertDialog) { d.styles = styles }
}

func WithKeyMap(keys KeyMap) AlertOption {
	return func(d *AlertDialog) { d.keys = keys }
}

func WithMaxVisible(n int) AlertOption {
	return func(d *AlertDialog) {
		if n > 0 {
			d.maxVisible = n
		}
	}
}

type AlertDialog struct {
	id         string
	spec       AlertSpec
	keys       KeyMap
	help       help.Model
	styles     theme.DialogStyles
	buttons    []int
	focus      int
	index      int
	offset     int
	maxVisible int
	result     *Result
}

func NewAlertDialog(id string, spec AlertSpec, opts ...AlertOption) *AlertDialog {
	if spec.Width <= 0 {
		spec.Width = DefaultWidth
	}
	spec.Width = max(spec.Width, minWidth)
	d := &AlertDialog{
		id:         id,
		spec:       spec,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     theme.Plain().Dialog,
		maxVisible: defaultMaxVisible,
	}
	if len(spec.Items) == 0 {
		if spec.Negative != "" {
			d.buttons = append(d.buttons, ButtonNegative)
		}
		if spec.Positive != "" {
			d.buttons = append(d.buttons, ButtonPositive)
		}
		d.focus = len(d.buttons) - 1
	}
	for _, opt := range opts {
		opt(d)
	}
	d.keys.Cancel.SetEnabled(spec.Cancelable)
	return d
}

func (d *AlertDialog) ID() string      { return d.id }
func (d *AlertDialog) Init() tea.Cmd   { return nil }
func (d *AlertDialog) Spec() AlertSpec { return d.spec }

// Selected returns the highlighted list position, or -1 without a list.
func (d *AlertDialog) Selected() int {
	if len(d.spec.Items) == 0 {
		return -1
	}
	return d.index
}

// Focused returns the focused button discriminator, or 0 without buttons.
func (d *AlertDialog) Focused() int {
	if len(d.buttons) == 0 {
		return 0
	}
	return d.buttons[d.focus]
}

func (d *AlertDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || d.result != nil {
		return d, nil
	}
	if key.Matches(keyMsg, d.keys.Cancel) {
		d.result = &Result{Cancelled: true}
		return d, nil
	}
	switch {
	case len(d.spec.Items) > 0:
		d.updateList(keyMsg)
	case len(d.buttons) > 0:
		d.updateButtons(keyMsg)
	default:
		if key.Matches(keyMsg, d.keys.Select) && d.spec.Cancelable {
			d.result = &Result{Cancelled: true}
		}
	}
	return d, nil
}

func (d *AlertDialog) updateList(msg tea.KeyMsg) {
	n := len(d.spec.Items)
	switch {
	case key.Matches(msg, d.keys.Up):
		d.index--
		if d.index < 0 {
			d.index = n - 1
		}
	case key.Matches(msg, d.keys.Down):
		d.index++
		if d.index >= n {
			d.index = 0
		}
	case key.Matches(msg, d.keys.Home):
		d.index = 0
	case key.Matches(msg, d.keys.End):
		d.index = n - 1
	case key.Matches(msg, d.keys.Select):
		d.result = &Result{Which: d.index}
	default:
		if pos, ok := digitPosition(msg, n); ok {
			d.index = pos
			d.result = &Result{Which: pos}
		}
	}
}

func (d *AlertDialog) updateButtons(msg tea.KeyMsg) {
	n := len(d.buttons)
	switch {
	case key.Matches(msg, d.keys.Prev):
		d.focus = (d.focus - 1 + n) % n
	case key.Matches(msg, d.keys.Next):
		d.focus = (d.focus + 1) % n
	case key.Matches(msg, d.keys.Select):
		d.result = &Result{Which: d.buttons[d.focus]}
	}
}

func digitPosition(msg tea.KeyMsg, n int) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	pos := int(r - '1')
	if pos >= n {
		return 0, false
	}
	return pos, true
}

func (d *AlertDialog) View() string {
	inner := d.spec.Width - 4
	sections := []string{}
	if d.spec.Title != "" {
		sections = append(sections, d.styles.Title.Render(ansi.Truncate(d.spec.Title, inner, "…")))
	}
	if d.spec.Message != "" {
		sections = append(sections, d.styles.Message.Render(ansi.Wordwrap(d.spec.Message, inner, "")))
	}
	switch {
	case len(d.spec.Items) > 0:
		sections = append(sections, d.renderList(inner))
	case len(d.buttons) > 0:
		sections = append(sections, d.renderButtons(inner))
	}
	if hint := d.renderHint(); hint != "" {
		sections = append(sections, hint)
	}
	return d.styles.Frame.Width(d.spec.Width - 2).Render(strings.Join(sections, "\n\n"))
}

func (d *AlertDialog) renderList(inner int) string {
	items := d.spec.Items
	visible := min(d.maxVisible, len(items))
	if d.index < d.offset {
		d.offset = d.index
	} else if d.index >= d.offset+visible {
		d.offset = d.index - visible + 1
	}
	d.offset = max(0, min(d.offset, len(items)-visible))

	lines := []string{}
	if d.offset > 0 {
		lines = append(lines, d.styles.Hint.Render("↑ more above"))
	}
	for i := d.offset; i < d.offset+visible; i++ {
		label := ansi.Truncate(fmt.Sprintf("%d) %s", i+1, items[i]), inner-2, "…")
		if i == d.index {
			lines = append(lines, d.styles.Cursor.Render(">")+" "+d.styles.ItemSelected.Render(label))
			continue
		}
		lines = append(lines, "  "+d.styles.Item.Render(label))
	}
	if d.offset+visible < len(items) {
		lines = append(lines, d.styles.Hint.Render("↓ more below"))
	}
	return strings.Join(lines, "\n")
}

func (d *AlertDialog) renderButtons(inner int) string {
	rendered := make([]string, 0, len(d.buttons))
	for i, which := range d.buttons {
		label := d.spec.Positive
		if which == ButtonNegative {
			label = d.spec.Negative
		}
		if i == d.focus {
			rendered = append(rendered, d.styles.ButtonFocused.Render("["+label+"]"))
			continue
		}
		rendered = append(rendered, d.styles.Button.Render(label))
	}
	row := strings.Join(rendered, "  ")
	return lipgloss.PlaceHorizontal(inner, lipgloss.Right, row)
}

func (d *AlertDialog) renderHint() string {
	bindings := []key.Binding{}
	switch {
	case len(d.spec.Items) > 0:
		bindings = append(bindings, d.keys.Up, d.keys.Down, d.keys.Select)
	case len(d.buttons) > 1:
		bindings = append(bindings, d.keys.Next, d.keys.Select)
	case len(d.buttons) == 1:
		bindings = append(bindings, d.keys.Select)
	}
	bindings = append(bindings, d.keys.Cancel)
	return d.help.ShortHelpView(bindings)
}

func (d *AlertDialog) Result() (*Result, bool) {
	if d.result == nil {
		return nil, false
	}
	return d.result, true
}

// Dismiss records a result chosen outside of key handling, for example by a
// mouse click forwarded by the host.
func (d *AlertDialog) Dismiss(res Result) {
	if d.result == nil {
		d.result = &res
	}
}
