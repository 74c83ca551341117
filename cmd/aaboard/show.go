// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shayne/yargs"

	"github.com/tenth151/AsciiArtBoardReader/internal/alert"
	"github.com/tenth151/AsciiArtBoardReader/internal/bundle"
	"github.com/tenth151/AsciiArtBoardReader/internal/logging"
	"github.com/tenth151/AsciiArtBoardReader/internal/res"
	"github.com/tenth151/AsciiArtBoardReader/internal/store"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui/theme"
)

// screenOwner is the store owner for dialogs shown on the screen itself.
const screenOwner = "screen"

type showFlags struct {
	Title       string   `flag:"title" help:"dialog title"`
	TitleRes    string   `flag:"title-res" help:"string resource id for the title"`
	Message     string   `flag:"message" short:"m" help:"dialog message"`
	MessageRes  string   `flag:"message-res" help:"string resource id for the message"`
	Items       []string `flag:"item" help:"single-choice list item (repeatable); replaces the buttons"`
	Positive    string   `flag:"positive" help:"positive button label"`
	PositiveRes string   `flag:"positive-res" help:"string resource id for the positive button"`
	Negative    string   `flag:"negative" help:"negative button label"`
	NegativeRes string   `flag:"negative-res" help:"string resource id for the negative button"`
	RequestCode string   `flag:"request-code" help:"integer echoed back with the outcome (default -1)"`
	Tag         string   `flag:"tag" help:"dialog tag"`
	NoCancel    bool     `flag:"no-cancel" help:"do not allow dismissing the dialog"`
	Params      []string `flag:"param" help:"key=value payload echoed back with the outcome (repeatable)"`
	Pane        string   `flag:"pane" help:"present from a pane with this name"`
	Mode        string   `flag:"mode" help:"auto, overlay, inline or line (default from config)"`
	Width       int      `flag:"width" help:"dialog width in columns"`
	Strings     string   `flag:"strings" help:"strings file overriding the config"`
}

func handleShowCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, showFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	e, closer, err := setup(flags.Strings)
	if err != nil {
		return err
	}
	defer closer.Close()
	return runShow(e, flags)
}

// cliScreen prints outcomes of dialogs presented on the screen.
type cliScreen struct {
	screen *alert.Screen
	out    io.Writer
}

func (h *cliScreen) Screen() *alert.Screen { return h.screen }

func (h *cliScreen) OnSucceeded(requestCode, resultCode int, params bundle.Bundle) {
	fmt.Fprintln(h.out, formatSucceeded(requestCode, resultCode, params))
}

func (h *cliScreen) OnCancelled(requestCode int, params bundle.Bundle) {
	fmt.Fprintln(h.out, formatCancelled(requestCode, params))
}

// cliPane prints outcomes of dialogs presented on a pane.
type cliPane struct {
	pane *alert.Pane
	out  io.Writer
}

func (h *cliPane) Pane() *alert.Pane { return h.pane }

func (h *cliPane) OnSucceeded(requestCode, resultCode int, params bundle.Bundle) {
	fmt.Fprintf(h.out, "%s: %s\n", h.pane.Name(), formatSucceeded(requestCode, resultCode, params))
}

func (h *cliPane) OnCancelled(requestCode int, params bundle.Bundle) {
	fmt.Fprintf(h.out, "%s: %s\n", h.pane.Name(), formatCancelled(requestCode, params))
}

func formatSucceeded(requestCode, resultCode int, params bundle.Bundle) string {
	name := alert.ResultName(resultCode)
	if name == "item" {
		return fmt.Sprintf("succeeded request_code=%d result=item position=%d params=%s", requestCode, resultCode, params)
	}
	return fmt.Sprintf("succeeded request_code=%d result=%s params=%s", requestCode, name, params)
}

func formatCancelled(requestCode int, params bundle.Bundle) string {
	return fmt.Sprintf("cancelled request_code=%d params=%s", requestCode, params)
}

func newScreen(e env, width int) *alert.Screen {
	if width <= 0 {
		width = e.cfg.Width
	}
	return alert.NewScreen(e.strings,
		alert.WithTheme(theme.ForOutput(e.out)),
		alert.WithDialogWidth(width),
	)
}

// buildDialog applies the flags to b. Resource ids resolve through the
// builder's host.
func buildDialog(b *alert.Builder, flags showFlags) (*alert.Builder, error) {
	requestCode := alert.NoRequestCode
	if raw := strings.TrimSpace(flags.RequestCode); raw != "" {
		code, err := strconv.Atoi(raw)
		if err != nil {
			return nil, newUsageError(fmt.Sprintf("invalid --request-code %q (expected an integer)", raw))
		}
		requestCode = code
	}
	params, err := bundle.ParseAssignments(flags.Params)
	if err != nil {
		return nil, newUsageError(fmt.Sprintf("invalid --param: %v", err))
	}

	b = b.Title(flags.Title).
		Message(flags.Message).
		Items(flags.Items...).
		Positive(flags.Positive).
		Negative(flags.Negative).
		RequestCode(requestCode).
		Cancelable(!flags.NoCancel).
		Width(flags.Width)
	if len(params) > 0 {
		b = b.Params(params)
	}
	if strings.TrimSpace(flags.Tag) != "" {
		b = b.Tag(flags.Tag)
	}
	if flags.TitleRes != "" {
		b = b.TitleRes(res.ID(flags.TitleRes))
	}
	if flags.MessageRes != "" {
		b = b.MessageRes(res.ID(flags.MessageRes))
	}
	if flags.PositiveRes != "" {
		b = b.PositiveRes(res.ID(flags.PositiveRes))
	}
	if flags.NegativeRes != "" {
		b = b.NegativeRes(res.ID(flags.NegativeRes))
	}
	return b, b.Err()
}

func runShow(e env, flags showFlags) error {
	screen := newScreen(e, flags.Width)
	screenHost := &cliScreen{screen: screen, out: e.out}

	var (
		builder *alert.Builder
		manager *alert.Manager
		owner   = screenOwner
	)
	if name := strings.TrimSpace(flags.Pane); name != "" {
		pane := alert.NewPane(name)
		pane.AttachTo(screen)
		builder, manager, owner = alert.ForPane(&cliPane{pane: pane, out: e.out}), pane.Dialogs(), name
	} else {
		builder, manager = alert.ForScreen(screenHost), screen.Dialogs()
	}

	builder, err := buildDialog(builder, flags)
	if err != nil {
		return err
	}
	if _, err := builder.Show(); err != nil {
		if errors.Is(err, alert.ErrNoActions) {
			return newUsageError("--no-cancel needs --item, --positive or --negative")
		}
		return err
	}
	c, ok := manager.Top()
	if !ok {
		return errors.New("dialog was not presented")
	}

	st := store.New(e.fs, showStateDir(e))
	if err := st.Save(owner, manager.Snapshot()); err != nil {
		logging.Logger.Warn("could not save dialog state", "err", err)
	}
	mode := flags.Mode
	if mode == "" {
		mode = e.cfg.Presentation
	}
	if err := tui.Present(e.in, e.out, c, mode); err != nil {
		return err
	}
	return st.Clear(owner)
}

func showStateDir(e env) string {
	return filepath.Join(e.cfg.StateDir, "show")
}
