// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/shayne/yargs"

	"github.com/tenth151/AsciiArtBoardReader/internal/alert"
	"github.com/tenth151/AsciiArtBoardReader/internal/store"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui"
)

type resumeFlags struct {
	Mode    string `flag:"mode" help:"auto, overlay, inline or line (default from config)"`
	Discard bool   `flag:"discard" help:"drop saved dialogs without showing them"`
}

func handleResumeCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, resumeFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	e, closer, err := setup("")
	if err != nil {
		return err
	}
	defer closer.Close()
	return runResume(e, result.SubCommandFlags)
}

func runResume(e env, flags resumeFlags) error {
	st := store.New(e.fs, showStateDir(e))
	owners, err := st.Owners()
	if err != nil {
		return fmt.Errorf("failed to list saved dialogs: %w", err)
	}
	if len(owners) == 0 {
		fmt.Fprintln(e.out, "no saved dialogs")
		return nil
	}
	mode := flags.Mode
	if mode == "" {
		mode = e.cfg.Presentation
	}

	screen := newScreen(e, 0)
	for _, owner := range owners {
		if flags.Discard {
			if err := st.Clear(owner); err != nil {
				return err
			}
			continue
		}
		records, err := st.Load(owner)
		if err != nil {
			return err
		}
		manager, listener := screen.Dialogs(), alert.Listener(&cliScreen{screen: screen, out: e.out})
		if owner != screenOwner {
			pane := alert.NewPane(owner)
			pane.AttachTo(screen)
			manager, listener = pane.Dialogs(), &cliPane{pane: pane, out: e.out}
		}
		styles := screen.Theme().Dialog
		if _, err := manager.Restore(records, listener, &styles, screen.DialogWidth()); err != nil {
			return err
		}
		if err := presentAll(e, manager, mode); err != nil {
			return err
		}
		if err := st.Clear(owner); err != nil {
			return err
		}
	}
	if flags.Discard {
		fmt.Fprintf(e.out, "discarded saved dialogs for %d owner(s)\n", len(owners))
	}
	return nil
}

// presentAll answers the dialogs of m from the top down.
func presentAll(e env, m *alert.Manager, mode string) error {
	for {
		c, ok := m.Top()
		if !ok {
			return nil
		}
		if err := tui.Present(e.in, e.out, c, mode); err != nil {
			return err
		}
		m.Prune()
		if top, ok := m.Top(); ok && top == c {
			return fmt.Errorf("dialog %q was not answered", c.Tag())
		}
	}
}
