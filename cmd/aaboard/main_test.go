// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/tenth151/AsciiArtBoardReader/internal/alert"
	"github.com/tenth151/AsciiArtBoardReader/internal/bundle"
	"github.com/tenth151/AsciiArtBoardReader/internal/config"
	"github.com/tenth151/AsciiArtBoardReader/internal/res"
	"github.com/tenth151/AsciiArtBoardReader/internal/store"
)

func TestNormalizeArgs(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{in: nil, want: []string{"--help"}},
		{in: []string{"--version"}, want: []string{"version"}},
		{in: []string{"help", "show"}, want: []string{"show", "--help"}},
		{in: []string{"help", "nope"}, want: []string{"--help"}},
		{in: []string{"show", "--title", "x"}, want: []string{"show", "--title", "x"}},
	}
	for _, tc := range cases {
		if got := normalizeArgs(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("normalizeArgs(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestVersionString(t *testing.T) {
	oldVersion, oldCommit := version, commit
	t.Cleanup(func() { version, commit = oldVersion, oldCommit })

	version, commit = "1.2.0", ""
	if got := versionString(); got != "1.2.0" {
		t.Fatalf("unexpected version %q", got)
	}
	version, commit = " ", "abc123"
	if got := versionString(); got != "dev (abc123)" {
		t.Fatalf("unexpected version %q", got)
	}
}

func TestFormatOutcome(t *testing.T) {
	if got := formatSucceeded(7, alert.ResultPositive, bundle.Bundle{"id": 42}); got != "succeeded request_code=7 result=positive params={id=42}" {
		t.Fatalf("unexpected line %q", got)
	}
	if got := formatSucceeded(3, 2, nil); got != "succeeded request_code=3 result=item position=2 params={}" {
		t.Fatalf("unexpected line %q", got)
	}
	if got := formatCancelled(-1, nil); got != "cancelled request_code=-1 params={}" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestApplyConfigFlags(t *testing.T) {
	cfg := config.Default()
	if applyConfigFlags(&cfg, configFlags{}) {
		t.Fatalf("expected no update without flags")
	}
	if !applyConfigFlags(&cfg, configFlags{Presentation: " line ", Width: 70}) {
		t.Fatalf("expected update")
	}
	if cfg.Presentation != config.PresentationLine || cfg.Width != 70 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func testEnv(input string) (env, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.StateDir = "/state"
	return env{
		cfg:     cfg,
		strings: res.Builtin(),
		fs:      afero.NewMemMapFs(),
		in:      strings.NewReader(input),
		out:     &out,
	}, &out
}

func TestBuildDialogRejectsBadInput(t *testing.T) {
	e, _ := testEnv("")
	host := &cliScreen{screen: newScreen(e, 0), out: e.out}
	if _, err := buildDialog(alert.ForScreen(host), showFlags{RequestCode: "seven"}); err == nil {
		t.Fatalf("expected invalid request code error")
	}
	if _, err := buildDialog(alert.ForScreen(host), showFlags{Params: []string{"novalue"}}); err == nil {
		t.Fatalf("expected invalid param error")
	}
	if _, err := buildDialog(alert.ForScreen(host), showFlags{TitleRes: "missing"}); err == nil {
		t.Fatalf("expected unknown resource error")
	}
}

func TestRunShowRejectsDialogThatCannotClose(t *testing.T) {
	e, _ := testEnv("")
	err := runShow(e, showFlags{Message: "hi", NoCancel: true, Mode: config.PresentationOverlay})
	var usage usageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	owners, err := store.New(e.fs, showStateDir(e)).Owners()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(owners) != 0 {
		t.Fatalf("expected nothing saved, got %v", owners)
	}
}

func TestRunShowDeleteConfirmation(t *testing.T) {
	e, out := testEnv("1\n")
	flags := showFlags{
		Title:       "Delete?",
		Positive:    "Yes",
		Negative:    "No",
		RequestCode: "7",
		Params:      []string{"id=42"},
		Mode:        config.PresentationLine,
	}
	if err := runShow(e, flags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "succeeded request_code=7 result=positive params={id=42}") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	owners, err := store.New(e.fs, showStateDir(e)).Owners()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(owners) != 0 {
		t.Fatalf("expected saved state to be cleared, got %v", owners)
	}
}

func TestRunShowFromPaneUsesResources(t *testing.T) {
	e, out := testEnv("2\n")
	flags := showFlags{
		TitleRes:    string(res.Delete),
		PositiveRes: string(res.Delete),
		NegativeRes: string(res.Cancel),
		RequestCode: "11",
		Pane:        "boards",
		Mode:        config.PresentationLine,
	}
	if err := runShow(e, flags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "boards: succeeded request_code=11 result=negative params={}") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunShowKeepsStateWhenInterrupted(t *testing.T) {
	e, _ := testEnv("")
	flags := showFlags{Title: "Quit?", Positive: "Yes", NoCancel: true, RequestCode: "3", Mode: config.PresentationLine}
	if err := runShow(e, flags); err == nil {
		t.Fatalf("expected EOF error for a dialog that cannot be dismissed")
	}

	resumeEnv, out := testEnv("1\n")
	resumeEnv.fs = e.fs
	if err := runResume(resumeEnv, resumeFlags{Mode: config.PresentationLine}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "succeeded request_code=3 result=positive") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	again, out := testEnv("")
	again.fs = e.fs
	if err := runResume(again, resumeFlags{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "no saved dialogs") {
		t.Fatalf("expected nothing left to resume:\n%s", out.String())
	}
}

func TestResumeDiscard(t *testing.T) {
	e, out := testEnv("")
	st := store.New(e.fs, showStateDir(e))
	records := []store.Record{{Tag: "x", Args: map[string]any{alert.KeyMessage: "hi"}}}
	if err := st.Save("boards", records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := runResume(e, resumeFlags{Discard: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "discarded saved dialogs for 1 owner(s)") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if left, _ := st.Load("boards"); len(left) != 0 {
		t.Fatalf("expected records to be removed, got %v", left)
	}
}

func press(m *browseModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestBrowseDeleteFromPane(t *testing.T) {
	e, _ := testEnv("")
	m := newBrowseModel(newScreen(e, 0), []string{"retro", "news"})
	press(m, tea.KeyMsg{Type: tea.KeyDown}, keyRune('d'))
	if !m.screen.Active() || m.pane.pane.Dialogs().Len() != 1 {
		t.Fatalf("expected delete dialog on the pane")
	}
	if !strings.Contains(m.View(), "Remove the \"news\" board") {
		t.Fatalf("expected dialog in view:\n%s", m.View())
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !reflect.DeepEqual(m.boards, []string{"retro"}) {
		t.Fatalf("expected news to be deleted, got %v", m.boards)
	}
	if m.screen.Active() {
		t.Fatalf("expected dialog to be gone")
	}
}

func TestBrowseDeleteCancelled(t *testing.T) {
	e, _ := testEnv("")
	m := newBrowseModel(newScreen(e, 0), []string{"retro"})
	press(m, keyRune('d'), tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.boards) != 1 || m.status != "kept retro" {
		t.Fatalf("expected board to be kept, got %v (%q)", m.boards, m.status)
	}
}

func TestBrowseSortAndQuit(t *testing.T) {
	e, _ := testEnv("")
	m := newBrowseModel(newScreen(e, 0), []string{"b", "a", "c"})
	press(m, keyRune('s'), keyRune('2'))
	if !reflect.DeepEqual(m.boards, []string{"c", "b", "a"}) {
		t.Fatalf("unexpected order %v", m.boards)
	}

	press(m, keyRune('q'), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.screen.Active() {
		t.Fatalf("expected quit dialog to ignore esc")
	}
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestBrowseSaveAndRestore(t *testing.T) {
	e, _ := testEnv("")
	st := store.New(e.fs, "/state/browse")
	m := newBrowseModel(newScreen(e, 0), []string{"retro", "news"})
	press(m, keyRune('d'))
	if err := saveBrowse(st, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored := newBrowseModel(newScreen(e, 0), []string{"retro", "news"})
	if err := restoreBrowse(st, restored); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored.pane.pane.Dialogs().Len() != 1 {
		t.Fatalf("expected restored pane dialog")
	}
	press(restored, tea.KeyMsg{Type: tea.KeyEnter})
	if !reflect.DeepEqual(restored.boards, []string{"news"}) {
		t.Fatalf("expected retro to be deleted, got %v", restored.boards)
	}
}
