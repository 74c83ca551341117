// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shayne/yargs"

	"github.com/tenth151/AsciiArtBoardReader/internal/alert"
	"github.com/tenth151/AsciiArtBoardReader/internal/bundle"
	"github.com/tenth151/AsciiArtBoardReader/internal/logging"
	"github.com/tenth151/AsciiArtBoardReader/internal/res"
	"github.com/tenth151/AsciiArtBoardReader/internal/store"
)

const (
	requestDelete = 1
	requestSort   = 2
	requestQuit   = 3
	requestAbout  = 4

	boardsPane = "boards"
)

var defaultBoards = []string{"retro", "news", "art", "games", "music"}

type browseKeys struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Sort   key.Binding
	About  key.Binding
	Quit   key.Binding
	Abort  key.Binding
}

func newBrowseKeys() browseKeys {
	return browseKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Delete: key.NewBinding(key.WithKeys("d", "delete")),
		Sort:   key.NewBinding(key.WithKeys("s")),
		About:  key.NewBinding(key.WithKeys("?")),
		Quit:   key.NewBinding(key.WithKeys("q")),
		Abort:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// browseModel is the board list screen. Deleting asks from the boards pane;
// sorting, quitting and the about box are asked by the screen itself.
type browseModel struct {
	screen   *alert.Screen
	pane     *boardPane
	keys     browseKeys
	boards   []string
	cursor   int
	status   string
	quitting bool
	aborted  bool
}

type boardPane struct {
	pane  *alert.Pane
	model *browseModel
}

func (p *boardPane) Pane() *alert.Pane { return p.pane }

func (p *boardPane) OnSucceeded(requestCode, resultCode int, params bundle.Bundle) {
	logging.Logger.Debug("pane dialog succeeded", "request_code", requestCode, "result", resultCode)
	if requestCode != requestDelete || resultCode != alert.ResultPositive {
		p.model.status = "kept " + params.GetString("board")
		return
	}
	p.model.removeBoard(params.GetString("board"))
}

func (p *boardPane) OnCancelled(requestCode int, params bundle.Bundle) {
	p.model.status = "kept " + params.GetString("board")
}

func newBrowseModel(screen *alert.Screen, boards []string) *browseModel {
	m := &browseModel{
		screen: screen,
		keys:   newBrowseKeys(),
		boards: slices.Clone(boards),
	}
	pane := alert.NewPane(boardsPane)
	pane.AttachTo(screen)
	m.pane = &boardPane{pane: pane, model: m}
	return m
}

func (m *browseModel) Screen() *alert.Screen { return m.screen }

func (m *browseModel) OnSucceeded(requestCode, resultCode int, params bundle.Bundle) {
	switch requestCode {
	case requestSort:
		m.sortBoards(resultCode)
	case requestQuit:
		m.quitting = resultCode == alert.ResultPositive
	}
}

func (m *browseModel) OnCancelled(requestCode int, params bundle.Bundle) {
	m.status = ""
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Abort) {
		m.aborted = true
		return m, tea.Quit
	}
	if _, ok := msg.(tea.WindowSizeMsg); ok || m.screen.Active() {
		cmd := m.screen.Update(msg)
		if m.quitting {
			return m, tea.Quit
		}
		return m, cmd
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	cmd, err := m.handleKey(keyMsg)
	if err != nil {
		m.status = err.Error()
	}
	return m, cmd
}

func (m *browseModel) handleKey(msg tea.KeyMsg) (tea.Cmd, error) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.boards)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if len(m.boards) == 0 {
			return nil, nil
		}
		board := m.boards[m.cursor]
		return alert.ForPane(m.pane).
			Title("Delete?").
			Message(fmt.Sprintf("Remove the %q board from your list?", board)).
			PositiveRes(res.Delete).
			NegativeRes(res.Cancel).
			RequestCode(requestDelete).
			Params(bundle.Bundle{"board": board}).
			Tag("delete").
			Show()
	case key.Matches(msg, m.keys.Sort):
		return alert.ForScreen(m).
			Title("Sort boards").
			Items("By name", "By name, reversed").
			RequestCode(requestSort).
			Tag("sort").
			Show()
	case key.Matches(msg, m.keys.About):
		return alert.ForScreen(m).
			Message("ASCII art board reader. Press enter or esc to close.").
			RequestCode(requestAbout).
			Tag("about").
			Show()
	case key.Matches(msg, m.keys.Quit):
		return alert.ForScreen(m).
			Title("Quit?").
			PositiveRes(res.Yes).
			NegativeRes(res.No).
			RequestCode(requestQuit).
			Cancelable(false).
			Tag("quit").
			Show()
	}
	return nil, nil
}

func (m *browseModel) removeBoard(board string) {
	idx := slices.Index(m.boards, board)
	if idx < 0 {
		return
	}
	m.boards = slices.Delete(m.boards, idx, idx+1)
	if m.cursor >= len(m.boards) && m.cursor > 0 {
		m.cursor--
	}
	m.status = "deleted " + board
}

func (m *browseModel) sortBoards(order int) {
	slices.Sort(m.boards)
	if order == 1 {
		slices.Reverse(m.boards)
	}
	m.cursor = 0
	m.status = "sorted"
}

func (m *browseModel) View() string {
	styles := m.screen.Theme().Dialog
	var b strings.Builder
	b.WriteString(styles.Title.Render("Boards"))
	b.WriteString("\n\n")
	if len(m.boards) == 0 {
		b.WriteString(styles.Hint.Render("no boards left"))
		b.WriteString("\n")
	}
	for i, board := range m.boards {
		if i == m.cursor {
			b.WriteString(styles.Cursor.Render(">") + " " + styles.ItemSelected.Render(board) + "\n")
			continue
		}
		b.WriteString("  " + styles.Item.Render(board) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Hint.Render("j/k move • d delete • s sort • ? about • q quit"))
	if m.status != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Italic(true).Render(m.status))
	}
	return m.screen.View(b.String())
}

type browseFlags struct {
	Board []string `flag:"board" help:"board name to list (repeatable)"`
	Fresh bool     `flag:"fresh" help:"ignore dialogs saved by an interrupted session"`
}

func handleBrowseCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, browseFlags, struct{}](args, helpConfig)
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
	return runBrowse(e, result.SubCommandFlags)
}

func runBrowse(e env, flags browseFlags) error {
	boards := flags.Board
	if len(boards) == 0 {
		boards = defaultBoards
	}
	m := newBrowseModel(newScreen(e, 0), boards)
	st := store.New(e.fs, filepath.Join(e.cfg.StateDir, "browse"))
	if !flags.Fresh {
		if err := restoreBrowse(st, m); err != nil {
			logging.Logger.Warn("could not restore dialogs", "err", err)
		}
	}

	p := tea.NewProgram(m, tea.WithInput(e.in), tea.WithOutput(e.out), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	if m.aborted {
		return saveBrowse(st, m)
	}
	if err := st.Clear(screenOwner); err != nil {
		return err
	}
	return st.Clear(boardsPane)
}

// saveBrowse keeps dialogs that were open when the session was aborted.
func saveBrowse(st *store.Store, m *browseModel) error {
	if err := st.Save(screenOwner, m.screen.Dialogs().Snapshot()); err != nil {
		return err
	}
	return st.Save(boardsPane, m.pane.pane.Dialogs().Snapshot())
}

func restoreBrowse(st *store.Store, m *browseModel) error {
	styles := m.screen.Theme().Dialog
	width := m.screen.DialogWidth()
	records, err := st.Load(screenOwner)
	if err != nil {
		return err
	}
	if _, err := m.screen.Dialogs().Restore(records, m, &styles, width); err != nil {
		return err
	}
	records, err = st.Load(boardsPane)
	if err != nil {
		return err
	}
	_, err = m.pane.pane.Dialogs().Restore(records, m.pane, &styles, width)
	return err
}
