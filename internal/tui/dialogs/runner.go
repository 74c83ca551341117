// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialogs

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

type resultProvider interface {
	Result() (*Result, bool)
}

type runnerModel struct {
	dialog Dialog
	result *Result
}

func (m runnerModel) Init() tea.Cmd { return m.dialog.Init() }

func (m runnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	d, cmd := m.dialog.Update(msg)
	m.dialog = d
	if res, ok := resultFromDialog(d); ok {
		m.result = res
		return m, tea.Quit
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	return m, cmd
}

func (m runnerModel) View() string {
	if m.result != nil {
		return ""
	}
	return m.dialog.View()
}

// Run shows d as a standalone program on in/out and returns once the dialog
// produced a result. A nil result means the program ended first, for example
// on ctrl+c over a dialog that cannot be cancelled.
func Run(in io.Reader, out io.Writer, d Dialog, opts ...tea.ProgramOption) (*Result, error) {
	opts = append([]tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}, opts...)
	p := tea.NewProgram(runnerModel{dialog: d}, opts...)
	m, err := p.Run()
	if err != nil {
		return nil, err
	}
	if rm, ok := m.(runnerModel); ok {
		return rm.result, nil
	}
	return nil, nil
}

func resultFromDialog(d Dialog) (*Result, bool) {
	provider, ok := d.(resultProvider)
	if !ok {
		return nil, false
	}
	return provider.Result()
}
