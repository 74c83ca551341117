// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/tenth151/AsciiArtBoardReader/internal/alert"
	"github.com/tenth151/AsciiArtBoardReader/internal/config"
	"github.com/tenth151/AsciiArtBoardReader/internal/logging"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui/dialogs"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui/theme"
)

var ErrUnknownPresentation = errors.New("unknown presentation")

// ResolveMode turns auto into overlay on a terminal and line otherwise.
func ResolveMode(in io.Reader, out io.Writer, mode string) (string, error) {
	switch mode {
	case "", config.PresentationAuto:
		if useDialogPrompts(in, out) {
			return config.PresentationOverlay, nil
		}
		return config.PresentationLine, nil
	case config.PresentationOverlay, config.PresentationInline, config.PresentationLine:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPresentation, mode)
	}
}

// Present shows c on in/out and blocks until the user answered. The outcome
// reaches c's listener.
func Present(in io.Reader, out io.Writer, c *alert.Controller, mode string) error {
	resolved, err := ResolveMode(in, out, mode)
	if err != nil {
		return err
	}
	logging.Logger.Debug("presenting dialog", "tag", c.Tag(), "mode", resolved)
	switch resolved {
	case config.PresentationOverlay:
		return presentOverlay(in, out, c)
	case config.PresentationInline:
		return presentInline(in, out, c)
	default:
		return presentLine(in, out, c)
	}
}

func presentOverlay(in io.Reader, out io.Writer, c *alert.Controller) error {
	result, err := dialogs.Run(in, out, c)
	if err != nil {
		return err
	}
	if result == nil {
		return errors.New("dialog closed without an answer")
	}
	return nil
}

func presentInline(in io.Reader, out io.Writer, c *alert.Controller) error {
	spec := c.Spec()
	if !spec.HasActions() {
		return presentLine(in, out, c)
	}
	return answerInline(out, c, func() (int, error) {
		return runInlineForm(in, out, spec)
	})
}

// answerInline asks until the user answered, reporting the outcome to c. An
// aborted form cancels c unless c cannot be cancelled, in which case it asks
// again.
func answerInline(out io.Writer, c *alert.Controller, ask func() (int, error)) error {
	for {
		which, err := ask()
		if errors.Is(err, huh.ErrUserAborted) {
			if c.Cancelable() {
				return c.Cancel()
			}
			fmt.Fprintln(out, "This dialog cannot be dismissed.")
			continue
		}
		if err != nil {
			return err
		}
		return c.Click(which)
	}
}

func runInlineForm(in io.Reader, out io.Writer, spec dialogs.AlertSpec) (int, error) {
	if len(spec.Items) == 0 && spec.Positive != "" && spec.Negative != "" {
		confirmed := true
		confirm := huh.NewConfirm().
			Title(spec.Title).
			Description(spec.Message).
			Affirmative(spec.Positive).
			Negative(spec.Negative).
			Value(&confirmed)
		if err := newInlineForm(in, out, confirm).Run(); err != nil {
			return 0, err
		}
		return confirmResult(confirmed), nil
	}
	options, which := inlineOptions(spec)
	field := huh.NewSelect[int]().
		Title(spec.Title).
		Description(spec.Message).
		Options(options...).
		Value(&which)
	if err := newInlineForm(in, out, field).Run(); err != nil {
		return 0, err
	}
	return which, nil
}

func confirmResult(confirmed bool) int {
	if confirmed {
		return alert.ResultPositive
	}
	return alert.ResultNegative
}

// inlineOptions lists the select options for spec and the preselected value.
// Items report their position; a lone button reports its result code.
func inlineOptions(spec dialogs.AlertSpec) ([]huh.Option[int], int) {
	if len(spec.Items) > 0 {
		options := make([]huh.Option[int], 0, len(spec.Items))
		for i, item := range spec.Items {
			options = append(options, huh.NewOption(item, i))
		}
		return options, 0
	}
	options := []huh.Option[int]{}
	which := alert.ResultPositive
	if spec.Positive != "" {
		options = append(options, huh.NewOption(spec.Positive, alert.ResultPositive))
	}
	if spec.Negative != "" {
		if spec.Positive == "" {
			which = alert.ResultNegative
		}
		options = append(options, huh.NewOption(spec.Negative, alert.ResultNegative))
	}
	return options, which
}

func newInlineForm(in io.Reader, out io.Writer, field huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(theme.HuhTheme(theme.ForOutput(out))).
		WithInput(in).
		WithOutput(out)
}

type lineChoice struct {
	label string
	which int
}

func lineChoices(spec dialogs.AlertSpec) []lineChoice {
	choices := []lineChoice{}
	if len(spec.Items) > 0 {
		for i, item := range spec.Items {
			choices = append(choices, lineChoice{label: item, which: i})
		}
		return choices
	}
	if spec.Positive != "" {
		choices = append(choices, lineChoice{label: spec.Positive, which: alert.ResultPositive})
	}
	if spec.Negative != "" {
		choices = append(choices, lineChoice{label: spec.Negative, which: alert.ResultNegative})
	}
	return choices
}

func presentLine(in io.Reader, out io.Writer, c *alert.Controller) error {
	spec := c.Spec()
	choices := lineChoices(spec)
	reader := bufio.NewReader(in)
	printPromptHeader(out, spec.Title, spec.Message)
	for i, choice := range choices {
		fmt.Fprintf(out, "  %d) %s\n", i+1, choice.label)
	}
	for {
		fmt.Fprint(out, linePrompt(len(choices), spec.Cancelable))
		line, err := readLine(reader)
		if errors.Is(err, io.EOF) && spec.Cancelable {
			fmt.Fprintln(out)
			return c.Cancel()
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			if spec.Cancelable {
				return c.Cancel()
			}
			fmt.Fprintln(out, "This dialog cannot be dismissed.")
			continue
		}
		if len(spec.Items) == 0 && spec.Positive != "" && spec.Negative != "" {
			if yes, ok := parseYesNo(line); ok {
				if yes {
					return c.Click(alert.ResultPositive)
				}
				return c.Click(alert.ResultNegative)
			}
		}
		idx, err := parseSelection(line, len(choices))
		if err != nil {
			fmt.Fprintln(out, "Please select one option by number.")
			continue
		}
		return c.Click(choices[idx].which)
	}
}

func linePrompt(n int, cancelable bool) string {
	var prompt string
	switch n {
	case 0:
		if !cancelable {
			return "This dialog cannot be dismissed: "
		}
		return "Press enter to dismiss: "
	case 1:
		prompt = "Select 1"
	default:
		prompt = fmt.Sprintf("Select 1-%d", n)
	}
	if cancelable {
		prompt += " (blank to cancel)"
	}
	return prompt + ": "
}

func useDialogPrompts(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(inFile.Fd())) {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return false
	}
	return true
}

func printPromptHeader(out io.Writer, title, message string) {
	if strings.TrimSpace(title) != "" {
		fmt.Fprintln(out, title)
	}
	if strings.TrimSpace(message) != "" {
		fmt.Fprintln(out, message)
	}
}

// readLine returns io.EOF only when the input ended before any text.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.EOF
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
