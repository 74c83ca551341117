// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/shayne/yargs"
	"github.com/spf13/afero"

	"github.com/tenth151/AsciiArtBoardReader/internal/config"
	"github.com/tenth151/AsciiArtBoardReader/internal/logging"
	"github.com/tenth151/AsciiArtBoardReader/internal/res"
)

func main() {
	if err := runCLI(os.Args[1:]); err != nil {
		reportCLIError(err)
		os.Exit(1)
	}
}

type usageError struct {
	message string
}

func (e usageError) Error() string {
	return e.message
}

func reportCLIError(err error) {
	var usageErr usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(os.Stderr, usageErr.message)
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

func newUsageError(message string) error {
	return usageError{message: message}
}

var (
	version = "dev"
	commit  = ""
)

func runCLI(args []string) error {
	args = normalizeArgs(args)
	handlers := map[string]yargs.SubcommandHandler{
		"show":    handleShowCommand,
		"resume":  handleResumeCommand,
		"browse":  handleBrowseCommand,
		"config":  handleConfigCommand,
		"version": handleVersionCommand,
	}
	if err := yargs.RunSubcommands(context.Background(), args, helpConfig, struct{}{}, handlers); err != nil {
		if errors.Is(err, yargs.ErrShown) {
			return nil
		}
		return err
	}
	return nil
}

var helpConfig = yargs.HelpConfig{
	Command: yargs.CommandInfo{
		Name:        "aaboard",
		Description: "Terminal alert dialogs for the ASCII art board reader",
		Examples: []string{
			"aaboard show --title Delete? --positive Yes --negative No --request-code 7 --param id=42",
			"aaboard show --title 'Pick a board' --item retro --item news --pane boards",
			"aaboard resume",
			"aaboard browse",
			"aaboard config --presentation line",
			"aaboard --version",
		},
	},
	SubCommands: map[string]yargs.SubCommandInfo{
		"show": {
			Name:        "show",
			Description: "Show one alert dialog and print the outcome",
			Usage:       "[--title <t>] [--message <m>] [--item <i>]... [--positive <l>] [--negative <l>]",
			Examples: []string{
				"aaboard show --message 'Saved.' --positive-res ok",
				"aaboard show --title Delete? --positive Yes --negative No --no-cancel",
			},
		},
		"resume": {
			Name:        "resume",
			Description: "Show dialogs left open by an interrupted show",
		},
		"browse": {
			Name:        "browse",
			Description: "Browse boards with dialogs drawn over the board list",
		},
		"config": {
			Name:        "config",
			Description: "Show or update the local configuration",
		},
		"version": {
			Name:        "version",
			Description: "Show CLI version",
		},
	},
}

func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"--help"}
	}
	switch args[0] {
	case "--version", "-v":
		return append([]string{"version"}, args[1:]...)
	case "help":
		if len(args) > 1 && isKnownCommand(args[1]) {
			return []string{args[1], "--help"}
		}
		return []string{"--help"}
	}
	return args
}

func isKnownCommand(value string) bool {
	switch value {
	case "show", "resume", "browse", "config", "version":
		return true
	default:
		return false
	}
}

// env is what every command needs once flags are parsed.
type env struct {
	cfg     config.Config
	strings *res.Catalog
	fs      afero.Fs
	in      io.Reader
	out     io.Writer
}

// setup loads the config, starts logging and loads the string catalog.
// The returned closer flushes the log file.
func setup(stringsOverride string) (env, io.Closer, error) {
	cfg, _, err := config.Load()
	if err != nil {
		return env{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	closer, err := logging.Init(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return env{}, nil, err
	}
	fs := afero.NewOsFs()
	stringsFile := cfg.StringsFile
	if strings.TrimSpace(stringsOverride) != "" {
		stringsFile = stringsOverride
	}
	catalog, err := res.Load(fs, stringsFile)
	if err != nil {
		closer.Close()
		return env{}, nil, fmt.Errorf("failed to load strings: %w", err)
	}
	return env{cfg: cfg, strings: catalog, fs: fs, in: os.Stdin, out: os.Stdout}, closer, nil
}

func handleVersionCommand(_ context.Context, args []string) error {
	_, err := yargs.ParseAndHandleHelp[struct{}, struct{}, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, versionString())
	return nil
}

func versionString() string {
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		trimmed = "dev"
	}
	if strings.TrimSpace(commit) == "" {
		return trimmed
	}
	return fmt.Sprintf("%s (%s)", trimmed, strings.TrimSpace(commit))
}

type configFlags struct {
	Presentation string `flag:"presentation" help:"auto, overlay, inline or line"`
	Width        int    `flag:"width" help:"dialog width in columns"`
	StringsFile  string `flag:"strings-file" help:"TOML file with a [strings] table"`
	StateDir     string `flag:"state-dir" help:"directory for dialogs saved across restarts"`
	LogLevel     string `flag:"log-level" help:"debug, info, warn or error"`
	LogFile      string `flag:"log-file" help:"write logs to this file instead of stderr"`
	Reset        bool   `flag:"reset" help:"remove the config file"`
}

func handleConfigCommand(_ context.Context, args []string) error {
	result, err := yargs.ParseAndHandleHelp[struct{}, configFlags, struct{}](args, helpConfig)
	if errors.Is(err, yargs.ErrShown) {
		return nil
	}
	if err != nil {
		return err
	}
	flags := result.SubCommandFlags
	if flags.Reset {
		if err := config.RemoveConfigFile(); err != nil {
			return fmt.Errorf("failed to remove config: %w", err)
		}
		fmt.Fprintf(os.Stdout, "removed %s\n", config.Path())
		return nil
	}

	cfg, path, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	updated := applyConfigFlags(&cfg, flags)
	if !updated {
		return showConfig(os.Stdout, cfg, path)
	}
	if err := cfg.Validate(); err != nil {
		return newUsageError(err.Error())
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(os.Stdout, "wrote config to %s\n", path)
	return nil
}

func applyConfigFlags(cfg *config.Config, flags configFlags) bool {
	updated := false
	set := func(dst *string, value string) {
		if value = strings.TrimSpace(value); value != "" {
			*dst = value
			updated = true
		}
	}
	set(&cfg.Presentation, flags.Presentation)
	set(&cfg.StringsFile, flags.StringsFile)
	set(&cfg.StateDir, flags.StateDir)
	set(&cfg.LogLevel, flags.LogLevel)
	set(&cfg.LogFile, flags.LogFile)
	if flags.Width != 0 {
		cfg.Width = flags.Width
		updated = true
	}
	return updated
}

func showConfig(out io.Writer, cfg config.Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}
	fmt.Fprintf(out, "Config path: %s\n%s\n", path, string(data))
	return nil
}
