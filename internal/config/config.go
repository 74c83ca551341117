// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/tenth151/AsciiArtBoardReader/internal/tui/dialogs"
)

const appName = "aaboard"

const (
	PresentationAuto    = "auto"
	PresentationOverlay = "overlay"
	PresentationInline  = "inline"
	PresentationLine    = "line"
)

type Config struct {
	Presentation string `toml:"presentation" validate:"omitempty,oneof=auto overlay inline line"`
	Width        int    `toml:"width" validate:"omitempty,min=20,max=160"`
	StringsFile  string `toml:"strings_file"`
	StateDir     string `toml:"state_dir"`
	LogLevel     string `toml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFile      string `toml:"log_file"`
}

func Default() Config {
	return Config{
		Presentation: PresentationAuto,
		Width:        dialogs.DefaultWidth,
		StateDir:     filepath.Join(xdg.StateHome, appName, "dialogs"),
		LogLevel:     "warn",
	}
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (got %v)", e.Field(), e.Tag(), e.Value())
		}
		return err
	}
	return nil
}

// Load reads the config from the default path. A missing file yields the
// defaults.
func Load() (Config, string, error) {
	path := Path()
	cfg, err := LoadFile(path)
	return cfg, path, err
}

func LoadFile(path string) (Config, error) {
	cfg, err := loadToml(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func Path() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

func loadToml(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func RemoveConfigFile() error {
	if err := os.Remove(Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
