// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenth151/AsciiArtBoardReader/internal/tui/dialogs"
)

func useTempConfigHome(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return tmp
}

func TestSaveAndLoad(t *testing.T) {
	tmp := useTempConfigHome(t)

	cfg := Default()
	cfg.Presentation = PresentationInline
	cfg.Width = 60
	cfg.StringsFile = "/etc/aaboard/strings.toml"

	path := Path()
	assert.Equal(t, filepath.Join(tmp, "aaboard", "config.toml"), path)
	require.NoError(t, Save(path, cfg))

	loaded, loadedPath, err := Load()
	require.NoError(t, err)
	assert.Equal(t, path, loadedPath)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	useTempConfigHome(t)

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, PresentationAuto, cfg.Presentation)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	useTempConfigHome(t)
	path := Path()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("presentation = \"line\"\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, PresentationLine, cfg.Presentation)
	assert.Equal(t, dialogs.DefaultWidth, cfg.Width)
}

func TestValidateRejectsUnknownPresentation(t *testing.T) {
	cfg := Default()
	cfg.Presentation = "popup"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Presentation")

	cfg = Default()
	cfg.Width = 5
	assert.Error(t, cfg.Validate())
}

func TestLoadFileRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"loud\"\n"), 0o644))
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestRemoveConfigFile(t *testing.T) {
	useTempConfigHome(t)
	require.NoError(t, Save(Path(), Default()))
	require.NoError(t, RemoveConfigFile())
	_, err := os.Stat(Path())
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, RemoveConfigFile())
}
