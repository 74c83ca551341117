// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLabels(t *testing.T) {
	c := Builtin()
	s, err := c.String(Yes)
	require.NoError(t, err)
	assert.Equal(t, "Yes", s)

	_, err = c.String("nope")
	assert.True(t, errors.Is(err, ErrUnknownID))
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	_, err := c.String(OK)
	assert.ErrorIs(t, err, ErrUnknownID)
	assert.Zero(t, c.Len())
}

func TestLoadOverlaysBuiltins(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/strings.toml", []byte(`
[strings]
yes = "Hai"
delete_title = "Delete this thread?"
`), 0o644))

	c, err := Load(fs, "/strings.toml")
	require.NoError(t, err)

	s, err := c.String(Yes)
	require.NoError(t, err)
	assert.Equal(t, "Hai", s)

	s, err = c.String("delete_title")
	require.NoError(t, err)
	assert.Equal(t, "Delete this thread?", s)

	s, err = c.String(No)
	require.NoError(t, err)
	assert.Equal(t, "No", s)
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, Builtin().Len(), c.Len())
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(fs, "/missing.toml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/bad.toml", []byte("[strings"), 0o644))
	_, err = Load(fs, "/bad.toml")
	assert.Error(t, err)
}
