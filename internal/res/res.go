// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package res resolves string resource identifiers to display text.
package res

import (
	"errors"
	"fmt"
	"maps"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

type ID string

const (
	OK     ID = "ok"
	Cancel ID = "cancel"
	Yes    ID = "yes"
	No     ID = "no"
	Delete ID = "delete"
	Close  ID = "close"
)

var ErrUnknownID = errors.New("unknown string resource")

type Catalog struct {
	entries map[ID]string
}

var builtin = map[ID]string{
	OK:     "OK",
	Cancel: "Cancel",
	Yes:    "Yes",
	No:     "No",
	Delete: "Delete",
	Close:  "Close",
}

func Builtin() *Catalog {
	return &Catalog{entries: maps.Clone(builtin)}
}

func New(entries map[ID]string) *Catalog {
	c := Builtin()
	maps.Copy(c.entries, entries)
	return c
}

func (c *Catalog) String(id ID) (string, error) {
	if c == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	s, ok := c.entries[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	return s, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

type catalogFile struct {
	Strings map[string]string `toml:"strings"`
}

// Load reads a TOML file with a [strings] table and overlays it on the
// builtin labels. An empty path returns the builtins.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	entries := make(map[ID]string, len(file.Strings))
	for k, v := range file.Strings {
		entries[ID(k)] = v
	}
	return New(entries), nil
}
