// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store keeps the argument bags of open dialogs on disk so they can
// be shown again after the process restarts.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Record is one persisted dialog.
type Record struct {
	ID                string         `toml:"id"`
	Tag               string         `toml:"tag"`
	Owner             string         `toml:"owner"`
	TargetRequestCode int            `toml:"target_request_code"`
	Args              map[string]any `toml:"args"`
}

// file is the on-disk layout. Owner is kept at file level so that records of
// screen dialogs stay without an owner of their own.
type file struct {
	Owner   string   `toml:"owner"`
	Dialogs []Record `toml:"dialogs"`
}

type Store struct {
	fs  afero.Fs
	dir string
}

func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// NewID returns a fresh record id.
func NewID() string { return uuid.NewString() }

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func (s *Store) path(owner string) string {
	name := unsafeChars.ReplaceAllString(owner, "_")
	if name == "" {
		name = "_"
	}
	return filepath.Join(s.dir, name+".toml")
}

// Save replaces the records stored for owner. Saving no records removes the
// file.
func (s *Store) Save(owner string, records []Record) error {
	if len(records) == 0 {
		return s.Clear(owner)
	}
	records = slices.Clone(records)
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = NewID()
		}
	}
	data, err := toml.Marshal(file{Owner: owner, Dialogs: records})
	if err != nil {
		return fmt.Errorf("encode dialogs for %s: %w", owner, err)
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	tmp := s.path(owner) + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return err
	}
	return s.fs.Rename(tmp, s.path(owner))
}

func (s *Store) Load(owner string) ([]Record, error) {
	f, err := s.read(s.path(owner))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode dialogs for %s: %w", owner, err)
	}
	return f.Dialogs, nil
}

func (s *Store) read(path string) (file, error) {
	var f file
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return f, err
	}
	err = toml.Unmarshal(data, &f)
	return f, err
}

func (s *Store) Clear(owner string) error {
	err := s.fs.Remove(s.path(owner))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Owners lists owners that currently have saved dialogs.
func (s *Store) Owners() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	owners := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		f, err := s.read(filepath.Join(s.dir, entry.Name()))
		if err != nil || len(f.Dialogs) == 0 {
			continue
		}
		owner := f.Owner
		if owner == "" {
			owner = strings.TrimSuffix(entry.Name(), ".toml")
		}
		owners = append(owners, owner)
	}
	return owners, nil
}
