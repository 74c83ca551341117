// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
)

// Logger is shared by all packages. It discards until Init is called.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init configures Logger. With a file path, records are written as JSON to
// that file so they do not disturb a running TUI; otherwise they go to
// stderr through tint.
func Init(level, file string) (io.Closer, error) {
	lvl := ParseLevel(level)
	if file == "" {
		Logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: lvl}))
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl}))
	return f, nil
}

// Discard resets Logger to drop everything.
func Discard() {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
