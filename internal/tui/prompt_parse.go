// Copyright (c) 2026 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errNoChoices      = errors.New("no choices available")
	errInvalidChoice  = errors.New("invalid selection")
	errChoiceOutRange = errors.New("selection out of range")
)

// parseYesNo accepts y/yes and n/no. Blank input is not an answer.
func parseYesNo(input string) (bool, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// parseSelection maps a 1-based choice number to an index below max.
func parseSelection(input string, max int) (int, error) {
	if max <= 0 {
		return 0, errNoChoices
	}
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errInvalidChoice
	}
	if value < 1 || value > max {
		return 0, errChoiceOutRange
	}
	return value - 1, nil
}
