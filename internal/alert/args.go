// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import (
	"github.com/tenth151/AsciiArtBoardReader/internal/bundle"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui/dialogs"
)

// Keys of the argument bag.
const (
	KeyTitle         = "title"
	KeyMessage       = "message"
	KeyItems         = "items"
	KeyPositiveLabel = "positive_label"
	KeyNegativeLabel = "negative_label"
	KeyCancelable    = "cancelable"
	KeyParams        = "params"
	KeyRequestCode   = "request_code"
)

// specFromArgs reads the widget configuration from a bag. Missing keys fall
// back to an empty value, except cancelable which defaults to true.
func specFromArgs(args bundle.Bundle, width int) dialogs.AlertSpec {
	return dialogs.AlertSpec{
		Title:      args.GetString(KeyTitle),
		Message:    args.GetString(KeyMessage),
		Items:      args.GetStrings(KeyItems),
		Positive:   args.GetString(KeyPositiveLabel),
		Negative:   args.GetString(KeyNegativeLabel),
		Cancelable: args.GetBool(KeyCancelable, true),
		Width:      width,
	}
}
