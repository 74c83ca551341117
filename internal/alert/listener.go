// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alert builds alert dialogs, presents them on a screen or pane and
// reports the user's choice back to the listener that asked for them.
package alert

import (
	"github.com/tenth151/AsciiArtBoardReader/internal/bundle"
	"github.com/tenth151/AsciiArtBoardReader/internal/tui/dialogs"
)

// Result codes passed to OnSucceeded. List selections report the item
// position instead, which is always >= 0.
const (
	ResultPositive = dialogs.ButtonPositive
	ResultNegative = dialogs.ButtonNegative
)

// NoRequestCode is reported when neither the arguments nor the target carry
// a request code.
const NoRequestCode = -1

// Listener receives the outcome of a dialog. params is the bag given to
// Builder.Params, or nil.
type Listener interface {
	OnSucceeded(requestCode, resultCode int, params bundle.Bundle)
	OnCancelled(requestCode int, params bundle.Bundle)
}

// ResultName renders a result code for logs and command output.
func ResultName(resultCode int) string {
	switch resultCode {
	case ResultPositive:
		return "positive"
	case ResultNegative:
		return "negative"
	default:
		return "item"
	}
}
