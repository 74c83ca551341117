// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import "errors"

var (
	// ErrNoContext is returned when strings must be resolved or a dialog
	// presented but the builder's host is not attached to a screen.
	ErrNoContext     = errors.New("alert: no screen context reachable")
	ErrNoListener    = errors.New("alert: listener is nil")
	ErrNotShown      = errors.New("alert: dialog is not active")
	ErrNotFound      = errors.New("alert: no dialog with that tag")
	ErrNotCancelable = errors.New("alert: dialog is not cancelable")
	// ErrNoActions is returned for a dialog that offers no items or buttons
	// and cannot be cancelled, which no input could ever close.
	ErrNoActions = errors.New("alert: dialog has no items or buttons and is not cancelable")
)
