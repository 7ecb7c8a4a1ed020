// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paragraph/errors.go
// Summary: Sentinel errors for cache contract violations.

package paragraph

import "errors"

var (
	// ErrOutOfOrderInsertion is returned when a height is recorded for a line
	// more than one past the last known line. Lines must be laid out in
	// increasing index order the first time.
	ErrOutOfOrderInsertion = errors.New("paragraph: height set out of order")

	// ErrInconsistentBounds reports a windowed line whose bounds were never
	// calculated. A bounds-establishing pass (LayoutEverything or Scroll) must
	// run before painting.
	ErrInconsistentBounds = errors.New("paragraph: windowed line has no bounds")
)
