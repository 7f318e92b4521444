// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// errors.go: sentinel errors for the builder package.
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a constructor could not be applied.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownGraph indicates a name Named does not know.
var ErrUnknownGraph = errors.New("builder: unknown graph name")
