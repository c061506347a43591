// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package debug holds the logger shared by all paint packages and the
// contract assertions used by the tessellator and the text layout engine.
//
// Assertions guard invariants whose violation means a bug inside paint
// itself, never bad caller input. Built with the paintdebug tag they panic;
// otherwise a failed assertion is logged at warn level and execution
// continues with degraded (usually empty) output.
//
//	go test -tags paintdebug ./...
package debug
