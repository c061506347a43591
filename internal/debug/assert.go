// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package debug

import (
	"context"
	"fmt"
	"log/slog"
)

// Assert checks an internal invariant. In paintdebug builds a false cond
// panics with the formatted message; in release builds it is logged.
func Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if Enabled {
		panic("paint: assertion failed: " + msg)
	}
	l := Logger()
	if l.Enabled(context.Background(), slog.LevelWarn) {
		l.Warn("paint: assertion failed", "msg", msg)
	}
}
