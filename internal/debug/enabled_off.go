// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !paintdebug

package debug

// Enabled reports whether failed assertions panic.
const Enabled = false
