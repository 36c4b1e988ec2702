// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "log/slog"

// ResolveOptions configures the fallback resolver.
type ResolveOptions struct {
	// AllowNativeLoad permits the resolver to perform the process-wide native load.
	// When false, the native tier is tried only if an earlier call already loaded it.
	// Set it to false in code that must not be the first to touch the native engine
	// (plugins, sandboxed workers).
	AllowNativeLoad bool

	// Logger receives debug records for every tier that is skipped or rejected.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultResolveOptions returns options that allow the native load.
func DefaultResolveOptions() *ResolveOptions {
	return &ResolveOptions{AllowNativeLoad: true}
}

func (o *ResolveOptions) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.Default()
	}

	return o.Logger
}
