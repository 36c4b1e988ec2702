// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"errors"
	"fmt"
)

// Fastest walks the tiers native, unsafe, safe and returns the first one that
// certifies. Each tier is tried at most once.
//
// The native tier is tried only if opts.AllowNativeLoad is set or the native
// backend was already loaded. Unavailable or uncertified tiers are skipped;
// ErrBackendShapeMismatch stops the walk immediately. A failure of the safe
// tier is returned because no tier is left. opts may be nil.
func (r *Registry) Fastest(opts *ResolveOptions) (*Factory, error) {
	if opts == nil {
		opts = DefaultResolveOptions()
	}
	logger := opts.logger()

	if !opts.AllowNativeLoad && !r.loaded(TierNative) {
		logger.Debug("lz4 backend skipped", "tier", TierNative, "reason", "native load not allowed")
		return r.FastestPortable(opts)
	}

	factory, err := r.Resolve(TierNative)
	if err == nil {
		return factory, nil
	}

	if !recoverable(err) {
		return nil, err
	}

	logger.Debug("lz4 backend rejected", "tier", TierNative, "next", TierUnsafe, "error", err)
	return r.FastestPortable(opts)
}

// FastestPortable returns the unsafe tier if it certifies and the safe tier
// otherwise. It never loads the native engine. opts may be nil.
func (r *Registry) FastestPortable(opts *ResolveOptions) (*Factory, error) {
	logger := opts.logger()

	factory, err := r.Resolve(TierUnsafe)
	if err == nil {
		return factory, nil
	}

	if !recoverable(err) {
		return nil, err
	}

	logger.Debug("lz4 backend rejected", "tier", TierUnsafe, "next", TierSafe, "error", err)

	factory, err = r.Resolve(TierSafe)
	if err != nil {
		return nil, fmt.Errorf("lz4: no usable backend: %w", err)
	}

	return factory, nil
}

// recoverable reports whether the resolver may move on to the next tier.
func recoverable(err error) bool {
	if errors.Is(err, ErrBackendShapeMismatch) {
		return false
	}

	return errors.Is(err, ErrBackendUnavailable) || errors.Is(err, ErrCertificationFailure)
}
