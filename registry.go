// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"errors"
	"fmt"
)

// Registry maps tiers to backends. It is built once and never modified, so
// it is safe for concurrent use.
type Registry struct {
	backends map[Tier]Backend
}

// NewRegistry returns a registry holding backends. Each tier may appear once.
func NewRegistry(backends ...Backend) (*Registry, error) {
	registry := &Registry{backends: make(map[Tier]Backend, len(backends))}

	for _, backend := range backends {
		if !backend.Tier.valid() {
			return nil, fmt.Errorf("lz4: %w: %s", ErrUnknownTier, backend.Tier)
		}

		if _, exists := registry.backends[backend.Tier]; exists {
			return nil, fmt.Errorf("lz4: duplicate backend for tier %s", backend.Tier)
		}

		if backend.Compressors == nil || backend.Decompressors == nil || backend.UnknownSizeDecompressors == nil {
			return nil, shapeError(backend.Tier, "missing capability provider")
		}

		registry.backends[backend.Tier] = backend
	}

	return registry, nil
}

// Resolve loads, binds and certifies the backend of tier. The returned error
// wraps ErrBackendUnavailable, ErrBackendShapeMismatch, ErrCertificationFailure
// or ErrUnknownTier. A Factory is returned only if every step succeeded.
func (r *Registry) Resolve(tier Tier) (*Factory, error) {
	if !tier.valid() {
		return nil, fmt.Errorf("lz4: %w: %s", ErrUnknownTier, tier)
	}

	backend, ok := r.backends[tier]
	if !ok {
		return nil, tierError(tier, ErrBackendUnavailable, errors.New("not registered"))
	}

	if err := backend.load(); err != nil {
		return nil, tierError(tier, ErrBackendUnavailable, err)
	}

	set, err := backend.bind()
	if err != nil {
		return nil, err
	}

	if err := certify(set); err != nil {
		return nil, tierError(tier, ErrCertificationFailure, err)
	}

	return &Factory{tier: tier, set: set}, nil
}

// loaded reports whether the backend of tier was already loaded once.
func (r *Registry) loaded(tier Tier) bool {
	backend, ok := r.backends[tier]
	return ok && backend.loaded()
}
