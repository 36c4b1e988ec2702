// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// onceLoader runs a load step at most once per process and replays its outcome
// to every caller, including callers that raced the first one.
type onceLoader struct {
	probe  func() error
	once   sync.Once
	err    error
	loaded atomic.Bool
}

func newOnceLoader(probe func() error) *onceLoader {
	return &onceLoader{probe: probe}
}

// Load runs the probe on first use and returns its cached result.
func (l *onceLoader) Load() error {
	l.once.Do(func() {
		l.err = l.run()
		l.loaded.Store(l.err == nil)
	})

	return l.err
}

// Loaded reports whether a load already completed successfully.
func (l *onceLoader) Loaded() bool {
	return l.loaded.Load()
}

func (l *onceLoader) run() (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("load panicked: %v", p)
		}
	}()

	return l.probe()
}
