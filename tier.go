// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package lz4

import "fmt"

// Tier identifies one implementation family of the codec.
type Tier uint8

const (
	// TierNative is the assembly-accelerated engine. It is probed once per process.
	TierNative Tier = iota + 1
	// TierSafe is the portable engine using bounds-checked slice access only.
	// It has no runtime requirements and is the last resort of the fallback chain.
	TierSafe
	// TierUnsafe is the portable engine using unaligned word access through package unsafe.
	TierUnsafe
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierNative:
		return "native"
	case TierSafe:
		return "safe"
	case TierUnsafe:
		return "unsafe"
	default:
		return fmt.Sprintf("tier(%d)", uint8(t))
	}
}

// valid reports whether t is one of the defined tiers.
func (t Tier) valid() bool {
	return t >= TierNative && t <= TierUnsafe
}

// ParseTier parses a tier from its name.
func ParseTier(name string) (Tier, error) {
	switch name {
	case "native":
		return TierNative, nil
	case "safe":
		return TierSafe, nil
	case "unsafe":
		return TierUnsafe, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTier, name)
	}
}

// Tiers returns every tier in fallback order: native, unsafe, safe.
func Tiers() []Tier {
	return []Tier{TierNative, TierUnsafe, TierSafe}
}
