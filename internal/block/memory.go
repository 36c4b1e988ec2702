// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

import "encoding/binary"

// memory is how an engine reads and copies bytes. Parsers are generic over it
// so the safe and unsafe engines share one implementation of the format.
//
// Callers guarantee every index passed in is within bounds.
type memory interface {
	// load16 reads a little-endian uint16 at b[i].
	load16(b []byte, i int) uint16
	// load32 reads a little-endian uint32 at b[i].
	load32(b []byte, i int) uint32
	// matchLen counts equal bytes b[cur+k] == b[ref+k] for cur+k < limit.
	matchLen(b []byte, cur, ref, limit int) int
	// copyMatch copies length bytes from dst[pos-dist:] to dst[pos:], handling overlap.
	copyMatch(dst []byte, pos, dist, length int)
}

// safeMemory uses bounds-checked slice access only.
type safeMemory struct{}

func (safeMemory) load16(b []byte, i int) uint16 {
	return binary.LittleEndian.Uint16(b[i:])
}

func (safeMemory) load32(b []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(b[i:])
}

func (safeMemory) matchLen(b []byte, cur, ref, limit int) int {
	n := 0
	for cur+n < limit && b[cur+n] == b[ref+n] {
		n++
	}

	return n
}

// copyMatch copies a back-reference. If dist < length, source and destination
// overlap and the copy must go byte by byte so repeated patterns expand
// correctly; the built-in copy has memmove semantics and would not.
func (safeMemory) copyMatch(dst []byte, pos, dist, length int) {
	start := pos - dist
	if dist >= length {
		copy(dst[pos:pos+length], dst[start:start+length])
		return
	}

	for i := range length {
		dst[pos+i] = dst[start+i]
	}
}
