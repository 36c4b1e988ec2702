// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

import (
	"math/bits"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// unalignedArch lists architectures where unaligned word access is cheap and legal.
var unalignedArch = map[string]bool{
	"386":     true,
	"amd64":   true,
	"arm64":   true,
	"ppc64le": true,
}

// UnsafeSupported reports whether the unsafe engine can run on this platform.
// It needs a little-endian byte order and unaligned word access.
func UnsafeSupported() bool {
	return !cpu.IsBigEndian && unalignedArch[runtime.GOARCH]
}

// unsafeMemory reads and writes through raw pointers without bounds checks.
type unsafeMemory struct{}

func at(b []byte, i int) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(b)), i)
}

func (unsafeMemory) load16(b []byte, i int) uint16 {
	return *(*uint16)(at(b, i))
}

func (unsafeMemory) load32(b []byte, i int) uint32 {
	return *(*uint32)(at(b, i))
}

// matchLen compares 8 bytes at a time; the first differing byte is the
// number of trailing zero bits of the XOR divided by 8 on little-endian.
func (unsafeMemory) matchLen(b []byte, cur, ref, limit int) int {
	n := 0
	for cur+n+8 <= limit {
		diff := *(*uint64)(at(b, cur+n)) ^ *(*uint64)(at(b, ref+n))
		if diff != 0 {
			return n + bits.TrailingZeros64(diff)>>3
		}
		n += 8
	}

	for cur+n < limit && *(*byte)(at(b, cur+n)) == *(*byte)(at(b, ref+n)) {
		n++
	}

	return n
}

// copyMatch moves whole words when the distance allows it. A word read at
// pos-dist never overlaps the word being written when dist >= 8.
func (unsafeMemory) copyMatch(dst []byte, pos, dist, length int) {
	from := pos - dist
	if dist >= 8 {
		for length >= 8 {
			*(*uint64)(at(dst, pos)) = *(*uint64)(at(dst, from))
			pos += 8
			from += 8
			length -= 8
		}
	}

	for ; length > 0; length-- {
		*(*byte)(at(dst, pos)) = *(*byte)(at(dst, from))
		pos++
		from++
	}
}
