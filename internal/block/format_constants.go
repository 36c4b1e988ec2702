// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

// LZ4 block format constants.

// MaxInputSize is the largest input a block can describe.
const MaxInputSize = 0x7E000000

// Sequence layout bounds.
const (
	minMatch     = 4                // shortest encodable match
	lastLiterals = 5                // the last 5 bytes of a block are always literals
	mfLimit      = 12               // the last match must start at least 12 bytes before the end
	minInputSize = mfLimit + 1      // inputs shorter than this are stored as literals
	maxOffset    = 0xffff           // largest back-reference distance
	runMask      = 0x0f             // nibble value that announces a length extension
	lengthByte   = 0xff             // extension byte value meaning "more follows"
	tokenLitBits = 4                // literal length occupies the high nibble
	maxLength    = MaxInputSize + 1 // guard for extension accumulation
)

// Hash parameters used by the compressors.
const (
	hashPrime = 2654435761

	fastHashLog   = 14                 // fast parser table: 16K entries
	fastTableSize = 1 << fastHashLog   // number of fast table slots
	fastSkipShift = 6                  // literal skip acceleration for the fast parser
	highHashLog   = 15                 // high parser chain heads: 32K entries
	highHashSize  = 1 << highHashLog   // number of chain heads
	highWindow    = maxOffset + 1      // chain ring size
	highMask      = highWindow - 1     // ring index mask
	highDepth     = 256                // chain probes per position
)
