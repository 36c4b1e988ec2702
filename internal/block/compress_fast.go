// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

import "sync"

// fastTable maps a 4-byte hash to the last position seen plus one (0 = empty).
type fastTable [fastTableSize]int32

// fastTablePool stores reusable hash tables to reduce allocations.
var fastTablePool = sync.Pool{
	New: func() any {
		return &fastTable{}
	},
}

// acquireFastTable returns a zeroed table from the pool.
func acquireFastTable() *fastTable {
	table := fastTablePool.Get().(*fastTable)
	clear(table[:])
	return table
}

// releaseFastTable returns a table to the pool.
func releaseFastTable(table *fastTable) {
	fastTablePool.Put(table)
}

func hashFast(v uint32) int {
	return int((v * hashPrime) >> (32 - fastHashLog))
}

// compressFast is the greedy single-probe parser. Literal runs that find no
// match are skipped faster the longer they get.
func compressFast[M memory](dst, src []byte) (int, error) {
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}

	var mem M
	inputLen := len(src)
	outPos := 0
	literalStart := 0

	if inputLen >= minInputSize {
		table := acquireFastTable()
		defer releaseFastTable(table)

		inputLimit := inputLen - mfLimit
		matchLimit := inputLen - lastLiterals
		inputPos := 0

		for inputPos < inputLimit {
			seq := mem.load32(src, inputPos)
			slot := hashFast(seq)
			matchPos := int(table[slot]) - 1
			table[slot] = int32(inputPos + 1) //nolint:gosec // G115: input size bounded by MaxInputSize

			if matchPos < 0 || inputPos-matchPos > maxOffset || mem.load32(src, matchPos) != seq {
				inputPos += 1 + (inputPos-literalStart)>>fastSkipShift
				continue
			}

			// Grow the match backwards over pending literals.
			for inputPos > literalStart && matchPos > 0 && src[inputPos-1] == src[matchPos-1] {
				inputPos--
				matchPos--
			}

			matchLen := minMatch + mem.matchLen(src, inputPos+minMatch, matchPos+minMatch, matchLimit)
			if err := emitSequence(dst, &outPos, src[literalStart:inputPos], inputPos-matchPos, matchLen); err != nil {
				return 0, err
			}

			inputPos += matchLen
			literalStart = inputPos

			if inputPos < inputLimit {
				// Seed a position inside the match so back-to-back repeats are found.
				seed := inputPos - 2
				table[hashFast(mem.load32(src, seed))] = int32(seed + 1) //nolint:gosec // G115: bounded as above
			}
		}
	}

	if err := emitLastLiterals(dst, &outPos, src[literalStart:]); err != nil {
		return 0, err
	}

	return outPos, nil
}
