// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

import "sync"

// highDict owns all mutable state for one high-compression run.
type highDict struct {
	head       [highHashSize]int32 // head is the newest position+1 for each hash key; 0 means empty.
	chain      [highWindow]uint16  // chain stores the distance to the previous position with the same key.
	nextInsert int                 // nextInsert is the first position not yet linked into the chains.
}

// highDictPool stores reusable dictionaries; each is ~200 KiB.
var highDictPool = sync.Pool{
	New: func() any {
		return &highDict{}
	},
}

// acquireHighDict returns a reset dictionary. chain entries are always written
// before they are read, so only the heads need clearing.
func acquireHighDict() *highDict {
	dict := highDictPool.Get().(*highDict)
	clear(dict.head[:])
	dict.nextInsert = 0
	return dict
}

// releaseHighDict returns a dictionary to the pool.
func releaseHighDict(dict *highDict) {
	highDictPool.Put(dict)
}

func hashHigh(v uint32) int {
	return int((v * hashPrime) >> (32 - highHashLog))
}

// highInsert links every position in [nextInsert, upTo) into its hash chain.
func highInsert[M memory](dict *highDict, src []byte, upTo int) {
	var mem M
	for pos := dict.nextInsert; pos < upTo; pos++ {
		key := hashHigh(mem.load32(src, pos))

		delta := 0
		if prev := int(dict.head[key]) - 1; prev >= 0 && pos-prev <= maxOffset {
			delta = pos - prev
		}

		dict.chain[pos&highMask] = uint16(delta) //nolint:gosec // G115: delta <= maxOffset
		dict.head[key] = int32(pos + 1)          //nolint:gosec // G115: input size bounded by MaxInputSize
	}

	dict.nextInsert = max(dict.nextInsert, upTo)
}

// highLongestMatch walks the chain for pos and returns the longest match found
// within highDepth probes. matchLen is 0 when nothing of minMatch bytes matched.
func highLongestMatch[M memory](dict *highDict, src []byte, pos, matchLimit int) (matchPos, matchLen int) {
	var mem M
	highInsert[M](dict, src, pos)

	seq := mem.load32(src, pos)
	candidate := int(dict.head[hashHigh(seq)]) - 1

	for depth := highDepth; depth > 0 && candidate >= 0 && pos-candidate <= maxOffset; depth-- {
		if mem.load32(src, candidate) == seq {
			length := minMatch + mem.matchLen(src, pos+minMatch, candidate+minMatch, matchLimit)
			if length > matchLen {
				matchPos, matchLen = candidate, length
				if pos+length >= matchLimit {
					break
				}
			}
		}

		delta := int(dict.chain[candidate&highMask])
		if delta == 0 {
			break
		}
		candidate -= delta
	}

	return matchPos, matchLen
}

// compressHigh is the hash-chain parser with one step of lazy matching.
// It is slower than compressFast and finds longer matches.
func compressHigh[M memory](dst, src []byte) (int, error) {
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}

	inputLen := len(src)
	outPos := 0
	literalStart := 0

	if inputLen >= minInputSize {
		dict := acquireHighDict()
		defer releaseHighDict(dict)

		inputLimit := inputLen - mfLimit
		matchLimit := inputLen - lastLiterals
		inputPos := 0

		for inputPos < inputLimit {
			matchPos, matchLen := highLongestMatch[M](dict, src, inputPos, matchLimit)
			if matchLen < minMatch {
				inputPos++
				continue
			}

			// Prefer a strictly longer match starting one byte later.
			if inputPos+1 < inputLimit {
				nextPos, nextLen := highLongestMatch[M](dict, src, inputPos+1, matchLimit)
				if nextLen > matchLen {
					inputPos++
					matchPos, matchLen = nextPos, nextLen
				}
			}

			if err := emitSequence(dst, &outPos, src[literalStart:inputPos], inputPos-matchPos, matchLen); err != nil {
				return 0, err
			}

			inputPos += matchLen
			literalStart = inputPos
		}
	}

	if err := emitLastLiterals(dst, &outPos, src[literalStart:]); err != nil {
		return 0, err
	}

	return outPos, nil
}
