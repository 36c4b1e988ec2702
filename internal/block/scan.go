// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

// BlockEnd walks a block that decodes to exactly size bytes and returns the
// number of src bytes it occupies. No output is produced. It lets a decoder
// that requires an exact-length input find the end of a block followed by
// unrelated data.
func BlockEnd(src []byte, size int) (int, error) {
	if size < 0 {
		return 0, ErrMalformedInput
	}

	if size == 0 {
		if len(src) == 0 || src[0] != 0 {
			return 0, ErrMalformedInput
		}
		return 1, nil
	}

	inPos, outPos := 0, 0
	for {
		token, literalLen, err := readLiteralHeader(src, &inPos)
		if err != nil {
			return 0, err
		}

		if outPos+literalLen > size || inPos+literalLen > len(src) {
			return 0, ErrMalformedInput
		}
		inPos += literalLen
		outPos += literalLen

		if outPos == size {
			return inPos, nil
		}

		offset, matchLen, err := readMatch[safeMemory](src, &inPos, token)
		if err != nil {
			return 0, err
		}

		if offset > outPos || outPos+matchLen >= size {
			return 0, ErrMalformedInput
		}
		outPos += matchLen
	}
}

// Measure returns the decoded size of src, which must be exactly one block.
func Measure(src []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrMalformedInput
	}

	inPos, outPos := 0, 0
	for {
		token, literalLen, err := readLiteralHeader(src, &inPos)
		if err != nil {
			return 0, err
		}

		if inPos+literalLen > len(src) {
			return 0, ErrMalformedInput
		}
		inPos += literalLen
		outPos += literalLen

		if inPos == len(src) {
			return outPos, nil
		}

		offset, matchLen, err := readMatch[safeMemory](src, &inPos, token)
		if err != nil {
			return 0, err
		}

		if offset > outPos {
			return 0, ErrMalformedInput
		}

		outPos += matchLen
		if outPos > maxLength {
			return 0, ErrMalformedInput
		}
	}
}

// readLiteralHeader reads a token and its literal length extension.
func readLiteralHeader(src []byte, inPos *int) (token byte, literalLen int, err error) {
	token, err = readByte(src, inPos)
	if err != nil {
		return 0, 0, err
	}

	literalLen = int(token >> tokenLitBits)
	if literalLen == runMask {
		ext, err := readLength(src, inPos)
		if err != nil {
			return 0, 0, err
		}
		literalLen += ext
	}

	return token, literalLen, nil
}
