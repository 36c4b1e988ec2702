// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

// decompressKnown decodes exactly len(dst) bytes from src and returns the
// number of src bytes consumed. src may carry trailing data after the block.
// Every inconsistency with the expected size is reported as ErrMalformedInput.
func decompressKnown[M memory](dst, src []byte) (int, error) {
	var mem M

	if len(dst) == 0 {
		// An empty block is a single zero token.
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

		if outPos+literalLen > len(dst) {
			return 0, ErrMalformedInput
		}

		if err := copyLiteralRun(src, &inPos, dst, &outPos, literalLen); err != nil {
			return 0, err
		}

		if outPos == len(dst) {
			return inPos, nil
		}

		offset, matchLen, err := readMatch[M](src, &inPos, token)
		if err != nil {
			return 0, err
		}

		// A block never ends on a match: the output must still have room for literals.
		if offset > outPos || outPos+matchLen >= len(dst) {
			return 0, ErrMalformedInput
		}

		mem.copyMatch(dst, outPos, offset, matchLen)
		outPos += matchLen
	}
}

// decompressUnknown decodes the whole of src, which must be exactly one block,
// into dst and returns the number of bytes written.
func decompressUnknown[M memory](dst, src []byte) (int, error) {
	var mem M

	if len(src) == 0 {
		return 0, ErrMalformedInput
	}

	inPos, outPos := 0, 0
	for {
		token, literalLen, err := readLiteralHeader(src, &inPos)
		if err != nil {
			return 0, err
		}

		if err := copyLiteralRun(src, &inPos, dst, &outPos, literalLen); err != nil {
			return 0, err
		}

		// The last sequence is literals only and ends the block.
		if inPos == len(src) {
			return outPos, nil
		}

		offset, matchLen, err := readMatch[M](src, &inPos, token)
		if err != nil {
			return 0, err
		}

		if offset > outPos {
			return 0, ErrMalformedInput
		}

		if outPos+matchLen > len(dst) {
			return 0, ErrInsufficientOutputSpace
		}

		mem.copyMatch(dst, outPos, offset, matchLen)
		outPos += matchLen
	}
}

// readMatch reads the offset and the full match length that follow a literal run.
func readMatch[M memory](src []byte, inPos *int, token byte) (offset, matchLen int, err error) {
	var mem M

	if *inPos+2 > len(src) {
		return 0, 0, ErrMalformedInput
	}

	offset = int(mem.load16(src, *inPos))
	*inPos += 2
	if offset == 0 {
		return 0, 0, ErrMalformedInput
	}

	matchLen = int(token&runMask) + minMatch
	if token&runMask == runMask {
		ext, err := readLength(src, inPos)
		if err != nil {
			return 0, 0, err
		}
		matchLen += ext
	}

	return offset, matchLen, nil
}

// readByte reads one byte from src at *inPos and advances *inPos.
func readByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrMalformedInput
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readLength consumes a length extension: 0xff bytes followed by a terminating byte.
// The sum is capped so malformed inputs cannot overflow length arithmetic.
func readLength(src []byte, inPos *int) (int, error) {
	length := 0
	for {
		b, err := readByte(src, inPos)
		if err != nil {
			return 0, err
		}

		length += int(b)
		if length > maxLength {
			return 0, ErrMalformedInput
		}

		if b != lengthByte {
			return length, nil
		}
	}
}

// copyLiteralRun copies n bytes from src[*inPos:] to dst[*outPos:] and advances both positions.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if n == 0 {
		return nil
	}

	if *inPos+n > len(src) {
		return ErrMalformedInput
	}

	if *outPos+n > len(dst) {
		return ErrInsufficientOutputSpace
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
