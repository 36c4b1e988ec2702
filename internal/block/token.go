// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4

package block

// tokenByte packs the literal and match nibbles of a sequence token.
// Values above runMask saturate; the remainder goes into extension bytes.
func tokenByte(literalLen, matchCode int) byte {
	return byte(min(literalLen, runMask)<<tokenLitBits | min(matchCode, runMask)) //nolint:gosec // G115: both nibbles clamped to 4 bits
}

// emitSequence writes one literal run followed by a back-reference.
func emitSequence(out []byte, outPos *int, literals []byte, offset, matchLen int) error {
	literalLen := len(literals)
	matchCode := matchLen - minMatch

	if err := writeByte(out, outPos, tokenByte(literalLen, matchCode)); err != nil {
		return err
	}

	if literalLen >= runMask {
		if err := writeLength(out, outPos, literalLen-runMask); err != nil {
			return err
		}
	}

	if err := writeSlice(out, outPos, literals); err != nil {
		return err
	}

	if err := writeSlice(out, outPos, []byte{byte(offset), byte(offset >> 8)}); err != nil { //nolint:gosec // G115: offset <= maxOffset
		return err
	}

	if matchCode >= runMask {
		return writeLength(out, outPos, matchCode-runMask)
	}

	return nil
}

// emitLastLiterals writes the closing literal-only sequence.
func emitLastLiterals(out []byte, outPos *int, literals []byte) error {
	literalLen := len(literals)
	if err := writeByte(out, outPos, tokenByte(literalLen, 0)); err != nil {
		return err
	}

	if literalLen >= runMask {
		if err := writeLength(out, outPos, literalLen-runMask); err != nil {
			return err
		}
	}

	return writeSlice(out, outPos, literals)
}

// StoreLiterals encodes src as a single literal-only block.
func StoreLiterals(dst, src []byte) (int, error) {
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}

	outPos := 0
	if err := emitLastLiterals(dst, &outPos, src); err != nil {
		return 0, err
	}

	return outPos, nil
}

// writeLength writes a length extension: a run of 0xff bytes and the remainder.
func writeLength(out []byte, outPos *int, length int) error {
	for length >= lengthByte {
		if err := writeByte(out, outPos, lengthByte); err != nil {
			return err
		}
		length -= lengthByte
	}

	return writeByte(out, outPos, byte(length)) //nolint:gosec // G115: length < 255 here
}

// writeByte writes b at out[*outPos] and advances *outPos.
func writeByte(out []byte, outPos *int, b byte) error {
	if *outPos >= len(out) {
		return ErrInsufficientOutputSpace
	}

	out[*outPos] = b
	*outPos++

	return nil
}

// writeSlice writes data at out[*outPos:] and advances *outPos.
func writeSlice(out []byte, outPos *int, data []byte) error {
	if *outPos+len(data) > len(out) {
		return ErrInsufficientOutputSpace
	}

	copy(out[*outPos:], data)
	*outPos += len(data)

	return nil
}
