// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzoraw

package lzoraw

// Reference encoder for tests: a greedy LZO1X-1 style parser that emits only
// literal runs and matches of the 001 (medium), 0001 (long) and >= 0x40
// (short) families, so its output is a valid single-block stream.

const (
	encMaxOffsetShort  = 0x0800
	encMaxOffsetMedium = 0x4000
	encMaxOffsetLong   = 0xbfff
	encMaxLenShort     = 8
	encMaxLenMedium    = 33
	encMaxLenLong      = 9

	encDictBits = 14
	encDictMask = (1 << encDictBits) - 1
	encDictHigh = (encDictMask >> 1) + 1
)

// encode compresses in into one terminated block.
func encode(in []byte) []byte {
	var out []byte
	tail := len(in)
	if len(in) > encMaxLenShort+5 {
		out, tail = encodeCore(in)
	}

	if tail > 0 {
		out = appendLiteral(out, in[len(in)-tail:])
	}

	return append(out, stopOpcode, 0, 0)
}

// encodeCore parses in and returns the emitted commands and the size of the
// literal tail that is still pending.
func encodeCore(in []byte) (out []byte, tail int) {
	inputLen := len(in)
	inputLimit := inputLen - encMaxLenShort - 5
	dict := make([]int32, 1<<encDictBits)
	literalStart := 0
	pos := 4

	for {
		key := int(in[pos+3])
		key = (key << 6) ^ int(in[pos+2])
		key = (key << 5) ^ int(in[pos+1])
		key = (key << 5) ^ int(in[pos+0])
		slot := ((0x21 * key) >> 5) & encDictMask

		matched := false
		for attempt := range 2 {
			matchPos, dist := findCandidate(dict, in, pos, slot)
			if matchPos >= 0 &&
				in[matchPos] == in[pos] &&
				in[matchPos+1] == in[pos+1] &&
				in[matchPos+2] == in[pos+2] {
				dict[slot] = int32(pos + 1) //nolint:gosec // test inputs are small

				if pos != literalStart {
					out = appendLiteral(out, in[literalStart:pos])
					literalStart = pos
				}

				i := 3
				pos += 3
				for ; i < 9; i++ {
					pos++
					if in[matchPos+i] != in[pos-1] {
						break
					}
				}

				if i < 9 {
					pos--
					out = appendMatch(out, pos-literalStart, dist)
				} else {
					m := matchPos + encMaxLenShort + 1
					for pos < inputLen && in[m] == in[pos] {
						m++
						pos++
					}
					out = appendMatch(out, pos-literalStart, dist)
				}

				literalStart = pos
				matched = true
				break
			}

			if attempt == 0 {
				slot = (slot & (encDictMask & 0x7ff)) ^ (encDictHigh | 0x1f)
			}
		}

		if matched {
			if pos >= inputLimit {
				break
			}

			continue
		}

		dict[slot] = int32(pos + 1) //nolint:gosec // test inputs are small
		pos += 1 + (pos-literalStart)>>5
		if pos >= inputLimit {
			break
		}
	}

	return out, inputLen - literalStart
}

// findCandidate returns (matchPos, distance) for the dictionary slot, or (-1, 0).
// Matches beyond the short range must agree on four bytes so that no long or
// medium match shorter than four bytes is ever emitted.
func findCandidate(dict []int32, in []byte, pos, slot int) (int, int) {
	matchPos := int(dict[slot]) - 1
	if matchPos < 0 || pos == matchPos || pos-matchPos > encMaxOffsetLong {
		return -1, 0
	}

	dist := pos - matchPos
	if dist <= encMaxOffsetShort || in[matchPos+3] == in[pos+3] {
		return matchPos, dist
	}

	return -1, 0
}

// appendMatch emits the shortest command family able to hold the match.
func appendMatch(out []byte, length, dist int) []byte {
	switch {
	case dist <= encMaxOffsetShort && length <= encMaxLenShort:
		dist--
		return append(out, byte((length-1)<<5|(dist&7)<<2), byte(dist>>3))

	case dist <= encMaxOffsetMedium:
		dist--
		if length <= encMaxLenMedium {
			out = append(out, byte(familyMedium|(length-2)))
		} else {
			out = append(out, familyMedium)
			out = appendExtension(out, length-encMaxLenMedium)
		}

	default:
		dist -= longMatchLowRange
		rangeBit := byte((dist & longMatchLowRange) >> 11)
		if length <= encMaxLenLong {
			out = append(out, familyLong|rangeBit|byte(length-2))
		} else {
			out = append(out, familyLong|rangeBit)
			out = appendExtension(out, length-encMaxLenLong)
		}
	}

	return append(out, byte((dist&63)<<2), byte(dist>>6))
}

// appendLiteral emits a literal run; runs of up to three bytes after a match
// ride in the low bits of that match's last opcode or trailer byte.
func appendLiteral(out []byte, lit []byte) []byte {
	n := len(lit)
	switch {
	case len(out) == 0 && n <= 238:
		out = append(out, byte(firstLiteralBias+n))
	case n <= 3:
		out[len(out)-2] |= byte(n)
	case n <= 18:
		out = append(out, byte(n-smallLiteralRunBias))
	default:
		out = append(out, 0)
		out = appendExtension(out, n-18)
	}

	return append(out, lit...)
}

// appendExtension writes t as zero bytes worth 255 each plus a final nonzero byte.
func appendExtension(out []byte, t int) []byte {
	for t > 255 {
		out = append(out, 0)
		t -= 255
	}

	return append(out, byte(t))
}
