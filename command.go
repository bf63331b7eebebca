// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzoraw

package lzoraw

import "encoding/binary"

// Command bit patterns below use this notation:
//
//	0/1: fixed bit
//	L:   literal length
//	M:   match length
//	P:   match offset
//	?:   selects the offset range of a long match

// command is one decoded opcode: an optional back-reference followed by a
// literal run. matchOffset is stored as encoded, one less than the distance.
type command struct {
	matchLength   int
	matchOffset   int
	literalLength int
	stop          bool
}

// blockState is the context of one block's command loop.
type blockState struct {
	// firstCommand is set only while reading the first opcode of the block.
	firstCommand bool
	// lastLiteralLength selects the meaning of the next 0000_xxxx opcode.
	lastLiteralLength int
}

// readCommand decodes the opcode at the input cursor together with its
// extension and trailer bytes.
func (d *decoder) readCommand(st blockState) (command, error) {
	if d.in >= len(d.src) {
		return command{}, malformed(d.in, ErrInputOverrun)
	}

	op := d.src[d.in]
	d.in++

	var cmd command
	switch {
	case op == stopOpcode:
		cmd.stop = true

	case op&highNibbleMask == familySmall:
		if st.lastLiteralLength == 0 {
			// 0000_LLLL (0000_0000)* LLLL_LLLL
			n, err := d.readLength(int(op&literalRunBits), literalRunBits)
			if err != nil {
				return command{}, err
			}

			cmd.literalLength = n + smallLiteralRunBias
			break
		}

		// 0000_PPLL PPPP_PPPP
		hi, err := d.readByte()
		if err != nil {
			return command{}, err
		}

		cmd.matchOffset = int(op>>2&0b11) | int(hi)<<2
		cmd.literalLength = int(op & 0b11)
		if st.lastLiteralLength <= 3 {
			cmd.matchLength = farSmallMatchLength
			cmd.matchOffset |= farSmallMatchBit
		} else {
			cmd.matchLength = nearSmallMatchLength
		}

	case st.firstCommand:
		// A block may open with a plain literal run of opcode-17 bytes.
		cmd.literalLength = int(op) - firstLiteralBias
		if cmd.literalLength < 0 {
			return command{}, &MalformedInputError{
				Offset: d.in - 1,
				Err:    ErrInvalidCommand,
				Detail: "first command " + opcodeBits(op),
			}
		}

	case op&highNibbleMask == familyLong:
		// 0001_?MMM (0000_0000)* MMMM_MMMM PPPP_PPLL PPPP_PPPP
		n, err := d.readLength(int(op&longMatchBits), longMatchBits)
		if err != nil {
			return command{}, err
		}

		trailer, err := d.readTrailer()
		if err != nil {
			return command{}, err
		}

		cmd.matchLength = n + matchLengthBias
		cmd.matchOffset = int(trailer >> 2)
		if op&longMatchRangeSelect == 0 {
			cmd.matchOffset |= longMatchLowRange
		} else {
			cmd.matchOffset |= longMatchHighRange
		}
		cmd.matchOffset--
		cmd.literalLength = int(trailer & 0b11)

	case op&highTripletMask == familyMedium:
		// 001M_MMMM (0000_0000)* MMMM_MMMM PPPP_PPLL PPPP_PPPP
		n, err := d.readLength(int(op&mediumMatchBits), mediumMatchBits)
		if err != nil {
			return command{}, err
		}

		trailer, err := d.readTrailer()
		if err != nil {
			return command{}, err
		}

		cmd.matchLength = n + matchLengthBias
		cmd.matchOffset = int(trailer >> 2)
		cmd.literalLength = int(trailer & 0b11)

	case op&highPairMask != 0:
		// MMMP_PPLL PPPP_PPPP
		hi, err := d.readByte()
		if err != nil {
			return command{}, err
		}

		cmd.matchLength = int(op>>5) + 1
		cmd.matchOffset = int(op>>2&0b111) | int(hi)<<3
		cmd.literalLength = int(op & 0b11)

	default:
		return command{}, &MalformedInputError{
			Offset: d.in - 1,
			Err:    ErrInvalidCommand,
			Detail: opcodeBits(op),
		}
	}

	return cmd, nil
}

// readLength returns field unchanged unless it is zero, in which case the
// length continues in extension bytes: each zero byte adds 255 and the first
// nonzero byte adds its own value and ends the run. Running out of input ends
// the run silently; the copy bounds checks catch the truncation.
func (d *decoder) readLength(field, saturated int) (int, error) {
	if field != 0 {
		return field, nil
	}

	zeros := 0
	for d.in < len(d.src) {
		b := d.src[d.in]
		d.in++
		if b != 0 {
			return saturated + zeros*extensionStep + int(b), nil
		}

		zeros++
		if zeros > maxZeroExtensionBytes {
			return 0, malformed(d.in, ErrInputOverrun)
		}
	}

	return saturated + zeros*extensionStep, nil
}

// readByte reads one extension byte and advances the input cursor.
func (d *decoder) readByte() (byte, error) {
	if d.in >= len(d.src) {
		return 0, malformed(d.in, ErrInputOverrun)
	}

	b := d.src[d.in]
	d.in++

	return b, nil
}

// readTrailer reads one little-endian uint16 and advances the input cursor by 2.
func (d *decoder) readTrailer() (uint16, error) {
	if d.in+2 > len(d.src) {
		return 0, malformed(d.in, ErrInputOverrun)
	}

	v := binary.LittleEndian.Uint16(d.src[d.in:])
	d.in += 2

	return v, nil
}
