// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzoraw

package lzoraw

// Raw LZO command stream constants: opcode masks, field widths and copy widths.

// Fixed opcodes and block framing.
const (
	stopOpcode       = 0b0001_0001 // ends a block; followed by a zero uint16 terminator
	terminatorSize   = 2
	firstLiteralBias = 17 // first opcode of a block with a nonzero high nibble is literalLength+17
)

// Opcode family selectors, tested in priority order.
const (
	highNibbleMask  = 0b1111_0000
	highTripletMask = 0b1110_0000
	highPairMask    = 0b1100_0000

	familySmall  = 0b0000_0000 // 0000_xxxx: literal run or short match, by lastLiteralLength
	familyLong   = 0b0001_0000 // 0001_?MMM: long-distance match
	familyMedium = 0b0010_0000 // 001M_MMMM: medium-distance match
)

// Saturated initial length fields that switch to the variable-length extension.
const (
	literalRunBits  = 0b1111
	longMatchBits   = 0b111
	mediumMatchBits = 0b1_1111
	extensionStep   = 0b1111_1111 // added for each zero extension byte
)

// Fixed parts of the small-family and long-match encodings.
const (
	smallLiteralRunBias  = 3
	matchLengthBias      = 2
	farSmallMatchLength  = 3      // after 1..3 literals
	nearSmallMatchLength = 2      // after more than 3 literals
	farSmallMatchBit     = 0x0800 // forced offset bit 11 after 1..3 literals
	longMatchLowRange    = 0x4000 // opcode bit 3 unset
	longMatchHighRange   = 0x8000 // opcode bit 3 set
	longMatchRangeSelect = 0b1000
)

// Copy widths. Fast paths move one word at a time.
const (
	wordSize     = 8
	halfWordSize = 4
)

// maxZeroExtensionBytes limits zero-extension runs so malformed inputs cannot
// overflow length reconstruction math on 32-bit platforms.
const maxZeroExtensionBytes = int(^uint(0)>>1)/extensionStep - 2

// Period-aware start of an overlapping match copy, indexed by match offset 1..7.
// After four single-byte copies the source advances by matchIncrement, copies a
// four byte unit, then rewinds by matchDecrement so the distance to the
// destination becomes a multiple of the period that is at least one word.
var (
	matchIncrement = [wordSize]int{4, 1, 2, 1, 4, 4, 4, 4}
	matchDecrement = [wordSize]int{0, 0, 0, -1, 0, 1, 2, 3}
)
