// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzoraw

package lzoraw

import "encoding/binary"

// copyMatch appends length bytes found offset bytes behind the output cursor.
// offset is the real distance (encoded offset + 1).
//
// Word-wide copies are used only while the destination word lies inside dst.
// Short periods (offset < 8) are first spread to a distance of at least one
// word that is a multiple of the period, so later word copies never read
// bytes that are not yet written.
func (d *decoder) copyMatch(length, offset int) error {
	from := d.out - offset
	if from < 0 {
		return malformed(d.in, ErrLookBehindUnderrun)
	}

	// Compare against the remaining room; d.out+length may overflow int.
	if length > len(d.dst)-d.out {
		return malformed(d.in, ErrOutputOverrun)
	}

	end := d.out + length
	fastLimit := len(d.dst) - wordSize
	to := d.out

	if to > fastLimit {
		for to < end {
			d.dst[to] = d.dst[from]
			to++
			from++
		}

		d.out = end
		return nil
	}

	if offset < wordSize {
		d.dst[to] = d.dst[from]
		d.dst[to+1] = d.dst[from+1]
		d.dst[to+2] = d.dst[from+2]
		d.dst[to+3] = d.dst[from+3]
		to += halfWordSize
		from += matchIncrement[offset]

		copyHalfWord(d.dst, to, d.dst, from)
		to += halfWordSize
		from -= matchDecrement[offset]
	} else {
		copyWord(d.dst, to, d.dst, from)
		to += wordSize
		from += wordSize
	}

	if end >= fastLimit {
		for to < fastLimit {
			copyWord(d.dst, to, d.dst, from)
			to += wordSize
			from += wordSize
		}

		for to < end {
			d.dst[to] = d.dst[from]
			to++
			from++
		}
	} else {
		for to < end {
			copyWord(d.dst, to, d.dst, from)
			to += wordSize
			from += wordSize
		}
	}

	// Drop whatever was over-copied past the match.
	d.out = end
	return nil
}

// copyLiteral copies n bytes from the input cursor to the output cursor.
func (d *decoder) copyLiteral(n int) error {
	outRoom := len(d.dst) - d.out
	inRoom := len(d.src) - d.in

	if n > outRoom-wordSize || n > inRoom-wordSize {
		if n > outRoom {
			return malformed(d.in, ErrOutputOverrun)
		}

		if n > inRoom {
			return malformed(d.in, ErrInputOverrun)
		}

		end, inEnd := d.out+n, d.in+n
		copy(d.dst[d.out:end], d.src[d.in:inEnd])
		d.in = inEnd
		d.out = end
		return nil
	}

	end := d.out + n
	to, from := d.out, d.in
	for to < end {
		copyWord(d.dst, to, d.src, from)
		to += wordSize
		from += wordSize
	}

	// Step back over the bytes copied past the literal.
	d.in = from - (to - end)
	d.out = end
	return nil
}

// copyWord moves one little-endian word; the load happens before the store.
func copyWord(dst []byte, to int, src []byte, from int) {
	binary.LittleEndian.PutUint64(dst[to:], binary.LittleEndian.Uint64(src[from:]))
}

// copyHalfWord moves four bytes as one unit.
func copyHalfWord(dst []byte, to int, src []byte, from int) {
	binary.LittleEndian.PutUint32(dst[to:], binary.LittleEndian.Uint32(src[from:]))
}
