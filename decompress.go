// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzoraw

package lzoraw

import "encoding/binary"

// Decompress decompresses raw LZO data from src into a new buffer of length opts.OutLen.
// Returns ErrOptionsRequired if opts is nil or OutLen is negative.
// On success returns the decompressed slice (length may be less than OutLen).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	outLen, err := opts.outputLen()
	if err != nil {
		return nil, err
	}

	if len(src) == 0 {
		return nil, malformed(0, ErrEmptyInput)
	}

	dst := make([]byte, outLen)
	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decompresses all of src into caller-owned dst and returns the
// number of bytes written. dst must already be sized to at least the
// decompressed length; it is never grown. On error the contents of dst are
// unspecified and must be discarded.
func DecompressInto(src, dst []byte) (int, error) {
	return decompressCore(src, dst)
}

// decoder holds the two cursors shared by the command loop and the copiers.
type decoder struct {
	src []byte
	dst []byte
	in  int
	out int
}

// decompressCore decodes every block in src. Blocks may be concatenated; each
// ends with a stop opcode and a zero uint16 terminator.
// It returns (bytes written, nil) on success and (0, err) on error.
func decompressCore(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, malformed(0, ErrEmptyInput)
	}

	d := decoder{src: src, dst: dst}
	for d.in < len(d.src) {
		if err := d.decodeBlock(); err != nil {
			return 0, err
		}
	}

	return d.out, nil
}

// decodeBlock runs the command loop of one block up to and including its terminator.
func (d *decoder) decodeBlock() error {
	st := blockState{firstCommand: true}

	for {
		cmd, err := d.readCommand(st)
		if err != nil {
			return err
		}

		if cmd.stop {
			break
		}

		st.firstCommand = false

		if cmd.matchLength != 0 {
			// Offsets are encoded minus one.
			if err := d.copyMatch(cmd.matchLength, cmd.matchOffset+1); err != nil {
				return err
			}
		}

		if err := d.copyLiteral(cmd.literalLength); err != nil {
			return err
		}

		st.lastLiteralLength = cmd.literalLength
	}

	return d.readTerminator()
}

// readTerminator consumes the zero uint16 that follows a stop opcode.
func (d *decoder) readTerminator() error {
	if d.in+terminatorSize > len(d.src) {
		return malformed(d.in, ErrUnexpectedEOF)
	}

	if binary.LittleEndian.Uint16(d.src[d.in:]) != 0 {
		return malformed(d.in, ErrInvalidTerminator)
	}

	d.in += terminatorSize
	return nil
}
