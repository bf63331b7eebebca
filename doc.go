// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzoraw

/*
Package lzoraw decodes raw LZO command streams (LZO1X-style blocks without any
container framing).

A stream is one or more blocks placed back to back. Each block is a sequence
of commands, every command being an optional back-reference into the output
already produced followed by a run of literal bytes, and ends with the stop
opcode 0x11 and a zero 16-bit terminator. Block headers, length prefixes and
checksums belong to the caller; the decoder only needs the compressed bytes
and an output buffer that is large enough.

The decoder never allocates when given a buffer and is safe for concurrent use
on distinct buffers. Every failure is a *MalformedInputError carrying the input
offset; it matches ErrMalformedInput and a more specific cause with errors.Is.
Output written before an error must be discarded.

# Decompress

Into caller-managed memory (no allocation):

	dst := make([]byte, expectedLen)
	n, err := lzoraw.DecompressInto(compressed, dst)
	out := dst[:n]

Allocating the output (OutLen is required):

	out, err := lzoraw.Decompress(compressed, lzoraw.DefaultDecompressOptions(expectedLen))

From an io.Reader, with an optional input size limit:

	opts := lzoraw.DefaultDecompressOptions(expectedLen)
	opts.MaxInputSize = 1 << 20
	out, err := lzoraw.DecompressFromReader(r, opts)

Inspecting a failure:

	var mErr *lzoraw.MalformedInputError
	if errors.As(err, &mErr) {
		log.Printf("bad block at input offset %d", mErr.Offset)
	}
*/
package lzoraw
