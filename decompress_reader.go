// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzoraw

package lzoraw

import "io"

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if _, err := opts.outputLen(); err != nil {
		return nil, err
	}

	var src []byte
	var err error
	if opts.MaxInputSize > 0 {
		// One byte past the limit is enough to detect an oversized stream.
		src, err = io.ReadAll(io.LimitReader(r, int64(opts.MaxInputSize)+1))
	} else {
		src, err = io.ReadAll(r)
	}
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}
