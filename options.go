// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzoraw

package lzoraw

// DecompressOptions configures the allocating entry points Decompress and
// DecompressFromReader. DecompressInto takes no options: the caller's buffer
// already fixes the output capacity.
type DecompressOptions struct {
	// OutLen is the decompressed size to allocate; the stream may decode to fewer bytes.
	OutLen int
	// MaxInputSize caps how many compressed bytes DecompressFromReader accepts (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// outputLen returns the buffer size to allocate, or ErrOptionsRequired when
// opts is nil or OutLen is negative.
func (o *DecompressOptions) outputLen() (int, error) {
	if o == nil || o.OutLen < 0 {
		return 0, ErrOptionsRequired
	}

	return o.OutLen, nil
}
