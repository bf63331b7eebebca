// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzoraw

package lzoraw

import "fmt"

// opcodeBits renders an opcode in the nibble-grouped binary form used by
// diagnostics, for example 0b0001_0001.
func opcodeBits(op byte) string {
	return fmt.Sprintf("0b%04b_%04b", op>>4, op&0x0f)
}
