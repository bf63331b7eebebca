// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzoraw

package lzoraw

import (
	"errors"
	"fmt"
)

// Sentinel errors for decompression.
var (
	// ErrMalformedInput is the kind shared by every decoding failure. Use
	// errors.Is(err, lzoraw.ErrMalformedInput) to detect an unusable block.
	ErrMalformedInput = errors.New("malformed input")

	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder needs bytes past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrUnexpectedEOF is returned when the stream ends before a block terminator.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrInvalidCommand is returned for an opcode that has no valid interpretation.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInvalidTerminator is returned when the two bytes after a stop opcode are not zero.
	ErrInvalidTerminator = errors.New("invalid block terminator")

	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)

// MalformedInputError reports where in the compressed input decoding failed.
// It matches both ErrMalformedInput and its cause with errors.Is.
type MalformedInputError struct {
	// Offset is the input position at which the problem was detected.
	Offset int
	// Err is the cause, one of the sentinel errors above.
	Err error
	// Detail is optional extra context, such as the offending opcode.
	Detail string
}

func (e *MalformedInputError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v at offset %d: %v: %s", ErrMalformedInput, e.Offset, e.Err, e.Detail)
	}

	return fmt.Sprintf("%v at offset %d: %v", ErrMalformedInput, e.Offset, e.Err)
}

// Unwrap exposes the error kind and the cause.
func (e *MalformedInputError) Unwrap() []error {
	return []error{ErrMalformedInput, e.Err}
}

// malformed builds a MalformedInputError for the given input offset.
func malformed(offset int, cause error) error {
	return &MalformedInputError{Offset: offset, Err: cause}
}
