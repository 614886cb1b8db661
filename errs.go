// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package zopfli

import "errors"

// Sentinel errors for the core. Callers match them with errors.Is even
// when a function wraps one with positional context via pkg/errors.
var (
	// ErrInvariantViolation is returned when a core data-structure invariant
	// is violated: Greedy returns it for a back-reference that does not
	// reproduce earlier bytes, and BlockSplitLZ77 for a block range or
	// search result out of order. Hash-chain consistency and sublen
	// completeness are not checked. These indicate a programming error,
	// not bad input.
	ErrInvariantViolation = errors.New("zopfli: invariant violation")

	// ErrAllocationFailure names the allocation-failure case of the core's
	// error taxonomy. No function in this package returns it: buffers grow
	// through Go's allocator, which does not report failure as an error.
	ErrAllocationFailure = errors.New("zopfli: allocation failure")

	// ErrMatchOutOfRange is returned when FindLongestMatch is called with a
	// limit outside [MinMatch, MaxMatch] or a position at/past size.
	ErrMatchOutOfRange = errors.New("zopfli: match request out of range")

	// ErrEmptyRange is returned when a block-splitter range collapses to a
	// single LZ77 symbol or less, which the splitter never recurses into.
	ErrEmptyRange = errors.New("zopfli: empty or degenerate range")
)
