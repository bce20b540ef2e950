// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for bounds checks used by slicing.
//   - Return sentinel-wrapped errors naming the failing bound so call sites
//     can report which parameter was wrong.

package matrix

import "fmt"

// boundErrorf names the failing bound parameter and wraps ErrOutOfRange.
func boundErrorf(name string, idx, limit int) error {
	return fmt.Errorf("%s=%d not in [0,%d): %w", name, idx, limit, ErrOutOfRange)
}

// validateIndex checks 0 <= idx < limit for the named bound.
// Complexity: O(1).
func validateIndex(name string, idx, limit int) error {
	if idx < 0 || idx >= limit {
		return boundErrorf(name, idx, limit)
	}

	return nil
}

// validateRange checks a half-open range [from, to) against limit.
// Both from and to-1 must be valid indices, and the range must not be inverted.
func validateRange(fromName, toName string, from, to, limit int) error {
	if err := validateIndex(fromName, from, limit); err != nil {
		return err
	}
	if err := validateIndex(toName+"-1", to-1, limit); err != nil {
		return err
	}
	if to < from {
		return fmt.Errorf("%s=%d < %s=%d: %w", toName, to, fromName, from, ErrOutOfRange)
	}

	return nil
}
