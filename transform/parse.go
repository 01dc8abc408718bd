// SPDX-License-Identifier: MIT
// Package transform: point-string parsing.
//
// Purpose:
//   - Turn an externally supplied "x0 y0 x1 y1 ..." string into a 2×N
//     coordinate matrix with deterministic column order.
//
// Contract notes:
//   - An odd trailing token is dropped, not an error. Callers that want
//     strict pairing must check the token count themselves; truncation is
//     the observed upstream contract and is preserved on purpose.
//   - An empty or all-whitespace string yields a legal 2×0 matrix.

package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hirgon/planar/matrix"
)

// coordRows is the fixed row count of a coordinate matrix: x row and y row.
const coordRows = 2

// ParsePoints parses a whitespace-separated string of decimal numbers into a
// 2×N coordinate matrix: even-indexed tokens (0, 2, 4, ...) become row 0 (x),
// odd-indexed tokens become row 1 (y), both in input order.
//
// Implementation:
//   - Stage 1 (Tokenize): strings.Fields splits on any run of whitespace.
//   - Stage 2 (Parse): each token through strconv.ParseFloat; first bad token
//     fails the whole call with ErrParseToken.
//   - Stage 3 (Shape): N = len(tokens)/2; with an odd token count the final
//     token is excluded from both rows (silent truncation, not an error).
//
// Edge cases:
//   - ParsePoints("") and blank strings return a 2×0 matrix and nil error.
//   - "NaN" and "Inf" are valid floats per strconv and propagate as entries.
//
// Errors: ErrParseToken (wrapped with the offending token).
// Complexity: O(n) over the token count.
func ParsePoints(msg string) (*matrix.Dense, error) {
	// Tokenize on whitespace runs; Fields returns nil for blank input.
	tokens := strings.Fields(msg)

	// Parse every token up front so a bad token fails even when it would be
	// truncated away by the pairing step below.
	vals := make([]float64, len(tokens))
	var err error
	for i, tok := range tokens {
		vals[i], err = strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("ParsePoints: token %q: %w", tok, ErrParseToken)
		}
	}

	// Pair values into columns; an odd tail is dropped.
	n := len(vals) / 2
	pts, err := matrix.NewDense(coordRows, n)
	if err != nil {
		return nil, fmt.Errorf("ParsePoints: %w", err) // unreachable for n >= 0
	}
	for j := 0; j < n; j++ { // fixed column order
		_ = pts.Set(0, j, vals[2*j])   // x value, even index
		_ = pts.Set(1, j, vals[2*j+1]) // y value, odd index
	}

	return pts, nil
}
