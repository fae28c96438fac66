// 21 Mar 2025

// Package distance has the whole-sequence distance measures that do
// not need a scoring scheme: Levenshtein (edit) distance and Hamming
// distance. Both are plain functions over byte slices.
package distance

import (
	"errors"
)

// ErrLengthMismatch is returned by Hamming when the sequences are
// not the same length.
var ErrLengthMismatch = errors.New("hamming distance needs sequences of equal length")

// Levenshtein returns the minimum number of single byte insertions,
// deletions and substitutions turning a into b. It is zero exactly
// when the sequences are equal. We only keep two rows of the usual
// table, so memory is O(len(b)).
func Levenshtein(a, b []byte) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost // substitution or match
			if up := prev[j] + 1; up < d {
				d = up
			}
			if left := cur[j-1] + 1; left < d {
				d = left
			}
			cur[j] = d
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// Hamming counts the positions where a and b differ. The sequences
// must be the same length. Callers who cannot guarantee that have to
// handle ErrLengthMismatch.
func Hamming(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n, nil
}
