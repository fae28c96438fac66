// 25 Mar 2025

// Package mutation compares a reference sequence with a query and
// reports the mutation events implied by their best alignment. A
// DiffStat pairs the two sequences with a scoring scheme; after one
// of its alignment methods has run, Stats folds the operation trace
// into counts of matches, substitutions, insertions and deletions.
package mutation

import (
	"errors"
	"io"

	"github.com/andrew-torda/seq_mut/pkg/align"
	"github.com/andrew-torda/seq_mut/pkg/distance"
)

// ErrNotAligned is returned when statistics or a rendering are asked
// for before any alignment has been run. We refuse rather than hand
// back a zeroed result that looks like two identical sequences.
var ErrNotAligned = errors.New("no alignment has been run yet")

// DiffStat holds a reference and a query for comparison. It borrows
// both slices; the caller must not change them while the DiffStat is
// in use.
type DiffStat struct {
	ref, query []byte
	al         *align.Aligner
	res        *align.Result
}

// New builds a DiffStat. The penalty comes from align.NewPnlty, so
// bad gap configurations have already been refused by the time a
// DiffStat can exist.
func New(ref, query []byte, scr align.Scorer, p align.Pnlty) *DiffStat {
	return &DiffStat{ref: ref, query: query, al: align.New(scr, p)}
}

// Levenshtein is the edit distance between reference and query. It
// ignores the scoring scheme. Complexity O(len(ref)*len(query)).
func (d *DiffStat) Levenshtein() int {
	return distance.Levenshtein(d.ref, d.query)
}

// Hamming counts differing positions. It fails unless the two
// sequences have the same length.
func (d *DiffStat) Hamming() (int, error) {
	return distance.Hamming(d.ref, d.query)
}

// Align runs a pairwise alignment in the given mode, keeps the
// result for later Stats or PrettyPrint calls, and returns it.
func (d *DiffStat) Align(mode align.Mode) *align.Result {
	d.res = d.al.Align(d.ref, d.query, mode)
	return d.res
}

// AlignGlobal aligns both sequences end to end.
func (d *DiffStat) AlignGlobal() *align.Result { return d.Align(align.Global) }

// AlignLocal finds the best pair of substrings.
func (d *DiffStat) AlignLocal() *align.Result { return d.Align(align.Local) }

// AlignSemiglobal aligns the whole reference within the query with
// free gaps at the query's ends.
func (d *DiffStat) AlignSemiglobal() *align.Result { return d.Align(align.Semiglobal) }

// Alignment returns the most recent alignment or ErrNotAligned.
func (d *DiffStat) Alignment() (*align.Result, error) {
	if d.res == nil {
		return nil, ErrNotAligned
	}
	return d.res, nil
}

// PrettyPrint writes the three-row rendering of the last alignment,
// wrapped at width columns.
func (d *DiffStat) PrettyPrint(w io.Writer, width int) error {
	if d.res == nil {
		return ErrNotAligned
	}
	return d.res.Render(w, d.ref, d.query, width)
}

// Stats reduces the last alignment's trace. ErrNotAligned if no
// alignment has been run on this DiffStat.
func (d *DiffStat) Stats() (*Stats, error) {
	if d.res == nil {
		return nil, ErrNotAligned
	}
	return Reduce(d.res), nil
}

// Stats are the mutation counts from one alignment. Total counts the
// aligned columns, so Total == Matches+Mismatches and Mismatches ==
// Substitutions+Insertions+Deletions always hold. Clipped ends are
// not counted at all.
type Stats struct {
	Matches       int
	Substitutions int
	Insertions    int
	Deletions     int
	Mismatches    int
	Total         int
}

// add classifies one operation. Folding is associative, so the order
// of the trace does not change the totals.
func (s *Stats) add(op align.Op) {
	switch op {
	case align.Match:
		s.Matches++
	case align.Subst:
		s.Substitutions++
	case align.Ins:
		s.Insertions++
	case align.Del:
		s.Deletions++
	default: // clips stay out of the counts
		return
	}
	if op != align.Match {
		s.Mismatches++
	}
	s.Total++
}

// Reduce folds a completed alignment into fresh Stats.
func Reduce(res *align.Result) *Stats {
	var s Stats
	for _, op := range res.Ops {
		s.add(op)
	}
	return &s
}

// Identity is the fraction of aligned columns that match, a number
// in [0,1]. An empty alignment has identity 0.
func (s *Stats) Identity() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Matches) / float64(s.Total)
}
