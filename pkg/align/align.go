// 14 Mar 2025

// Package align does pairwise alignments with affine gap penalties,
// after Gotoh, O. J. Mol. Biol. (1982) 162, 705-708. We keep the
// three-matrix formulation with full traceback, so besides the score
// you get the list of operations and the end points in both
// sequences. An Aligner holds its temporary matrices and can be
// re-used over many alignments. The matrices grow as necessary and
// go away when the aligner does.
package align

import (
	"fmt"

	"github.com/andrew-torda/matrix"
)

// Mode says what kind of alignment one wants.
type Mode byte

const (
	Global     Mode = iota // both sequences consumed end to end
	Local                  // best scoring pair of substrings
	Semiglobal             // all of x, free gaps at the ends of y
)

func (m Mode) String() string {
	switch m {
	case Local:
		return "local"
	case Semiglobal:
		return "semiglobal"
	}
	return "global"
}

// ParseMode turns a name from the command line into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "global", "":
		return Global, nil
	case "local":
		return Local, nil
	case "semiglobal":
		return Semiglobal, nil
	}
	return Global, fmt.Errorf("unknown alignment mode %q, want global, local or semiglobal", s)
}

// Op is one step of an alignment. Ins consumes a byte of y (a gap in
// x), Del consumes a byte of x (a gap in y). XClip and YClip mark
// bytes outside the aligned region; they appear once per clipped
// byte.
type Op byte

const (
	Match Op = iota
	Subst
	Ins
	Del
	XClip
	YClip
)

func (o Op) String() string {
	switch o {
	case Match:
		return "match"
	case Subst:
		return "subst"
	case Ins:
		return "ins"
	case Del:
		return "del"
	case XClip:
		return "xclip"
	}
	return "yclip"
}

// Result is what an alignment gives you. X refers to the first
// sequence (the reference), Y to the second. Start/End are half-open
// byte offsets of the aligned region. A Result is not touched again
// by the aligner, so it can be kept after the aligner is re-used.
type Result struct {
	Score  int
	XStart int
	XEnd   int
	YStart int
	YEnd   int
	Ops    []Op
}

// Traceback states. stStart marks a cell where a local or semiglobal
// alignment begins.
const (
	stNone byte = iota
	stM
	stD
	stI
	stStart
)

const bigf float32 = -1e+38

// Aligner carries the scoring scheme and the working matrices. It is
// not safe for concurrent use; give each goroutine its own.
type Aligner struct {
	scr        Scorer
	pnlty      Pnlty
	mm, dd, ii *matrix.FMatrix2d // match, gap-in-y, gap-in-x scores
	tm, td, ti *matrix.BMatrix2d // and where each cell came from
}

// New returns an Aligner for the given scoring scheme. The gap
// penalty must come from NewPnlty, so it is known to be negative.
func New(scr Scorer, p Pnlty) *Aligner {
	return &Aligner{
		scr: scr, pnlty: p,
		mm: matrix.NewFMatrix2d(1, 1), dd: matrix.NewFMatrix2d(1, 1),
		ii: matrix.NewFMatrix2d(1, 1),
		tm: matrix.NewBMatrix2d(1, 1), td: matrix.NewBMatrix2d(1, 1),
		ti: matrix.NewBMatrix2d(1, 1),
	}
}

// best3 picks the best of the three matrices at (i, j). Ties go to
// the match matrix first and the deletion matrix second, which biases
// the traceback towards ungapped alignments.
func (al *Aligner) best3(i, j int) (float32, byte) {
	b, st := al.mm.Mat[i][j], stM
	if al.dd.Mat[i][j] > b {
		b, st = al.dd.Mat[i][j], stD
	}
	if al.ii.Mat[i][j] > b {
		b, st = al.ii.Mat[i][j], stI
	}
	return b, st
}

// Align aligns x (reference) against y (query). Empty sequences are
// fine and degenerate to an all-gap or all-clip result.
func (al *Aligner) Align(x, y []byte, mode Mode) *Result {
	n, m := len(x), len(y)
	al.mm.Resize(n+1, m+1)
	al.dd.Resize(n+1, m+1)
	al.ii.Resize(n+1, m+1)
	al.tm.Resize(n+1, m+1)
	al.td.Resize(n+1, m+1)
	al.ti.Resize(n+1, m+1)

	open, ext := al.pnlty.open, al.pnlty.ext
	oe := open + ext

	al.boundaries(n, m, mode)

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			s := al.scr.Score(x[i-1], y[j-1])

			pb, ps := al.best3(i-1, j-1)
			if mode == Local && pb < 0 {
				pb, ps = 0, stStart
			}
			al.mm.Mat[i][j] = s + pb
			al.tm.Mat[i][j] = ps

			// A gap keeps extending on a tie rather than reopening.
			dxt := al.dd.Mat[i-1][j] + ext
			b, st := al.best3(i-1, j)
			if dxt >= b+oe {
				al.dd.Mat[i][j], al.td.Mat[i][j] = dxt, stD
			} else {
				al.dd.Mat[i][j], al.td.Mat[i][j] = b+oe, st
			}

			ixt := al.ii.Mat[i][j-1] + ext
			b, st = al.best3(i, j-1)
			if ixt >= b+oe {
				al.ii.Mat[i][j], al.ti.Mat[i][j] = ixt, stI
			} else {
				al.ii.Mat[i][j], al.ti.Mat[i][j] = b+oe, st
			}
		}
	}

	sc, state, ei, ej := al.endpoint(n, m, mode)
	return al.traceback(x, y, mode, sc, state, ei, ej)
}

// boundaries fills row 0 and column 0 according to the mode.
func (al *Aligner) boundaries(n, m int, mode Mode) {
	open, ext := al.pnlty.open, al.pnlty.ext
	for i := 0; i <= n; i++ {
		al.mm.Mat[i][0], al.dd.Mat[i][0], al.ii.Mat[i][0] = bigf, bigf, bigf
		al.tm.Mat[i][0], al.td.Mat[i][0], al.ti.Mat[i][0] = stNone, stNone, stNone
	}
	for j := 0; j <= m; j++ {
		al.mm.Mat[0][j], al.dd.Mat[0][j], al.ii.Mat[0][j] = bigf, bigf, bigf
		al.tm.Mat[0][j], al.td.Mat[0][j], al.ti.Mat[0][j] = stNone, stNone, stNone
	}
	al.mm.Mat[0][0] = 0

	switch mode {
	case Global:
		for i := 1; i <= n; i++ {
			al.dd.Mat[i][0] = open + ext*float32(i)
			if i > 1 {
				al.td.Mat[i][0] = stD
			} else {
				al.td.Mat[i][0] = stM
			}
		}
		for j := 1; j <= m; j++ {
			al.ii.Mat[0][j] = open + ext*float32(j)
			if j > 1 {
				al.ti.Mat[0][j] = stI
			} else {
				al.ti.Mat[0][j] = stM
			}
		}
	case Semiglobal: // skipping a prefix of y costs nothing
		for j := 0; j <= m; j++ {
			al.mm.Mat[0][j] = 0
			al.tm.Mat[0][j] = stStart
		}
		for i := 1; i <= n; i++ {
			al.dd.Mat[i][0] = open + ext*float32(i)
			if i > 1 {
				al.td.Mat[i][0] = stD
			} else {
				al.td.Mat[i][0] = stM
			}
		}
	case Local: // only (0,0) is live, and a path ending there stops
		al.tm.Mat[0][0] = stStart
	}
}

// endpoint finds where the traceback starts.
func (al *Aligner) endpoint(n, m int, mode Mode) (float32, byte, int, int) {
	switch mode {
	case Semiglobal: // best in the last row, rightmost on a tie
		sc, state, ej := bigf, stNone, 0
		for j := 0; j <= m; j++ {
			if b, st := al.best3(n, j); b >= sc {
				sc, state, ej = b, st, j
			}
		}
		return sc, state, n, ej
	case Local: // best match cell anywhere, first one in row order
		sc, state, ei, ej := float32(0), stStart, 0, 0
		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				if al.mm.Mat[i][j] > sc {
					sc, state, ei, ej = al.mm.Mat[i][j], stM, i, j
				}
			}
		}
		return sc, state, ei, ej
	}
	sc, state := al.best3(n, m)
	if n == 0 && m == 0 {
		sc = 0
	}
	return sc, state, n, m
}

// traceback walks the direction matrices back from (ei, ej) and
// builds the operation list, clips included.
func (al *Aligner) traceback(x, y []byte, mode Mode, sc float32, state byte, ei, ej int) *Result {
	n, m := len(x), len(y)
	rops := make([]Op, 0, n+m)
	i, j := ei, ej

loop:
	for {
		if mode == Global {
			if i == 0 && j == 0 {
				break
			}
		} else if state == stStart {
			break
		}
		switch state {
		case stM:
			prev := al.tm.Mat[i][j]
			if prev == stStart && i == 0 { // free start on row 0
				break loop
			}
			if x[i-1] == y[j-1] {
				rops = append(rops, Match)
			} else {
				rops = append(rops, Subst)
			}
			i, j = i-1, j-1
			state = prev
		case stD:
			state, i = al.td.Mat[i][j], i-1
			rops = append(rops, Del)
		case stI:
			state, j = al.ti.Mat[i][j], j-1
			rops = append(rops, Ins)
		default:
			break loop
		}
	}
	xs, ys := i, j

	ops := make([]Op, 0, len(rops)+(n-ei)+(m-ej)+xs+ys)
	if mode == Local {
		for k := 0; k < xs; k++ {
			ops = append(ops, XClip)
		}
	}
	if mode != Global {
		for k := 0; k < ys; k++ {
			ops = append(ops, YClip)
		}
	}
	for k := len(rops) - 1; k >= 0; k-- {
		ops = append(ops, rops[k])
	}
	if mode != Global {
		for k := ej; k < m; k++ {
			ops = append(ops, YClip)
		}
	}
	if mode == Local {
		for k := ei; k < n; k++ {
			ops = append(ops, XClip)
		}
	}

	return &Result{
		Score:  int(sc),
		XStart: xs, XEnd: ei,
		YStart: ys, YEnd: ej,
		Ops: ops,
	}
}
