// 14 Mar 2025

package align

import (
	"errors"
	"fmt"
)

// ErrGapPenalty is returned when a gap penalty is not strictly negative.
var ErrGapPenalty = errors.New("gap penalties must be strictly negative")

// Scorer says how much aligning byte a with byte b is worth. A
// substitution matrix satisfies this, as does the simple
// match/mismatch pair below.
type Scorer interface {
	Score(a, b byte) float32
}

// MatchMismatch scores identical bytes with Match and anything else
// with Mismatch. Usually Match > 0 > Mismatch.
type MatchMismatch struct {
	Match    int
	Mismatch int
}

func (s MatchMismatch) Score(a, b byte) float32 {
	if a == b {
		return float32(s.Match)
	}
	return float32(s.Mismatch)
}

// Pnlty holds the affine gap penalties. Opening a gap costs
// Open()+Ext(), each further position costs Ext(), so a gap of
// length L costs Open + L*Ext. Both values are strictly negative,
// which NewPnlty enforces, so a Pnlty built any other way is useless.
type Pnlty struct {
	open float32
	ext  float32
}

// NewPnlty checks the penalties at construction time. Anything
// non-negative is refused. There is no later check, so this is the
// only way to build a usable Pnlty.
func NewPnlty(open, extend int) (Pnlty, error) {
	if open >= 0 || extend >= 0 {
		return Pnlty{}, fmt.Errorf("open %d, extend %d: %w", open, extend, ErrGapPenalty)
	}
	return Pnlty{open: float32(open), ext: float32(extend)}, nil
}

// Open returns the gap opening penalty as given to NewPnlty.
func (p Pnlty) Open() int { return int(p.open) }

// Ext returns the gap extension penalty.
func (p Pnlty) Ext() int { return int(p.ext) }
