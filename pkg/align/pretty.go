// 18 Mar 2025

package align

import (
	"bytes"
	"io"
)

// Gap and marker glyphs for the three-row rendering. The middle row
// uses '|' for a match, '\' for a substitution, 'x' under a gap in
// the reference row and '+' over a gap in the query row.
const (
	gapChar    = '-'
	matchMark  = '|'
	substMark  = '\\'
	insMark    = 'x'
	delMark    = '+'
)

// Render writes the alignment as blocks of three rows, reference on
// top, markers in the middle, query below, wrapped at width columns.
// Clipped ends are not drawn; they are visible in the Start/End
// fields. Each block, the last one included, is followed by a blank
// line. x and y must be the sequences the alignment was made from.
func (r *Result) Render(w io.Writer, x, y []byte, width int) error {
	if width < 1 {
		width = 80
	}
	var xrow, mrow, yrow bytes.Buffer
	i, j := r.XStart, r.YStart
	for _, op := range r.Ops {
		switch op {
		case Match:
			xrow.WriteByte(x[i])
			mrow.WriteByte(matchMark)
			yrow.WriteByte(y[j])
			i, j = i+1, j+1
		case Subst:
			xrow.WriteByte(x[i])
			mrow.WriteByte(substMark)
			yrow.WriteByte(y[j])
			i, j = i+1, j+1
		case Del:
			xrow.WriteByte(x[i])
			mrow.WriteByte(delMark)
			yrow.WriteByte(gapChar)
			i++
		case Ins:
			xrow.WriteByte(gapChar)
			mrow.WriteByte(insMark)
			yrow.WriteByte(y[j])
			j++
		case XClip, YClip: // outside the aligned region
		}
	}

	xb, mb, yb := xrow.Bytes(), mrow.Bytes(), yrow.Bytes()
	var out bytes.Buffer
	for s := 0; s < len(xb) || s == 0; s += width {
		e := s + width
		if e > len(xb) {
			e = len(xb)
		}
		out.Write(xb[s:e])
		out.WriteByte('\n')
		out.Write(mb[s:e])
		out.WriteByte('\n')
		out.Write(yb[s:e])
		out.WriteByte('\n')
		out.WriteByte('\n')
		if e == len(xb) {
			break
		}
	}
	_, err := w.Write(out.Bytes())
	return err
}
