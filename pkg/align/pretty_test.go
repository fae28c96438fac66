package align_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andrew-torda/seq_mut/pkg/align"
)

const goldenRef = "CCGTCCGGCAAGGG"
const goldenQry = "AAAAACCGTTGACGGCCAA"

const goldenOut = `-----CCGT--CCGGCAAGGG
xxxxx||||xx\||||\|++\
AAAAACCGTTGACGGCCA--A

`

// TestGolden pins the rendering down to the byte. The glyphs and the
// blank line after the last block are part of the contract.
func TestGolden(t *testing.T) {
	al := mkaligner(t, 1, -1, -1, -1)
	res := al.Align([]byte(goldenRef), []byte(goldenQry), align.Global)
	var b bytes.Buffer
	if err := res.Render(&b, []byte(goldenRef), []byte(goldenQry), 120); err != nil {
		t.Fatal("render:", err)
	}
	if b.String() != goldenOut {
		t.Fatalf("rendering differs.\ngot:\n%s\nwanted:\n%s", b.String(), goldenOut)
	}
}

// Wrapping at a small width must chop all three rows in step and put
// a blank line after every block.
func TestRenderWrap(t *testing.T) {
	al := mkaligner(t, 1, -1, -1, -1)
	res := al.Align([]byte(goldenRef), []byte(goldenQry), align.Global)
	var b bytes.Buffer
	if err := res.Render(&b, []byte(goldenRef), []byte(goldenQry), 4); err != nil {
		t.Fatal("render:", err)
	}
	lines := strings.Split(b.String(), "\n")
	// 21 columns at width 4 is 6 blocks of 4 lines, plus the final "".
	if len(lines) != 25 {
		t.Fatal("got", len(lines), "lines, wanted 25")
	}
	var xrow, mrow, yrow string
	for i := 0; i+3 < len(lines); i += 4 {
		xrow += lines[i]
		mrow += lines[i+1]
		yrow += lines[i+2]
		if lines[i+3] != "" {
			t.Fatal("block", i/4, "not followed by a blank line")
		}
	}
	want := strings.Split(goldenOut, "\n")
	if xrow != want[0] || mrow != want[1] || yrow != want[2] {
		t.Fatalf("reassembled rows differ:\n%s\n%s\n%s", xrow, mrow, yrow)
	}
}

// An empty alignment still renders: one empty block.
func TestRenderEmpty(t *testing.T) {
	al := mkaligner(t, 1, -1, -5, -1)
	res := al.Align(nil, nil, align.Global)
	var b bytes.Buffer
	if err := res.Render(&b, nil, nil, 60); err != nil {
		t.Fatal("render:", err)
	}
	if b.String() != "\n\n\n\n" {
		t.Fatalf("empty rendering %q", b.String())
	}
}

// Clipped ends stay out of the drawing.
func TestRenderClipped(t *testing.T) {
	x, y := []byte("TTTACGTTT"), []byte("GGACGGG")
	al := mkaligner(t, 2, -3, -4, -1)
	res := al.Align(x, y, align.Local)
	var b bytes.Buffer
	if err := res.Render(&b, x, y, 60); err != nil {
		t.Fatal("render:", err)
	}
	if b.String() != "ACG\n|||\nACG\n\n" {
		t.Fatalf("local rendering %q", b.String())
	}
}
