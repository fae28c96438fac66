// 7 May 2025

package variants

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/seq_mut/pkg/align"
	"github.com/andrew-torda/seq_mut/pkg/common"
	"github.com/andrew-torda/seq_mut/pkg/seq"
)

const threeseqs = `> s1
ACGTACGT
> s2
ACGAACGT
> s3
TTTTTTTT
`

func TestPairs(t *testing.T) {
	seqs, err := seq.ReadFasta(strings.NewReader(threeseqs), nil)
	if err != nil {
		t.Fatal(err)
	}
	p, err := align.NewPnlty(-3, -1)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	scr := align.MatchMismatch{Match: 1, Mismatch: -1}
	worst := Pairs(&b, seqs, scr, p, align.Global)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4 { // header plus three pairs
		t.Fatal("want 4 lines, got", len(lines), "\n", b.String())
	}
	if lines[1] != "1,2,s1,s2,6,0.8750,1" {
		t.Error("wrong first pair line:", lines[1])
	}
	// s2 has only its final T in common with s3; s1 keeps two Ts.
	if worst.I != 1 || worst.J != 2 {
		t.Error("wrong worst pair", worst.I, worst.J)
	}
	if worst.Identity != 0.125 {
		t.Error("worst identity", worst.Identity)
	}
}

func TestMymainPlot(t *testing.T) {
	fname, err := common.WrtTemp(threeseqs)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)

	dir := t.TempDir()
	out := filepath.Join(dir, "pairs.csv")
	png := filepath.Join(dir, "worst.png")
	flags := CmdFlag{
		Mode: "global", Match: 1, Mismatch: -1,
		GapOpen: -3, GapExt: -1, PlotFile: png, Window: 2,
	}
	if err := Mymain(&flags, []string{fname}, out); err != nil {
		t.Fatal("mymain:", err)
	}
	for _, f := range []string{out, png} {
		if fi, err := os.Stat(f); err != nil || fi.Size() == 0 {
			t.Errorf("missing or empty output %s: %v", f, err)
		}
	}
}

func TestMymainTooFew(t *testing.T) {
	fname, err := common.WrtTemp("> only\nACGT\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	flags := CmdFlag{GapOpen: -3, GapExt: -1}
	if err := Mymain(&flags, []string{fname}, "-"); err == nil {
		t.Error("expected an error for a single sequence")
	}
}
