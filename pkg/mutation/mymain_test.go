// 4 Apr 2025

package mutation

import (
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/seq_mut/pkg/common"
)

func wrtfasta(t *testing.T, cmmt, s string) string {
	t.Helper()
	fname, err := common.WrtTemp(">" + cmmt + "\n" + s + "\n")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fname) })
	return fname
}

func TestMymain(t *testing.T) {
	ref := wrtfasta(t, "ref", "ACGTACGT")
	q := wrtfasta(t, "q1", "ACGAAC-GT") // gap must be stripped on reading

	out, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(out)

	flags := CmdFlag{
		Mode: "global", Match: 1, Mismatch: -1,
		GapOpen: -3, GapExt: -1, Print: true, Width: 60,
	}
	if err := Mymain(&flags, ref, []string{q}, out); err != nil {
		t.Fatal("mymain:", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"reference: ref", "query: q1", "score"} {
		if !strings.Contains(string(got), want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestMymainBadFlags(t *testing.T) {
	ref := wrtfasta(t, "ref", "ACGT")
	for _, flags := range []CmdFlag{
		{Mode: "sideways", GapOpen: -3, GapExt: -1},
		{Mode: "global", GapOpen: 3, GapExt: -1},
		{Mode: "global", GapOpen: -3, GapExt: 0},
	} {
		if err := Mymain(&flags, ref, []string{ref}, "-"); err == nil {
			t.Errorf("expected error for flags %+v", flags)
		}
	}
}
