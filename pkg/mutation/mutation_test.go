package mutation_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/seq_mut/pkg/align"
	"github.com/andrew-torda/seq_mut/pkg/mutation"
	"github.com/andrew-torda/seq_mut/pkg/randseq"
)

func mkdiff(t *testing.T, ref, query string) *mutation.DiffStat {
	t.Helper()
	p, err := align.NewPnlty(-1, -1)
	if err != nil {
		t.Fatal(err)
	}
	return mutation.New([]byte(ref), []byte(query),
		align.MatchMismatch{Match: 1, Mismatch: -1}, p)
}

func TestNotAligned(t *testing.T) {
	d := mkdiff(t, "ACGT", "ACGT")
	if _, err := d.Stats(); !errors.Is(err, mutation.ErrNotAligned) {
		t.Fatal("Stats before aligning must fail with ErrNotAligned, got", err)
	}
	if err := d.PrettyPrint(&bytes.Buffer{}, 80); !errors.Is(err, mutation.ErrNotAligned) {
		t.Fatal("PrettyPrint before aligning must fail with ErrNotAligned, got", err)
	}
	if _, err := d.Alignment(); !errors.Is(err, mutation.ErrNotAligned) {
		t.Fatal("Alignment before aligning must fail with ErrNotAligned, got", err)
	}
	d.AlignGlobal()
	if _, err := d.Stats(); err != nil {
		t.Fatal("Stats after aligning:", err)
	}
}

// The counts for the reference pair from the end-to-end scenario.
func TestStatsCounts(t *testing.T) {
	d := mkdiff(t, "CCGTCCGGCAAGGG", "AAAAACCGTTGACGGCCAA")
	res := d.AlignGlobal()
	if res.Score != -6 {
		t.Fatal("score", res.Score, "wanted -6")
	}
	st, err := d.Stats()
	if err != nil {
		t.Fatal(err)
	}
	want := &mutation.Stats{
		Matches: 9, Substitutions: 3, Insertions: 7, Deletions: 2,
		Mismatches: 12, Total: 21,
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Fatal("stats differ:\n", diff)
	}
	if got := st.Identity(); got < 0.428 || got > 0.429 {
		t.Fatal("identity", got)
	}
}

// Clips must not count, and the bookkeeping identities must hold for
// random pairs in every mode.
func TestStatsInvariants(t *testing.T) {
	p, _ := align.NewPnlty(-3, -1)
	for seed := int64(1); seed <= 30; seed++ {
		ref := randseq.DNA(seed, 20)
		q := randseq.DNA(seed+500, 26)
		d := mutation.New(ref, q, align.MatchMismatch{Match: 1, Mismatch: -1}, p)
		for _, mode := range []align.Mode{align.Global, align.Local, align.Semiglobal} {
			res := d.Align(mode)
			st, err := d.Stats()
			if err != nil {
				t.Fatal(err)
			}
			if st.Total != st.Matches+st.Mismatches {
				t.Fatalf("seed %d %v: total %d != %d+%d", seed, mode,
					st.Total, st.Matches, st.Mismatches)
			}
			if st.Mismatches != st.Substitutions+st.Insertions+st.Deletions {
				t.Fatalf("seed %d %v: mismatch split broken: %+v", seed, mode, st)
			}
			nonclip := 0
			for _, op := range res.Ops {
				if op != align.XClip && op != align.YClip {
					nonclip++
				}
			}
			if st.Total != nonclip {
				t.Fatalf("seed %d %v: total %d but %d non-clip ops",
					seed, mode, st.Total, nonclip)
			}
		}
	}
}

func TestDistancesThroughDiffStat(t *testing.T) {
	d := mkdiff(t, "ACGT", "ACGA")
	if n := d.Levenshtein(); n != 1 {
		t.Fatal("levenshtein", n)
	}
	if n, err := d.Hamming(); err != nil || n != 1 {
		t.Fatal("hamming", n, err)
	}
	d = mkdiff(t, "ACGT", "ACG")
	if _, err := d.Hamming(); err == nil {
		t.Fatal("hamming on unequal lengths must fail")
	}
}

// End to end: the pipeline a caller actually runs.
func TestEndToEnd(t *testing.T) {
	d := mkdiff(t, "CCGTCCGGCAAGGG", "AAAAACCGTTGACGGCCAA")
	d.AlignGlobal()
	var b bytes.Buffer
	if err := d.PrettyPrint(&b, 120); err != nil {
		t.Fatal(err)
	}
	want := "-----CCGT--CCGGCAAGGG\n" +
		"xxxxx||||xx\\||||\\|++\\\n" +
		"AAAAACCGTTGACGGCCA--A\n\n"
	if b.String() != want {
		t.Fatalf("rendering:\n%s\nwanted:\n%s", b.String(), want)
	}
}
