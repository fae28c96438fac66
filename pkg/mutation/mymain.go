// 2 Apr 2025

package mutation

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andrew-torda/seq_mut/pkg/align"
	"github.com/andrew-torda/seq_mut/pkg/seq"
	"github.com/andrew-torda/seq_mut/pkg/submat"
)

// CmdFlag holds what came from the command line.
type CmdFlag struct {
	Mode     string // global, local or semiglobal
	Match    int    // reward when MatFile is empty
	Mismatch int
	GapOpen  int
	GapExt   int
	MatFile  string // substitution matrix, overrides match/mismatch
	Print    bool   // write the three-row alignment as well
	Width    int    // line width for printing
}

// scorer builds the scoring scheme the flags ask for.
func (flags *CmdFlag) scorer() (align.Scorer, error) {
	if flags.MatFile == "" {
		return align.MatchMismatch{Match: flags.Match, Mismatch: flags.Mismatch}, nil
	}
	return submat.ReadFile(flags.MatFile)
}

// firstseq reads a fasta file and takes the first sequence, with gaps
// removed. More sequences in the file are not an error, just ignored.
func firstseq(fname string) (seq.Seq, error) {
	seqs, err := seq.ReadFile(fname, &seq.Options{RmvGaps: true})
	if err != nil {
		return seq.Seq{}, err
	}
	return seqs[0], nil
}

// wrtStats writes one alignment's numbers in a form that is readable
// and still easy to grep.
func wrtStats(w io.Writer, cmmt string, res *align.Result, s *Stats, lev int) {
	fmt.Fprintln(w, "query:", cmmt)
	fmt.Fprintf(w, "score %d  matches %d  substitutions %d  insertions %d  deletions %d\n",
		res.Score, s.Matches, s.Substitutions, s.Insertions, s.Deletions)
	fmt.Fprintf(w, "identity %.3f  levenshtein %d  aligned %d..%d / %d..%d\n",
		s.Identity(), lev, res.XStart, res.XEnd, res.YStart, res.YEnd)
}

// Mymain compares the first sequence of reffile with the first
// sequence of every further file and writes mutation statistics to
// outfile, or stdout if outfile is empty or "-".
func Mymain(flags *CmdFlag, reffile string, qfiles []string, outfile string) error {
	mode, err := align.ParseMode(flags.Mode)
	if err != nil {
		return err
	}
	scr, err := flags.scorer()
	if err != nil {
		return err
	}
	p, err := align.NewPnlty(flags.GapOpen, flags.GapExt)
	if err != nil {
		return err
	}
	ref, err := firstseq(reffile)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outfile != "" && outfile != "-" {
		fp, err := os.Create(outfile)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outfile, err)
		}
		defer fp.Close()
		w = fp
	}

	start := time.Now()
	fmt.Fprintln(w, "reference:", ref.Cmmt(), "length", ref.Len())
	for _, qf := range qfiles {
		q, err := firstseq(qf)
		if err != nil {
			return err
		}
		d := New(ref.Seq(), q.Seq(), scr, p)
		res := d.Align(mode)
		s, _ := d.Stats()
		wrtStats(w, q.Cmmt(), res, s, d.Levenshtein())
		if flags.Print {
			if err := d.PrettyPrint(w, flags.Width); err != nil {
				return err
			}
		}
	}
	fmt.Fprintln(w, "time:", time.Since(start).Round(time.Millisecond))
	return nil
}
