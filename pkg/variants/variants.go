// 6 May 2025

// Package variants compares every pair of sequences from one or more
// fasta files and writes a csv table of scores, identities and edit
// distances. It can also draw the identity profile of the most
// diverged pair as a png, which is where mutation clusters are
// easiest to see.
package variants

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/seq_mut/pkg/align"
	"github.com/andrew-torda/seq_mut/pkg/distance"
	"github.com/andrew-torda/seq_mut/pkg/mutation"
	"github.com/andrew-torda/seq_mut/pkg/plot"
	"github.com/andrew-torda/seq_mut/pkg/seq"
)

// CmdFlag holds what came from the command line.
type CmdFlag struct {
	Mode     string
	Match    int
	Mismatch int
	GapOpen  int
	GapExt   int
	PlotFile string // png of the least similar pair, "" for none
	FontFile string // ttf for the plot title, "" for no text
	Window   int    // columns per plotted point
}

// readAll collects the sequences from all the files, gaps removed.
func readAll(fnames []string) ([]seq.Seq, error) {
	var all []seq.Seq
	for _, f := range fnames {
		seqs, err := seq.ReadFile(f, &seq.Options{RmvGaps: true})
		if err != nil {
			return nil, err
		}
		all = append(all, seqs...)
	}
	if len(all) < 2 {
		return nil, fmt.Errorf("need at least two sequences, got %d", len(all))
	}
	return all, nil
}

// Pair is one comparison. I and J index into the sequence list.
type Pair struct {
	I, J     int
	Res      *align.Result
	Identity float64
}

// Pairs aligns every pair and writes one csv line per comparison. It
// returns the pair with the lowest identity.
func Pairs(w io.Writer, seqs []seq.Seq, scr align.Scorer, p align.Pnlty, mode align.Mode) Pair {
	al := align.New(scr, p)
	worst := Pair{I: -1, Identity: 2}
	fmt.Fprintln(w, "i,j,name_i,name_j,score,identity,levenshtein")
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			res := al.Align(seqs[i].Seq(), seqs[j].Seq(), mode)
			s := mutation.Reduce(res)
			lev := distance.Levenshtein(seqs[i].Seq(), seqs[j].Seq())
			fmt.Fprintf(w, "%d,%d,%s,%s,%d,%.4f,%d\n",
				i+1, j+1, seqs[i].Cmmt(), seqs[j].Cmmt(),
				res.Score, s.Identity(), lev)
			if s.Identity() < worst.Identity {
				worst = Pair{I: i, J: j, Res: res, Identity: s.Identity()}
			}
		}
	}
	return worst
}

// Mymain reads the fasta files, writes the all-pairs table to outfile
// or stdout and, if asked for, plots the most diverged pair.
func Mymain(flags *CmdFlag, fnames []string, outfile string) error {
	mode, err := align.ParseMode(flags.Mode)
	if err != nil {
		return err
	}
	p, err := align.NewPnlty(flags.GapOpen, flags.GapExt)
	if err != nil {
		return err
	}
	seqs, err := readAll(fnames)
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

	scr := align.MatchMismatch{Match: flags.Match, Mismatch: flags.Mismatch}
	worst := Pairs(w, seqs, scr, p, mode)

	if flags.PlotFile == "" {
		return nil
	}
	fp, err := os.Create(flags.PlotFile)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flags.PlotFile, err)
	}
	defer fp.Close()
	args := plot.Args{
		FontFile: flags.FontFile,
		Title: fmt.Sprintf("%s vs %s, identity %.3f",
			seqs[worst.I].Cmmt(), seqs[worst.J].Cmmt(), worst.Identity),
	}
	return plot.PNG(fp, plot.Identity(worst.Res, flags.Window), &args)
}
