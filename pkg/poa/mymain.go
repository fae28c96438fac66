// 12 May 2025

package poa

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/seq_mut/pkg/align"
	"github.com/andrew-torda/seq_mut/pkg/mutation"
	"github.com/andrew-torda/seq_mut/pkg/seq"
)

// CmdFlag holds what came from the command line.
type CmdFlag struct {
	Match    int
	Mismatch int
	GapOpen  int
	GapExt   int
	MaxNodes int  // 0 keeps the default limit
	Print    bool // render query alignments against their graph path
	Width    int
}

// Mymain builds a partial order graph from the sequences in
// graphfile, prints the consensus and then, if queryfile is not
// empty, aligns each of its sequences against the graph. Output goes
// to outfile, or stdout if that is empty or "-".
func Mymain(flags *CmdFlag, graphfile, queryfile, outfile string) error {
	scr := align.MatchMismatch{Match: flags.Match, Mismatch: flags.Mismatch}
	p, err := align.NewPnlty(flags.GapOpen, flags.GapExt)
	if err != nil {
		return err
	}
	seqs, err := seq.ReadFile(graphfile, &seq.Options{RmvGaps: true})
	if err != nil {
		return err
	}

	g := New(scr, p, seqs[0].Seq())
	if flags.MaxNodes > 0 {
		g.SetMaxNodes(flags.MaxNodes)
	}
	for _, s := range seqs[1:] {
		if err := g.Add(s.Seq()); err != nil {
			return fmt.Errorf("adding %s: %w", s.Cmmt(), err)
		}
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
	fmt.Fprintf(w, "graph: %d sequences, %d nodes\n", len(seqs), g.NNodes())
	fmt.Fprintf(w, "consensus: %s\n", g.Consensus())

	if queryfile == "" {
		return nil
	}
	queries, err := seq.ReadFile(queryfile, &seq.Options{RmvGaps: true})
	if err != nil {
		return err
	}
	for _, q := range queries {
		res, path, err := g.AlignQuery(q.Seq())
		if err != nil {
			return fmt.Errorf("aligning %s: %w", q.Cmmt(), err)
		}
		s := mutation.Reduce(res)
		fmt.Fprintf(w, "query %s: score %d  identity %.3f  matches %d  mismatches %d\n",
			q.Cmmt(), res.Score, s.Identity(), s.Matches, s.Mismatches)
		if flags.Print {
			if err := res.Render(w, path, q.Seq(), flags.Width); err != nil {
				return err
			}
		}
	}
	return nil
}
