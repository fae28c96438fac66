// 3 Apr 2025

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/seq_mut/pkg/common"
	"github.com/andrew-torda/seq_mut/pkg/mutation"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]),
		"[opts] ref.fa query.fa [more_queries.fa ...]")
	flag.PrintDefaults()
	return ExitUsageError
}

// main
func main() {
	var flags mutation.CmdFlag
	outfile := ""
	flag.StringVar(&flags.Mode, "a", "global", "alignment mode: global, local or semiglobal")
	flag.IntVar(&flags.Match, "m", 1, "match reward")
	flag.IntVar(&flags.Mismatch, "s", -1, "mismatch penalty")
	flag.IntVar(&flags.GapOpen, "g", -3, "gap open penalty, must be negative")
	flag.IntVar(&flags.GapExt, "e", -1, "gap extend penalty, must be negative")
	flag.StringVar(&flags.MatFile, "b", "", "substitution matrix file, overrides -m and -s")
	flag.BoolVar(&flags.Print, "p", false, "print each alignment")
	flag.IntVar(&flags.Width, "w", 80, "line width when printing alignments")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")

	flag.Parse()

	if flag.NArg() < 2 {
		os.Exit(usage())
	}
	reffile := flag.Arg(0)
	qfiles := flag.Args()[1:]
	if err := mutation.Mymain(&flags, reffile, qfiles, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
