// 12 May 2025

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/seq_mut/pkg/common"
	"github.com/andrew-torda/seq_mut/pkg/poa"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] graph.fa [queries.fa]")
	flag.PrintDefaults()
	return ExitUsageError
}

// main
func main() {
	var flags poa.CmdFlag
	outfile := ""
	flag.IntVar(&flags.Match, "m", 1, "match reward")
	flag.IntVar(&flags.Mismatch, "s", -1, "mismatch penalty")
	flag.IntVar(&flags.GapOpen, "g", -3, "gap open penalty, must be negative")
	flag.IntVar(&flags.GapExt, "e", -1, "gap extend penalty, must be negative")
	flag.IntVar(&flags.MaxNodes, "n", 0, "node limit for the graph, 0 for the default")
	flag.BoolVar(&flags.Print, "p", false, "print each query alignment")
	flag.IntVar(&flags.Width, "w", 80, "line width when printing alignments")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")

	flag.Parse()

	if flag.NArg() < 1 {
		os.Exit(usage())
	}
	if err := poa.Mymain(&flags, flag.Arg(0), flag.Arg(1), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
