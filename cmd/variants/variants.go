// 6 May 2025

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/seq_mut/pkg/common"
	"github.com/andrew-torda/seq_mut/pkg/variants"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] f1.fa [f2.fa ...]")
	flag.PrintDefaults()
	return ExitUsageError
}

// main
func main() {
	var flags variants.CmdFlag
	outfile := ""
	flag.StringVar(&flags.Mode, "a", "global", "alignment mode: global, local or semiglobal")
	flag.IntVar(&flags.Match, "m", 1, "match reward")
	flag.IntVar(&flags.Mismatch, "s", -1, "mismatch penalty")
	flag.IntVar(&flags.GapOpen, "g", -3, "gap open penalty, must be negative")
	flag.IntVar(&flags.GapExt, "e", -1, "gap extend penalty, must be negative")
	flag.StringVar(&flags.PlotFile, "plot", "", "png of the least similar pair's identity profile")
	flag.StringVar(&flags.FontFile, "font", "", "ttf font for the plot title")
	flag.IntVar(&flags.Window, "window", 10, "alignment columns per plotted point")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")

	flag.Parse()

	if flag.NArg() < 1 {
		os.Exit(usage())
	}
	if err := variants.Mymain(&flags, flag.Args(), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
