// 19 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"

	. "github.com/andrew-torda/nucfile/pkg/common"
	"github.com/andrew-torda/nucfile/pkg/nucstat"
)

func main() {
	f := flag.NewFlagSet("nucstat", flag.ExitOnError)
	args := nucstat.Args{Wrtr: os.Stdout}
	f.StringVar(&args.PlotFname, "p", "", "write a composition plot to this png file")
	f.BoolVar(&args.Quiet, "q", false, "only print problems")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() == 0 {
		fmt.Fprintln(f.Output(), "Too few args\nnucstat [..] file [file ...]")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	args.Fnames = f.Args()
	nbad, err := nucstat.Main(&args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	if nbad > 0 {
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
