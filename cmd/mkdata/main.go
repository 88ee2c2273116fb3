// 19 Oct 2026

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	. "github.com/andrew-torda/nucfile/pkg/common"
	"github.com/andrew-torda/nucfile/pkg/mkdata"
)

func main() {
	f := flag.NewFlagSet("mkdata", flag.ExitOnError)
	var args mkdata.Args
	f.StringVar(&args.Dir, "d", "", "output directory")
	f.Int64Var(&args.Iseed, "r", 0, "random number seed, 0 means use the clock")
	verbose := f.Bool("v", false, "report progress")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 0 {
		fmt.Fprintln(f.Output(), "mkdata takes no arguments, only flags")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	if *verbose {
		args.Logger = log.New(os.Stderr, "mkdata: ", 0)
	}
	if err := mkdata.MkData(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
