// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	. "github.com/andrew-torda/nucfile/pkg/common"
	"github.com/andrew-torda/nucfile/pkg/randseq"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	var args randseq.RandSeqArgs

	f.Int64Var(&args.Iseed, "r", 0, "random number seed, 0 means use the clock")
	f.BoolVar(&args.Snappy, "z", false, "snappy compress the output")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandseq [..] file [n]")
		f.Usage()
		os.Exit(ExitUsageError)
	}

	args.Len = randseq.DefaultLen
	if f.NArg() == 2 {
		const emsg = "Failed converting %s to positive integer\n"
		if n, err := strconv.ParseUint(f.Arg(1), 10, 32); err != nil {
			fmt.Fprintf(os.Stderr, emsg, f.Arg(1))
			os.Exit(ExitFailure)
		} else {
			args.Len = int(n)
		}
	}

	fname := f.Arg(0)
	if strings.HasSuffix(fname, ".sz") {
		args.Snappy = true
	}
	var err error
	if fname == "-" {
		args.Wrtr = os.Stdout
		err = randseq.RandSeqMain(&args)
	} else {
		err = randseq.WriteFile(fname, args)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
