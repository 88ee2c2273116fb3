// 19 Oct 2026

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	. "github.com/andrew-torda/nucfile/pkg/common"
	"github.com/andrew-torda/nucfile/pkg/extract"
)

const (
	dfltIn  = "SAMN01780187.fastq"
	dfltOut = "dna.txt"
)

func main() {
	f := flag.NewFlagSet("extract", flag.ExitOnError)
	verbose := f.Bool("v", false, "report what was found")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() > 2 {
		fmt.Fprintln(f.Output(), "Too many args\nextract [..] [infile [outfile]]")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	infile, outfile := dfltIn, dfltOut
	if f.NArg() > 0 {
		infile = f.Arg(0)
	}
	if f.NArg() > 1 {
		outfile = f.Arg(1)
	}

	log.SetFlags(0)
	log.SetPrefix("extract: ")
	res, err := extract.Extract(infile, outfile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	if *verbose {
		log.Printf("%s: %d lines, %d sequence lines, %d bases to %s",
			infile, res.NLine, res.NFrag, res.NByte, outfile)
	}
	os.Exit(ExitSuccess)
}
