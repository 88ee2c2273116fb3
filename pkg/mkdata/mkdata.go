// 19 Oct 2026
// Make the set of random nucleotide files used for loading and
// benchmarking the DNA types in postgres.
// The server has to be able to read the files, so put them somewhere
// like /tmp and not in a home directory.

package mkdata

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/andrew-torda/nucfile/pkg/randseq"
)

// Target is one file to be made.
type Target struct {
	Fname string
	Len   int
}

// Targets are made in this order. The names say how many nucleotides
// and roughly how big the postgres table becomes.
var Targets = []Target{
	{"random_nucleotides_10M_100Mb.txt", 10_000_000},
	{"random_nucleotides_200K_2Mb.txt", 200_000},
	{"random_nucleotides_1M_10Mb.txt", 1_000_000},
	{"random_nucleotides_100K_1Mb.txt", 100_000},
	{"random_nucleotides_1K_100Kb.txt", 1_000},
}

// Args control MkData.
type Args struct {
	Dir     string      // output directory, "" means working directory
	Iseed   int64       // 0 means seed from the clock
	Logger  *log.Logger // progress, nil for silence
	Targets []Target    // nil means Targets
}

func (args *Args) logf(format string, v ...any) {
	if args.Logger != nil {
		args.Logger.Printf(format, v...)
	}
}

// MkData writes each target file. We stop at the first failure.
// Each file gets its own seed derived from args.Iseed so that a fixed
// seed gives the same set of files every time.
func MkData(args *Args) error {
	tgts := args.Targets
	if tgts == nil {
		tgts = Targets
	}
	for i, tgt := range tgts {
		fname := filepath.Join(args.Dir, tgt.Fname)
		var seed int64
		if args.Iseed != 0 {
			seed = args.Iseed + int64(i)
		}
		args.logf("writing %d nucleotides to %s", tgt.Len, fname)
		rsArgs := randseq.RandSeqArgs{Len: tgt.Len, Iseed: seed}
		if err := randseq.WriteFile(fname, rsArgs); err != nil {
			return fmt.Errorf("target %d of %d: %w", i+1, len(tgts), err)
		}
	}
	args.logf("wrote %d files", len(tgts))
	return nil
}
