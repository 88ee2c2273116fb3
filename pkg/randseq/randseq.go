// 31 July 2020
// 19 Oct 2026 now only nucleotides, one line, no comment line.

package randseq

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/andrew-torda/nucfile/pkg/common"
	"github.com/dustin/randbo"
	"github.com/golang/snappy"
)

// DefaultLen is the number of nucleotides if nobody says otherwise.
const DefaultLen = 10_000_000

const chunkSize = 64 * 1024

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed  int64     // random number seed, 0 means use the clock
	Wrtr   io.Writer // where we write to
	Len    int       // number of nucleotides
	Snappy bool      // compress the output with snappy framing
}

// fillBases overwrites b with random bases. Each random byte picks one
// base with its bottom two bits. 256 is a multiple of 4, so every base
// is equally likely.
func fillBases(b []byte, rnd io.Reader) error {
	if _, err := io.ReadFull(rnd, b); err != nil {
		return err
	}
	for i, c := range b {
		b[i] = common.Bases[c&3]
	}
	return nil
}

// RandSeqMain writes args.Len random nucleotides and a newline to args.Wrtr.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Len < 0 {
		return fmt.Errorf("number of nucleotides must not be negative, got %d", args.Len)
	}
	seed := args.Iseed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := randbo.NewFrom(rand.NewSource(seed))

	w := args.Wrtr
	var zw *snappy.Writer
	if args.Snappy {
		zw = snappy.NewBufferedWriter(w)
		w = zw
	}
	buf := make([]byte, min(args.Len, chunkSize))
	for left := args.Len; left > 0; {
		b := buf[:min(left, chunkSize)]
		if err := fillBases(b, rnd); err != nil {
			return err
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
		left -= len(b)
	}
	if _, err := w.Write([]byte{'\n'}); err != nil {
		return err
	}
	if zw != nil {
		return zw.Close() // flushes, leaves args.Wrtr open
	}
	return nil
}

// WriteFile creates or truncates fname and fills it. args.Wrtr is ignored.
func WriteFile(fname string, args RandSeqArgs) (err error) {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("file for output: %w", err)
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", fname, cerr)
		}
	}()
	bw := bufio.NewWriterSize(fp, chunkSize)
	args.Wrtr = bw
	if err = RandSeqMain(&args); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}
