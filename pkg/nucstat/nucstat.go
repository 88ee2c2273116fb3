// 19 Oct 2026
// Check a nucleotide file before giving it to postgres. The dna type
// there refuses empty sequences and anything but A, T, C and G.
// While we are reading, count the bases and the pairs of neighbours.
// Files can be big, so we map them rather than reading.

package nucstat

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/nucfile/pkg/common"
	"github.com/edsrzf/mmap-go"
)

// Stats is what we learn from one file.
type Stats struct {
	Fname      string
	Len        int                // sequence length, not counting a trailing newline
	Counts     [common.NBase]int  // indexed like common.Bases
	NOther     int                // bytes that are not bases
	NNewline   int                // newlines inside the sequence
	FirstBad   int                // offset of first non-base, -1 if none
	BadChar    byte               // the first non-base
	TrailingNL bool               // file ends with a newline
	PairCounts [common.NBase][common.NBase]int
	Trans      *matrix.FMatrix2d // Trans.Mat[i][j] is P(next is j | this is i)
}

// StatBytes does the work on data which is already in memory.
func StatBytes(fname string, data []byte) *Stats {
	st := &Stats{Fname: fname, FirstBad: -1}
	if n := len(data); n > 0 && data[n-1] == '\n' {
		st.TrailingNL = true
		data = data[:n-1]
	}
	st.Len = len(data)
	prev := -1
	for i, c := range data {
		ndx := common.BaseNdx(c)
		if ndx == -1 {
			if st.FirstBad == -1 {
				st.FirstBad, st.BadChar = i, c
			}
			st.NOther++
			if c == '\n' {
				st.NNewline++
			}
			prev = -1
			continue
		}
		st.Counts[ndx]++
		if prev != -1 {
			st.PairCounts[prev][ndx]++
		}
		prev = ndx
	}
	st.setTrans()
	return st
}

// setTrans normalises each row of the pair counts.
func (st *Stats) setTrans() {
	st.Trans = matrix.NewFMatrix2d(common.NBase, common.NBase)
	for i, row := range st.PairCounts {
		var tot int
		for _, n := range row {
			tot += n
		}
		if tot == 0 {
			continue
		}
		for j, n := range row {
			st.Trans.Mat[i][j] = float32(n) / float32(tot)
		}
	}
}

// Stat maps fname and collects statistics. Empty files cannot be
// mapped, but they are legal input, so we do not try.
func Stat(fname string) (*Stats, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("nucstat: %w", err)
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		return StatBytes(fname, nil), nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	return StatBytes(fname, mm), nil
}

// NBases is the number of valid nucleotides.
func (st *Stats) NBases() int {
	var n int
	for _, c := range st.Counts {
		n += c
	}
	return n
}

// Frac is the fraction of the sequence which is base number i.
func (st *Stats) Frac(i int) float64 {
	if st.Len == 0 {
		return 0
	}
	return float64(st.Counts[i]) / float64(st.Len)
}

// Validate applies the rules of the database type.
func (st *Stats) Validate() error {
	switch {
	case st.Len == 0:
		return fmt.Errorf("%s: DNA sequence cannot be empty", st.Fname)
	case st.NNewline > 0:
		return fmt.Errorf("%s: sequence is broken over %d lines", st.Fname, st.NNewline+1)
	case st.FirstBad != -1:
		return fmt.Errorf("%s: invalid character in DNA sequence: %q at offset %d (%d bad)",
			st.Fname, st.BadChar, st.FirstBad, st.NOther)
	case !st.TrailingNL:
		return fmt.Errorf("%s: no newline at end of file", st.Fname)
	}
	return nil
}

// Write prints a report.
func (st *Stats) Write(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("%s: %d bytes of sequence, %d nucleotides\n", st.Fname, st.Len, st.NBases())
	for i := 0; i < common.NBase; i++ {
		ew.printf("  %c %10d %7.4f\n", common.Bases[i], st.Counts[i], st.Frac(i))
	}
	if st.NOther > 0 {
		ew.printf("  other %6d first %q at %d\n", st.NOther, st.BadChar, st.FirstBad)
	}
	ew.printf("  next base  ")
	for i := 0; i < common.NBase; i++ {
		ew.printf("%7c", common.Bases[i])
	}
	ew.printf("\n")
	for i, row := range st.Trans.Mat {
		ew.printf("  %c          ", common.Bases[i])
		for _, f := range row {
			ew.printf("%7.4f", f)
		}
		ew.printf("\n")
	}
	return ew.err
}

// errWriter keeps the first error so Write does not check every line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}
