// 19 Oct 2026
// Pull the sequence out of a data file downloaded from the National
// Library of Medicine. Sequence lines start with an N. Everything after
// the N, less white space, is glued onto one long output line.

package extract

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/nucfile/pkg/zwrap"
)

// Marker is the first character of lines we keep.
const Marker byte = 'N'

const bufSize = 64 * 1024

// Result says how much we found.
type Result struct {
	NLine int   // lines read
	NFrag int   // lines that started with Marker
	NByte int64 // sequence bytes written, not counting the newline
}

// ExtractRdr reads lines from rdr and writes the concatenated fragments
// and a final newline to wrtr. Lines may be any length.
func ExtractRdr(rdr io.Reader, wrtr io.Writer) (Result, error) {
	var res Result
	brdr := bufio.NewReaderSize(rdr, bufSize)
	bwrtr := bufio.NewWriterSize(wrtr, bufSize)
	var line []byte
	for {
		var err error
		line, err = readLine(brdr, line[:0])
		if len(line) > 0 {
			res.NLine++
			if line[0] == Marker {
				frag := bytes.TrimSpace(line[1:])
				if _, werr := bwrtr.Write(frag); werr != nil {
					return res, fmt.Errorf("writing: %w", werr)
				}
				res.NFrag++
				res.NByte += int64(len(frag))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("after line %d: %w", res.NLine, err)
		}
	}
	if err := bwrtr.WriteByte('\n'); err != nil {
		return res, fmt.Errorf("writing: %w", err)
	}
	if err := bwrtr.Flush(); err != nil {
		return res, fmt.Errorf("writing: %w", err)
	}
	return res, nil
}

// readLine appends the next line, including its newline, to buf.
// ReadSlice stops at the buffer size, so long lines come back in pieces.
func readLine(brdr *bufio.Reader, buf []byte) ([]byte, error) {
	for {
		chunk, err := brdr.ReadSlice('\n')
		buf = append(buf, chunk...)
		if err != bufio.ErrBufferFull {
			return buf, err
		}
	}
}

// Extract reads infile and writes the sequence to outfile, truncating
// it. Compressed input (gzip or snappy) is decompressed on the fly.
// If the input is not there, the error satisfies
// errors.Is(err, fs.ErrNotExist) and no output file is made.
func Extract(infile, outfile string) (res Result, err error) {
	fin, err := zwrap.Open(infile)
	if err != nil {
		return res, err
	}
	defer fin.Close()

	fout, err := os.Create(outfile)
	if err != nil {
		return res, fmt.Errorf("output file: %w", err)
	}
	defer func() {
		if cerr := fout.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", outfile, cerr)
		}
	}()
	if res, err = ExtractRdr(fin, fout); err != nil {
		return res, fmt.Errorf("%s: %w", infile, err)
	}
	return res, nil
}
