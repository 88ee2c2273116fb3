// Package zwrap takes a file pointer and wraps it so reads come from
// the decompressed stream if the file was compressed. Upon calling
// Close, the decompressor will be closed, followed by the underlying file.
// We look at the first bytes rather than the file name. Downloads are
// often renamed and lose their suffix.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
)

// Kind says how a stream was compressed.
type Kind int

const (
	Plain Kind = iota
	Gzip
	Snappy
)

func (k Kind) String() string {
	switch k {
	case Gzip:
		return "gzip"
	case Snappy:
		return "snappy"
	}
	return "plain"
}

var (
	gzipMagic   = []byte{0x1f, 0x8b}
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY") // snappy framing stream identifier
)

const bufSize = 64 * 1024

type FpZ struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader    // where Read really comes from
	zrdr *gzip.Reader // only set for gzip, since it has its own Close
	kind Kind
}

// Kind tells us what we found at the start of the stream.
func (fz *FpZ) Kind() Kind { return fz.kind }

// Read makes sure we read from the decompressed stream and
// not the underlying file stream.
func (fz *FpZ) Read(p []byte) (int, error) { return fz.rdr.Read(p) }

// Close closes the decompressor, then the underlying backing readCloser.
func (fz *FpZ) Close() error {
	var errs []error
	if fz.zrdr != nil {
		errs = append(errs, fz.zrdr.Close())
	}
	errs = append(errs, fz.fp.Close())
	return errors.Join(errs...)
}

// sniff works out the compression from the first few bytes.
func sniff(magic []byte) Kind {
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		return Gzip
	case bytes.HasPrefix(magic, snappyMagic):
		return Snappy
	}
	return Plain
}

// Wrap takes a source like a file pointer and decides if the
// stream is compressed. It never needs to seek, so it is happy with
// pipes and http bodies. On error, fp is not closed.
func Wrap(fp io.ReadCloser) (*FpZ, error) {
	br := bufio.NewReaderSize(fp, bufSize)
	magic, err := br.Peek(len(snappyMagic))
	if err != nil && err != io.EOF { // A short file is not an error
		return nil, err
	}
	fz := &FpZ{fp: fp, kind: sniff(magic)}
	switch fz.kind {
	case Gzip:
		if fz.zrdr, err = gzip.NewReader(br); err != nil {
			return nil, fmt.Errorf("gzip header: %w", err)
		}
		fz.rdr = fz.zrdr
	case Snappy:
		fz.rdr = snappy.NewReader(br)
	default:
		fz.rdr = br
	}
	return fz, nil
}

// Open opens fname for reading and wraps it. Errors from os.Open come
// back wrapped, so errors.Is(err, fs.ErrNotExist) works.
func Open(fname string) (*FpZ, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	fz, err := Wrap(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return fz, nil
}
