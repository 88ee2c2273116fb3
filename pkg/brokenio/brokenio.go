// brokenio wraps readers and writers so they fail after a set number
// of bytes. Typical use: you have a file pointer or a strings.Reader.
// You write
//   rdr = brokenio.NewReader(rdr, 100)
// and everything works as before until 100 bytes have gone through.
// After that every call returns ErrBroken. This lets us check that
// errors in the middle of a file get back to the caller.
// A limit below zero means never fail.

package brokenio

import (
	"errors"
	"fmt"
	"io"
)

// ErrBroken is what we return once the limit is reached.
var ErrBroken = errors.New("brokenio: artificial failure")

// BrknRdr is the reader wrapper.
type BrknRdr struct {
	rdrOrig io.Reader
	nGood   int // fail once this many bytes have been passed on
	nCalled int
	nByte   int
}

// NewReader returns a reader that fails after nGood bytes.
func NewReader(rIn io.Reader, nGood int) *BrknRdr {
	return &BrknRdr{rdrOrig: rIn, nGood: nGood}
}

// Read passes through reads until we are at the limit. The read which
// crosses the limit is truncated and returns ErrBroken.
func (r *BrknRdr) Read(p []byte) (n int, err error) {
	r.nCalled++
	if r.nGood < 0 {
		n, err = r.rdrOrig.Read(p)
		r.nByte += n
		return n, err
	}
	left := r.nGood - r.nByte
	if left <= 0 {
		return 0, ErrBroken
	}
	if len(p) > left {
		p = p[:left]
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	if err == nil && r.nByte >= r.nGood {
		err = ErrBroken
	}
	return n, err
}

// String is handy in test failure messages.
func (r *BrknRdr) String() string {
	return fmt.Sprintf("%d calls and %d bytes, limit %d", r.nCalled, r.nByte, r.nGood)
}

// BrknWrtr is the writer wrapper. Writing to a full disk looks like this.
type BrknWrtr struct {
	wrtrOrig io.Writer
	nGood    int
	nByte    int
}

// NewWriter returns a writer that fails after nGood bytes.
func NewWriter(wIn io.Writer, nGood int) *BrknWrtr {
	return &BrknWrtr{wrtrOrig: wIn, nGood: nGood}
}

// Write writes as much as is allowed. If that is less than len(p), we
// return ErrBroken, as io.Writer requires.
func (w *BrknWrtr) Write(p []byte) (int, error) {
	if w.nGood < 0 {
		n, err := w.wrtrOrig.Write(p)
		w.nByte += n
		return n, err
	}
	left := w.nGood - w.nByte
	if left < 0 {
		left = 0
	}
	short := false
	if len(p) > left {
		p = p[:left]
		short = true
	}
	n, err := w.wrtrOrig.Write(p)
	w.nByte += n
	if err == nil && short {
		err = ErrBroken
	}
	return n, err
}
