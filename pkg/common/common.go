// 29 Apr 2020
// 19 Oct 2026 moved out of the seq package, added the alphabet.

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Bases is the nucleotide alphabet. The order is the one used for
// indexing counts everywhere in this module.
const Bases = "ATCG"

// NBase is the size of the alphabet.
const NBase = len(Bases)

var baseNdx = [256]int8{}

func init() {
	for i := range baseNdx {
		baseNdx[i] = -1
	}
	for i := 0; i < NBase; i++ {
		baseNdx[Bases[i]] = int8(i)
	}
}

// BaseNdx returns the position of c in Bases or -1 if c is not a
// nucleotide. Only upper case is accepted.
func BaseNdx(c byte) int { return int(baseNdx[c]) }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	name := f_tmp.Name()
	if err := f_tmp.Close(); err != nil {
		return "", err
	}
	return name, nil
}
