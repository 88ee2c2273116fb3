package mkdata_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/nucfile/pkg/mkdata"
)

// TestTable guards the fixed file names and sizes.
func TestTable(t *testing.T) {
	want := []mkdata.Target{
		{"random_nucleotides_10M_100Mb.txt", 10000000},
		{"random_nucleotides_200K_2Mb.txt", 200000},
		{"random_nucleotides_1M_10Mb.txt", 1000000},
		{"random_nucleotides_100K_1Mb.txt", 100000},
		{"random_nucleotides_1K_100Kb.txt", 1000},
	}
	if len(mkdata.Targets) != len(want) {
		t.Fatalf("got %d targets want %d", len(mkdata.Targets), len(want))
	}
	for i, w := range want {
		if mkdata.Targets[i] != w {
			t.Errorf("target %d got %+v want %+v", i, mkdata.Targets[i], w)
		}
	}
}

// TestMkData uses the smallest of the real targets plus a few of our own,
// so the test does not write 10 MB.
func TestMkData(t *testing.T) {
	dir := t.TempDir()
	var logbuf bytes.Buffer
	tgts := []mkdata.Target{
		mkdata.Targets[len(mkdata.Targets)-1],
		{"empty.txt", 0},
		{"tiny.txt", 5},
	}
	args := mkdata.Args{
		Dir:     dir,
		Iseed:   1637,
		Logger:  log.New(&logbuf, "", 0),
		Targets: tgts,
	}
	if err := mkdata.MkData(&args); err != nil {
		t.Fatal(err)
	}
	for _, tgt := range tgts {
		fi, err := os.Stat(filepath.Join(dir, tgt.Fname))
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() != int64(tgt.Len+1) {
			t.Errorf("%s size got %d want %d", tgt.Fname, fi.Size(), tgt.Len+1)
		}
	}
	if n := strings.Count(logbuf.String(), "writing"); n != len(tgts) {
		t.Errorf("got %d log lines about writing, want %d", n, len(tgts))
	}
}

func TestSeeded(t *testing.T) {
	read := func(dir string) string {
		b, err := os.ReadFile(filepath.Join(dir, "tiny.txt"))
		if err != nil {
			t.Fatal(err)
		}
		return string(b)
	}
	tgts := []mkdata.Target{{"tiny.txt", 50}}
	d1, d2 := t.TempDir(), t.TempDir()
	for _, d := range []string{d1, d2} {
		if err := mkdata.MkData(&mkdata.Args{Dir: d, Iseed: 99, Targets: tgts}); err != nil {
			t.Fatal(err)
		}
	}
	if read(d1) != read(d2) {
		t.Error("same seed gave different files")
	}
}

func TestBadDir(t *testing.T) {
	args := mkdata.Args{
		Dir:     filepath.Join(t.TempDir(), "not", "there"),
		Targets: []mkdata.Target{{"a.txt", 10}},
	}
	if err := mkdata.MkData(&args); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
