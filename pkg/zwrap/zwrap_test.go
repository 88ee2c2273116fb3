package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/nucfile/pkg/zwrap"
	"github.com/golang/snappy"
)

const content = "NACGT\n>header\nNTTGG\n"

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := io.WriteString(zw, s); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func snappied(t *testing.T, s string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := snappy.NewBufferedWriter(&b)
	if _, err := io.WriteString(zw, s); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func TestWrap(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		kind zwrap.Kind
	}{
		{"plain", []byte(content), zwrap.Plain},
		{"gzip", gzipped(t, content), zwrap.Gzip},
		{"snappy", snappied(t, content), zwrap.Snappy},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fz, err := zwrap.Wrap(io.NopCloser(bytes.NewReader(c.in)))
			if err != nil {
				t.Fatal(err)
			}
			defer fz.Close()
			if fz.Kind() != c.kind {
				t.Errorf("kind got %v want %v", fz.Kind(), c.kind)
			}
			got, err := io.ReadAll(fz)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != content {
				t.Errorf("got %q want %q", got, content)
			}
		})
	}
}

// TestShort checks files shorter than the magic number, including empty.
func TestShort(t *testing.T) {
	for _, s := range []string{"", "N", "\x1f", "NA\n"} {
		fz, err := zwrap.Wrap(io.NopCloser(strings.NewReader(s)))
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		got, err := io.ReadAll(fz)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != s {
			t.Errorf("got %q want %q", got, s)
		}
	}
}

func TestBrokenGzip(t *testing.T) {
	in := []byte{0x1f, 0x8b, 0, 0}
	if _, err := zwrap.Wrap(io.NopCloser(bytes.NewReader(in))); err == nil {
		t.Fatal("expected error from truncated gzip header")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "in.gz")
	if err := os.WriteFile(fname, gzipped(t, content), 0o644); err != nil {
		t.Fatal(err)
	}
	fz, err := zwrap.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(fz)
	if err != nil {
		t.Fatal(err)
	}
	if err := fz.Close(); err != nil {
		t.Fatal("close", err)
	}
	if string(got) != content {
		t.Errorf("got %q want %q", got, content)
	}

	_, err = zwrap.Open(filepath.Join(dir, "not_there"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want fs.ErrNotExist, got %v", err)
	}
}
