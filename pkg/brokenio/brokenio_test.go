package brokenio_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/ppfilter/pkg/brokenio"
)

var tochop = [][]byte{
	[]byte("a"),
	[]byte("abc"),
	[]byte("abcdefghij"),
	[]byte("abcdefghijklmn"),
}

var longstring = "0123456789012345678901234567890123456789"

// testFrac - wipe out different fractions of the input buffer.
func testFrac(t *testing.T, inb []byte, frac float32) {
	s := make([]byte, len(inb)+10) // longer than the data
	rdr := brokenio.NewReader(io.NopCloser(bytes.NewReader(inb)))
	rdr.SetProbFail(1)
	rdr.SetFracFail(frac)
	n, err := rdr.Read(s)
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Fatalf("wanted ErrBroken, got %v", err)
	}
	if !bytes.Equal(s[:n], inb[:n]) {
		t.Error("contents of strings changed with string", string(inb), "frac", frac)
	}
	want := int(float32(len(inb)) * (1 - frac))
	if n != want {
		t.Errorf("frac %g on \"%s\" kept %d wanted %d", frac, inb, n, want)
	}
	if nNul := bytes.Count(s[n:len(inb)], []byte{0}); nNul != len(inb)-n {
		t.Errorf("expected %d nulls after the kept part, got %d", len(inb)-n, nNul)
	}
}

// TestTrashing takes strings and removes parts of them
func TestTrashing(t *testing.T) {
	fracs := [3]float32{0, 0.3, 1}
	for _, frac := range fracs {
		for _, inb := range tochop {
			testFrac(t, inb, frac)
		}
	}
}

func forZeroFile(prob float32) (n int, err error) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
	rdr.SetProbZeroFile(prob)
	tmp := make([]byte, len(longstring))
	n, err = rdr.Read(tmp)
	rdr.Close()
	return n, err
}

func TestZeroFile(t *testing.T) {
	n, err := forZeroFile(1)
	if n > 0 {
		t.Error("should have received zero bytes")
	}
	if err != io.EOF {
		t.Errorf("Should have recieved EOF")
	}
	n, err = forZeroFile(0)
	if n < len(longstring) {
		t.Error("Wanted", len(longstring), "got", n)
	}
	if err != nil {
		t.Errorf("err reading from string")
	}
}

func TestReaderSimple(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
	rdr.SetProbFail(0)
	s := make([]byte, len(longstring))
	if rdr.Read(s); string(s) != longstring {
		t.Errorf("simple read fail got %q wanted %q", s, longstring)
	}
}

func Example_setVerbose() {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
	rdr.SetVerbose(true)
	tmp := make([]byte, len(longstring))
	rdr.Read(tmp)
	rdr.Close()
	// Output: Closing 1 calls and 40 bytes
}

// TestClose - check if the reader really is calling the correct close method.
func TestClose(t *testing.T) {
	f, err := os.CreateTemp("", "testclose_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	if n, err := f.Write([]byte(longstring)); n != len(longstring) {
		t.Fatal("Writing temp file failed", err)
	}
	f.Close()
	fp, err := os.Open(f.Name())
	if err != nil {
		t.Fatal("reading from tempfile, err = ", err)
	}
	rdr := brokenio.NewReader(fp)
	s := make([]byte, len(longstring))
	if n, err := rdr.Read(s); n != len(longstring) || err != nil {
		t.Error("Failed reading from tempfile, n, err = ", n, err)
	}
	if err = rdr.Close(); err != nil {
		t.Error("failed on close of reader")
	}
	if err = fp.Close(); err == nil {
		t.Error("file was not closed by the wrapper")
	}
}
