package common_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

func TestSeqErrorUnwrap(t *testing.T) {
	var err error = &SeqError{Ndx: 3, Name: "s3", Err: ErrEmptySequence}
	err = fmt.Errorf("summary: %w", err)
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatal("wrapped SeqError lost its sentinel")
	}
	var se *SeqError
	if !errors.As(err, &se) {
		t.Fatal("errors.As did not find SeqError")
	}
	if se.Ndx != 3 {
		t.Fatalf("got index %d wanted 3", se.Ndx)
	}
	if !strings.Contains(err.Error(), "s3") {
		t.Fatalf("message \"%s\" does not name the sequence", err)
	}
}

func TestWrtTemp(t *testing.T) {
	fname, err := WrtTemp(">s1\nacgt\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if b, err := os.ReadFile(fname); err != nil || string(b) != ">s1\nacgt\n" {
		t.Fatalf("WrtTemp file holds \"%s\", err %v", b, err)
	}
}
