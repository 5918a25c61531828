// 18 Oct 2026

package ppfilter_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/andrew-torda/ppfilter/pkg/filter"
	"github.com/andrew-torda/ppfilter/pkg/ppfilter"
	"github.com/andrew-torda/ppfilter/pkg/seq"
)

var errFull = errors.New("disk full")

// failAfter takes n bytes, then fails.
type failAfter struct{ n int }

func (w *failAfter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		k := w.n
		w.n = 0
		return k, errFull
	}
	w.n -= len(p)
	return len(p), nil
}

// Every report has to notice if its output went missing, including
// the header lines.
func TestReportWriteFail(t *testing.T) {
	seqgrp := seq.Str2SeqGrp([]string{"ACDEF", "GHIKL"})
	scores := [][]float32{{0.1, 0.9, 0.9, 0.9, 0.9}, {0.9, 0.9, 0.2, 0.9, 0.9}}
	if err := seqgrp.SetScores(scores); err != nil {
		t.Fatal(err)
	}
	res, err := filter.Run(seqgrp, &filter.Config{Mode: filter.Absolute(0.5), Logger: quiet})
	if err != nil {
		t.Fatal(err)
	}
	prof, err := seqgrp.PosProfile(3)
	if err != nil {
		t.Fatal(err)
	}

	writers := map[string]func(io.Writer) error{
		"detail":  func(w io.Writer) error { return ppfilter.WriteDetail(w, seqgrp) },
		"summary": func(w io.Writer) error { return ppfilter.WriteSummary(w, seqgrp, res.Stats) },
		"profile": func(w io.Writer) error { return ppfilter.WriteProfile(w, prof) },
	}
	for name, wrt := range writers {
		var full bytes.Buffer
		if err := wrt(&full); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		n := full.Len()
		for _, lim := range []int{0, 10, n / 2, n - 1} {
			if err := wrt(&failAfter{n: lim}); !errors.Is(err, errFull) {
				t.Errorf("%s: failing after %d of %d bytes gave %v", name, lim, n, err)
			}
		}
		if err := wrt(&failAfter{n: n}); err != nil {
			t.Errorf("%s: room for everything, but got %v", name, err)
		}
	}
}
