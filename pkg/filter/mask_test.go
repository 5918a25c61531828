// 16 Oct 2026

package filter_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/ppfilter/pkg/filter"
	"github.com/andrew-torda/ppfilter/pkg/seq"
	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

const (
	T = true
	F = false
)

// bools turns a string like "T..TT" into a mask.
func bools(s string) []bool {
	b := make([]bool, len(s))
	for i, c := range s {
		b[i] = c == 'T'
	}
	return b
}

func TestStrict(t *testing.T) {
	seqgrp := mkGrp(t, []float32{0.5, 0.49, 0.51, 0.5})
	n, err := filter.ApplyThreshold(seqgrp, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("removed %d want 1", n)
	}
	if diff := cmp.Diff([]bool{F, T, F, F}, seqgrp.SeqSlc()[0].Removed()); diff != "" {
		t.Errorf("mask (-want +got)\n%s", diff)
	}
}

func TestMaskIdempotent(t *testing.T) {
	seqgrp := mkGrp(t, []float32{0.1, 0.9, 0.2}, []float32{0.3, 0.3})
	if n, _ := filter.ApplyThreshold(seqgrp, 0.5); n != 4 {
		t.Errorf("first pass removed %d want 4", n)
	}
	if n, _ := filter.ApplyThreshold(seqgrp, 0.5); n != 0 {
		t.Errorf("second pass removed %d want 0", n)
	}
	if n, _ := filter.ApplyThreshold(seqgrp, 0.2); n != 0 { // lower never un-masks
		t.Errorf("lower threshold removed %d want 0", n)
	}
	if r := seqgrp.SeqSlc()[0].Removed(); !r[0] || r[1] || !r[2] {
		t.Errorf("mask changed to %v", r)
	}
}

// Whatever goes at a low threshold also goes at a higher one.
func TestMaskMonotonic(t *testing.T) {
	lo, hi := randGrp(t, 7, 10), randGrp(t, 7, 10)
	if _, err := filter.ApplyThreshold(lo, 0.6); err != nil {
		t.Fatal(err)
	}
	if _, err := filter.ApplyThreshold(hi, 0.95); err != nil {
		t.Fatal(err)
	}
	for i := range lo.SeqSlc() {
		rlo, rhi := lo.SeqSlc()[i].Removed(), hi.SeqSlc()[i].Removed()
		for j := range rlo {
			if rlo[j] && !rhi[j] {
				t.Fatalf("seq %d pos %d removed at 0.6 but not at 0.95", i, j)
			}
		}
	}
}

func TestMaskErrors(t *testing.T) {
	seqgrp := mkGrp(t, []float32{0.5})
	if _, err := filter.ApplyThreshold(seqgrp, 1.5); !errors.Is(err, ErrInvalidThreshold) {
		t.Errorf("want ErrInvalidThreshold got %v", err)
	}
	bare := seq.Str2SeqGrp([]string{"ACD", "EFG"})
	_, err := filter.ApplyThreshold(bare, 0.5)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("no scores should give ErrDimensionMismatch, got %v", err)
	}
	var serr *SeqError
	if !errors.As(err, &serr) || serr.Ndx != 0 {
		t.Errorf("want a SeqError for sequence 0, got %v", err)
	}
}

func TestExtendScenario(t *testing.T) {
	seqgrp := mkGrp(t, []float32{0.1, 0.9, 0.9, 0.1, 0.1, 0.9, 0.9, 0.9, 0.1, 0.9, 0.9, 0.9})
	filter.ApplyThreshold(seqgrp, 0.5)
	want := bools("T..TT...T...")
	if diff := cmp.Diff(want, seqgrp.SeqSlc()[0].Removed()); diff != "" {
		t.Fatalf("after threshold (-want +got)\n%s", diff)
	}
	if n := filter.ExtendRegions(seqgrp, 3); n != 0 {
		t.Errorf("gap of 3 is not < 3, but got %d joins", n)
	}
	if diff := cmp.Diff(want, seqgrp.SeqSlc()[0].Removed()); diff != "" {
		t.Errorf("maxGap 3 changed mask (-want +got)\n%s", diff)
	}
	if n := filter.ExtendRegions(seqgrp, 4); n != 1 {
		t.Errorf("maxGap 4 should join 0 and 3 once, got %d", n)
	}
	if diff := cmp.Diff(bools("TTTTT...T..."), seqgrp.SeqSlc()[0].Removed()); diff != "" {
		t.Errorf("maxGap 4 (-want +got)\n%s", diff)
	}
}

func TestExtendOne(t *testing.T) {
	tests := []struct {
		in, want string
		maxGap   int
		nJoin    int
	}{
		{"T.T.....", "TTT.....", 3, 1},
		{"TT......", "TT......", 5, 0}, // adjacent, gap 1
		{"T...T...", "T...T...", 4, 0}, // gap 4 is not < 4
		{"T...T...", "TTTTT...", 5, 1},
		{"...T....", ".TTT....", 10, 1}, // compared with 0, not marked
		{".T......", ".T......", 10, 0},
		{"..T.T.T.", ".TTTTTT.", 3, 3},
		{"........", "........", 10, 0},
	}
	for _, tt := range tests {
		r := bools(tt.in)
		n := filter.ExtendOne(r, tt.maxGap)
		if n != tt.nJoin {
			t.Errorf("%s maxGap %d: %d joins want %d", tt.in, tt.maxGap, n, tt.nJoin)
		}
		if diff := cmp.Diff(bools(tt.want), r); diff != "" {
			t.Errorf("%s maxGap %d (-want +got)\n%s", tt.in, tt.maxGap, diff)
		}
	}
}

func TestExtendOff(t *testing.T) {
	seqgrp := mkGrp(t, []float32{0.1, 0.9, 0.1})
	filter.ApplyThreshold(seqgrp, 0.5)
	for _, g := range []int{0, -3} {
		if n := filter.ExtendRegions(seqgrp, g); n != 0 {
			t.Errorf("maxGap %d should do nothing, got %d", g, n)
		}
	}
	if seqgrp.SeqSlc()[0].Removed()[1] {
		t.Errorf("middle residue removed with extension off")
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name            string
		in              string
		run             int
		removed, inCore string
		nFront, nBack   int
	}{
		{"front", "..T.......", 5, ".TT.......", "T..TTTTTTT", 1, 0},
		{"front with 0", "T..T......", 5, "TTTT......", "....TTTTTT", 1, 0},
		{"back", ".......T..", 5, ".......TTT", "TTTTTTT...", 0, 1},
		{"both", ".T......T.", 3, ".T......TT", "T.TTTTTT..", 1, 1},
		{"outside window", "......T...", 3, "......T...", "TTTTTTTTTT", 0, 0},
		{"short", ".T.", 25, ".TT", "T..", 1, 1},
		{"nothing", "....", 2, "....", "TTTT", 0, 0},
		{"all", "TTTT", 2, "TTTT", "....", 1, 1},
	}
	for _, tt := range tests {
		removed := bools(tt.in)
		inCore := make([]bool, len(tt.in))
		for i := range inCore {
			inCore[i] = true
		}
		nf := filter.TrimFront(removed, inCore, tt.run)
		nb := filter.TrimBack(removed, inCore, tt.run)
		if nf != tt.nFront || nb != tt.nBack {
			t.Errorf("%s: trimmed front %d back %d, want %d %d", tt.name, nf, nb, tt.nFront, tt.nBack)
		}
		if diff := cmp.Diff(bools(tt.removed), removed); diff != "" {
			t.Errorf("%s removed (-want +got)\n%s", tt.name, diff)
		}
		if diff := cmp.Diff(bools(tt.inCore), inCore); diff != "" {
			t.Errorf("%s inCore (-want +got)\n%s", tt.name, diff)
		}
	}
}

func TestTrimEdges(t *testing.T) {
	seqgrp := mkGrp(t,
		[]float32{0.9, 0.1, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.1, 0.9},
		[]float32{0.9, 0.9, 0.9, 0.9, 0.9, 0.9},
		[]float32{0.9, 0.9, 0.9, 0.9, 0.1, 0.9})
	filter.ApplyThreshold(seqgrp, 0.5)
	if n := filter.TrimEdges(seqgrp, 0); n != 0 {
		t.Errorf("run 0 should do nothing, got %d", n)
	}
	if n := filter.TrimEdges(seqgrp, 3); n != 3 {
		t.Errorf("want 3 ends trimmed, got %d", n)
	}
	s := seqgrp.SeqSlc()
	if s[1].NInCore() != 6 || s[1].NRemoved() != 0 {
		t.Errorf("clean sequence was touched: %v %v", s[1].Removed(), s[1].InCore())
	}
	if diff := cmp.Diff(bools("TTTT.."), s[2].InCore()); diff != "" {
		t.Errorf("inCore (-want +got)\n%s", diff)
	}
}
