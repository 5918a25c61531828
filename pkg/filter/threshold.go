// 14 Oct 2026

package filter

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/andrew-torda/ppfilter/pkg/seq"
	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

// Mode says how the threshold is found. Either it is given directly or
// it is chosen so that a proportion of all residues is kept.
type Mode struct {
	retain bool
	value  float32
}

// Absolute uses t as the threshold.
func Absolute(t float32) Mode { return Mode{value: t} }

// Retain picks the threshold so that a fraction p of residues, over
// all sequences, score at or above it.
func Retain(p float32) Mode { return Mode{retain: true, value: p} }

// IsRetain is true for a mode made by Retain.
func (m Mode) IsRetain() bool { return m.retain }

// Value is the threshold or proportion the mode was made with.
func (m Mode) Value() float32 { return m.value }

func (m Mode) String() string {
	if m.retain {
		return fmt.Sprintf("retain %.4g", m.value)
	}
	return fmt.Sprintf("threshold %.4g", m.value)
}

// inRange is false for NaN as well as things outside [0,1].
func inRange(x float32) bool { return x >= 0 && x <= 1 }

// sortedScores gathers every score from every sequence and sorts them.
func sortedScores(seqgrp *seq.SeqGrp) []float32 {
	all := make([]float32, 0, seqgrp.TotalLen())
	for i := range seqgrp.SeqSlc() {
		all = append(all, seqgrp.SeqSlc()[i].Scores()...)
	}
	slices.Sort(all)
	return all
}

// decimal turns a proportion back into the number someone typed.
// float32(0.1) is a little more than 0.1 and would otherwise cost a
// whole rank on a long corpus.
func decimal(p float32) float64 {
	d, _ := strconv.ParseFloat(strconv.FormatFloat(float64(p), 'g', -1, 32), 64)
	return d
}

// cutAt returns the score at rank floor((1-p) * n). The small
// constant stops 1-0.9 = 0.0999.. from losing a whole rank. p = 0
// would point one past the end, so we stop at the biggest score.
func cutAt(sorted []float32, p float64) float32 {
	const eps = 1e-9
	n := len(sorted)
	rank := int(math.Floor((1-p)*float64(n) + eps))
	if rank >= n {
		rank = n - 1
	}
	return sorted[rank]
}

// SelectThreshold returns the threshold to be used for masking.
func SelectThreshold(seqgrp *seq.SeqGrp, m Mode) (float32, error) {
	if !inRange(m.value) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidThreshold, m)
	}
	if !m.retain {
		return m.value, nil
	}
	sorted := sortedScores(seqgrp)
	if len(sorted) == 0 {
		return 0, ErrEmptyCorpus
	}
	return cutAt(sorted, decimal(m.value)), nil
}

// Cutoff is one rung of the ladder from CutoffLadder.
type Cutoff struct {
	Retain    float32 // proportion kept
	Threshold float32 // the score that would give it
}

// CutoffLadder lists the thresholds that would keep 100 %, 99 %, ...
// down to 75 % of the residues. It is only there to help people pick
// a value.
func CutoffLadder(seqgrp *seq.SeqGrp) ([]Cutoff, error) {
	const top, bottom = 100, 75
	sorted := sortedScores(seqgrp)
	if len(sorted) == 0 {
		return nil, ErrEmptyCorpus
	}
	ladder := make([]Cutoff, 0, top-bottom+1)
	for i := top; i >= bottom; i-- { // integers so we do not drift
		p := float64(i) / 100
		ladder = append(ladder, Cutoff{Retain: float32(p), Threshold: cutAt(sorted, p)})
	}
	return ladder, nil
}
