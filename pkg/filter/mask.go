package filter

import (
	"fmt"

	"github.com/andrew-torda/ppfilter/pkg/seq"
	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

// checkScored makes sure every sequence has its scores, so the stages
// can index the masks without looking.
func checkScored(seqgrp *seq.SeqGrp) error {
	for i := range seqgrp.SeqSlc() {
		s := &seqgrp.SeqSlc()[i]
		if len(s.Scores()) != s.Len() || len(s.Removed()) != s.Len() {
			return &SeqError{Ndx: i, Name: s.GeneId(),
				Err: fmt.Errorf("%w: no scores attached", ErrDimensionMismatch)}
		}
	}
	return nil
}

// maskOne marks residues scoring below t. It only ever sets the mask,
// so running it again after the other stages changes nothing.
func maskOne(s *seq.Seq, t float32) int {
	n := 0
	removed := s.Removed()
	for j, v := range s.Scores() {
		if v < t && !removed[j] {
			removed[j] = true
			n++
		}
	}
	return n
}

// ApplyThreshold marks every residue with a score strictly below t as
// removed. A score equal to t is kept. It returns the number of
// residues newly marked.
func ApplyThreshold(seqgrp *seq.SeqGrp, t float32) (int, error) {
	return applyThreshold(seqgrp, t, 1)
}

func applyThreshold(seqgrp *seq.SeqGrp, t float32, nproc int) (int, error) {
	if !inRange(t) {
		return 0, fmt.Errorf("%w: %g", ErrInvalidThreshold, t)
	}
	if err := checkScored(seqgrp); err != nil {
		return 0, err
	}
	return forEach(seqgrp, nproc, func(s *seq.Seq) int { return maskOne(s, t) }), nil
}
