package filter

import (
	"fmt"

	"github.com/andrew-torda/ppfilter/pkg/seq"
	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

// Stats summarises a filtered group of sequences.
type Stats struct {
	NSeq     int // sequences we started with
	NSeqKept int // sequences with something left
	NRes     int // residues we started with
	NResKept int // residues not removed, all of them for ignored sequences

	MeanRemoved   float64 // mean over sequences of the fraction removed
	MaxRemoved    float64
	MaxRemovedNdx int // first sequence with MaxRemoved
	MeanInCore    float64
	MinInCore     float64
	MinInCoreNdx  int // first sequence with MinInCore
}

// Summarize sets the proportion removed and in the core for each
// sequence and gathers them up. Sequences for which ignore(comment) is
// true count as fully kept in NResKept, unless everything in them was
// removed, since those are never written. ignore may be nil.
// A zero length sequence is an error, rather than 0/0.
func Summarize(seqgrp *seq.SeqGrp, ignore func(string) bool) (*Stats, error) {
	seqs := seqgrp.SeqSlc()
	if len(seqs) == 0 {
		return nil, ErrEmptyCorpus
	}
	for i := range seqs {
		if seqs[i].Empty() {
			return nil, &SeqError{Ndx: i, Name: seqs[i].GeneId(), Err: ErrEmptySequence}
		}
	}
	if err := checkScored(seqgrp); err != nil {
		return nil, err
	}

	st := &Stats{NSeq: len(seqs)}
	for i := range seqs {
		s := &seqs[i]
		n := float64(s.Len())
		nRmv := s.NRemoved()
		s.SetProps(float64(nRmv)/n, float64(s.NInCore())/n)

		st.NRes += s.Len()
		if !s.AllRemoved() {
			st.NSeqKept++
			if ignore != nil && ignore(s.GetCmmt()) {
				st.NResKept += s.Len()
			} else {
				st.NResKept += s.Len() - nRmv
			}
		}
		st.MeanRemoved += s.PropRemoved()
		st.MeanInCore += s.PropInCore()
		if i == 0 || s.PropRemoved() > st.MaxRemoved {
			st.MaxRemoved, st.MaxRemovedNdx = s.PropRemoved(), i
		}
		if i == 0 || s.PropInCore() < st.MinInCore {
			st.MinInCore, st.MinInCoreNdx = s.PropInCore(), i
		}
	}
	st.MeanRemoved /= float64(len(seqs))
	st.MeanInCore /= float64(len(seqs))
	return st, nil
}

// String gives a one line version for logging.
func (st *Stats) String() string {
	return fmt.Sprintf("%d of %d sequences, %d of %d residues kept", st.NSeqKept, st.NSeq, st.NResKept, st.NRes)
}
