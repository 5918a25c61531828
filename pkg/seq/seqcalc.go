// 6 Apr 2020
// seqcalc does simple, common calculations on a set of sequences.
// The functions have to live in this package, since they
// need access to the internals of a sequence

package seq

import (
	"fmt"

	"github.com/andrew-torda/matrix"
)

// Rows of the matrix returned by PosProfile.
const (
	ProfScore   = iota // mean confidence score
	ProfRemoved        // fraction of residues removed
	ProfInCore         // fraction of residues in the core
	nProfRow
)

// SetSymUsed fills out the bool slice which says whether or not a
// symbol was used.
func (seqgrp *SeqGrp) SetSymUsed() {
	for i := range seqgrp.symUsed {
		seqgrp.symUsed[i] = false
	}
	for i := range seqgrp.seqs {
		for _, c := range seqgrp.seqs[i].seq {
			if c < MaxSym {
				seqgrp.symUsed[c] = true
			}
		}
	}
	seqgrp.usedKnwn = true
}

// GetSymUsed returns the normally non-exported symUsed
func (seqgrp *SeqGrp) GetSymUsed() [MaxSym]bool {
	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	return seqgrp.symUsed
}

// GetType looks at a set of sequences and returns its best guess
// as to the type of file. Call Upper() first. Lower case letters
// are not looked at.
func (seqgrp *SeqGrp) GetType() SeqType {
	if seqgrp.stype != Unchecked { // If the sequence type has been
		return seqgrp.stype //      set, just return it.
	}

	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	protType := []byte{
		'D', 'E', 'F', 'H', 'I', 'K', 'L', 'M',
		'N', 'P', 'Q', 'R', 'S', 'V', 'W', 'Y'}

	used := seqgrp.symUsed
	seqgrp.stype = Unknown
	for _, c := range protType { // If we see an amino acid code,
		if used[c] { //          just return protein type.
			seqgrp.stype = Protein
			return seqgrp.stype
		}
	}

	switch {
	case used['T'] && used['U']:
		seqgrp.stype = Ntide
	case used['A'] && used['C'] && used['G'] && !used['T'] && !used['U']:
		seqgrp.stype = Ntide // cannot tell if it is RNA or DNA
	case used['T']:
		seqgrp.stype = DNA
	case used['U']:
		seqgrp.stype = RNA
	}
	return seqgrp.stype
}

// PosProfile looks at where along the sequences residues are removed.
// Sequences are different lengths, so each position is put into one of
// nbin bins by its relative position. Row ProfScore gets the mean score
// in each bin, ProfRemoved the fraction removed and ProfInCore the
// fraction in the core. Sequences without scores are skipped, so are
// bins with nothing in them, which stay at zero.
func (seqgrp *SeqGrp) PosProfile(nbin int) (*matrix.FMatrix2d, error) {
	if nbin < 1 {
		return nil, fmt.Errorf("PosProfile: need at least one bin, got %d", nbin)
	}
	prof := matrix.NewFMatrix2d(nProfRow, nbin)
	count := make([]float32, nbin)
	for i := range seqgrp.seqs {
		s := &seqgrp.seqs[i]
		n := len(s.pp)
		for j, v := range s.pp {
			ibin := (j * nbin) / n
			count[ibin]++
			prof.Mat[ProfScore][ibin] += v
			if s.removed[j] {
				prof.Mat[ProfRemoved][ibin]++
			}
			if s.inCore[j] {
				prof.Mat[ProfInCore][ibin]++
			}
		}
	}
	for irow := 0; irow < nProfRow; irow++ {
		for ibin, c := range count {
			if c != 0 {
				prof.Mat[irow][ibin] /= c
			}
		}
	}
	return prof, nil
}
