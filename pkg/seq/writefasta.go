// 15 Oct 2026
// Writing filtered sequences. The fasta formatting is left to biogo.

package seq

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

const cPerLine = 60

// WrtOpts controls WriteFiltered.
type WrtOpts struct {
	Mask   byte              // replaces removed residues, MaskChar if zero
	Ignore func(string) bool // matching sequences are written unfiltered
	Width  int               // residues per line, cPerLine if zero
}

// WrtCount says how much went in and how much came out.
type WrtCount struct {
	NSeqIn, NSeqOut int
	NResIn, NResOut int   // residues, not counting masked ones on output
	Dropped         []int // indices of fully removed sequences
}

// WriteFiltered writes each sequence with removed residues masked.
// Sequences where everything was removed are not written at all.
// Sequences for which wopts.Ignore is true are written as they came in.
func WriteFiltered(w io.Writer, seqgrp *SeqGrp, wopts *WrtOpts) (WrtCount, error) {
	var cnt WrtCount
	mask, width := wopts.Mask, wopts.Width
	if mask == 0 {
		mask = MaskChar
	}
	if width == 0 {
		width = cPerLine
	}
	fw := fasta.NewWriter(w, width)
	for i := range seqgrp.seqs {
		s := &seqgrp.seqs[i]
		cnt.NSeqIn++
		cnt.NResIn += s.Len()
		if s.AllRemoved() {
			cnt.Dropped = append(cnt.Dropped, i)
			continue
		}
		var b []byte
		if wopts.Ignore != nil && wopts.Ignore(s.GetCmmt()) {
			b = s.GetSeq()
			cnt.NResOut += len(b)
		} else {
			b = s.Masked(mask)
			cnt.NResOut += len(b) - s.NRemoved()
		}
		// biogo writes the letters as they are, so the alphabet does not
		// matter.
		ls := linear.NewSeq(s.GetCmmt(), alphabet.BytesToLetters(b), alphabet.Protein)
		if _, err := fw.Write(ls); err != nil {
			return cnt, fmt.Errorf("writing sequence %d: %w", i, err)
		}
		cnt.NSeqOut++
	}
	return cnt, nil
}
