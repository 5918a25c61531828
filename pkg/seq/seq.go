// 20 Dec 2017

// Package seq provides functions for sequences,
// which usually begin their lives in fasta format. It can
// read and write them.
//
// Each sequence carries, next to its residues, one confidence score per
// residue and two annotations, removed and inCore. The scores come from
// outside (a pair-HMM) and are set once. The annotations are written by
// the filter stages, in order, and then read by whoever writes output.
package seq

import (
	"fmt"
	"strings"

	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

// Seq is one sequence with its scores and masks.
type Seq struct {
	cmmt        string
	seq         []byte
	pp          []float32 // confidence score of each residue
	removed     []bool    // residue will be masked on output
	inCore      []bool    // residue is not in a trimmed end
	propRemoved float64
	propInCore  float64
}

// A marker to say what type of sequence we have, protein, DNA, ...
type SeqType byte

const (
	Unchecked SeqType = iota // Has not been looked at yet
	Unknown                  // Really unknown, not a protein or nucleotide
	Protein                  //
	DNA                      //
	RNA                      //
	Ntide                    // Nucleotide
)

var typeNames = [...]string{"unchecked", "unknown", "protein", "DNA", "RNA", "nucleotide"}

func (t SeqType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("SeqType(%d)", t)
}

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

// Options contains all the choices passed in from the caller.
type Options struct {
	DiffLenSeq bool // false, unless we expect sequences to be different lengths
	RmvGapsRd  bool // Remove gaps upon reading
}

// Constants
const cmmtChar byte = '>' // and this introduces comments in fasta format

// SeqGrp is a group of sequences, with some additional information
// such as what type (protein, nucleotide) and the symbols
// that have been used. Order matters. Indices into a SeqGrp are used
// for reporting.
type SeqGrp struct {
	symUsed  [MaxSym]bool // which symbols are actually used
	seqs     []Seq
	stype    SeqType
	usedKnwn bool // Do we know how many symbols are used ?
}

// Function GetSeq returns the sequence as the original byte slice
func (s *Seq) GetSeq() []byte { return s.seq }

// Function GetCmmt returns the comment, without the leading ">"
func (s *Seq) GetCmmt() string { return s.cmmt }

// Function Len
func (s *Seq) Len() int { return len(s.seq) }

// SetSeq will replace whatever was the sequence with a new one.
// Scores and masks no longer fit, so they are dropped.
func (s *Seq) SetSeq(t []byte) {
	s.seq = t
	s.pp, s.removed, s.inCore = nil, nil, nil
}

// Empty returns true if a sequence has no residues.
func (s *Seq) Empty() bool { return len(s.seq) == 0 }

// GeneId returns the gene identifier for a sequence.
// Of course it does not really do that. It just returns the first
// word in the comment which is likely to be the gene identifier.
func (s *Seq) GeneId() string {
	tmp := strings.Fields(s.cmmt)
	if len(tmp) == 0 {
		return ""
	}
	return tmp[0]
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It can return an error if it encounters a symbol it does
// not like (value higher than 127).
func (s *Seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	b := s.seq
	for i, c := range b {
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			b[i] -= diff
		}
	}
	return nil
}

// Scores returns the confidence scores. nil until SetScores was called.
func (s *Seq) Scores() []float32 { return s.pp }

// Removed returns the removal mask. The filter stages write straight
// into it.
func (s *Seq) Removed() []bool { return s.removed }

// InCore returns the core mask, true for residues not in a trimmed end.
func (s *Seq) InCore() []bool { return s.inCore }

// checkScores wants one score per residue, each in [0,1].
func (s *Seq) checkScores(pp []float32) error {
	if len(pp) != len(s.seq) {
		return fmt.Errorf("%w: %d scores for %d residues", ErrDimensionMismatch, len(pp), len(s.seq))
	}
	for i, v := range pp {
		if v < 0 || v > 1 || v != v { // v != v catches NaN
			return fmt.Errorf("%w: %g at position %d", ErrBadScore, v, i)
		}
	}
	return nil
}

// setScores attaches scores and fresh masks. Nothing removed,
// everything in the core.
func (s *Seq) setScores(pp []float32) {
	s.pp = pp
	s.removed = make([]bool, len(pp))
	s.inCore = make([]bool, len(pp))
	for i := range s.inCore {
		s.inCore[i] = true
	}
	s.propRemoved, s.propInCore = 0, 1
}

// NRemoved counts removed residues.
func (s *Seq) NRemoved() (n int) {
	for _, r := range s.removed {
		if r {
			n++
		}
	}
	return n
}

// NInCore counts residues in the core.
func (s *Seq) NInCore() (n int) {
	for _, r := range s.inCore {
		if r {
			n++
		}
	}
	return n
}

// SetProps stores the proportions the summary calculation found.
func (s *Seq) SetProps(propRemoved, propInCore float64) {
	s.propRemoved, s.propInCore = propRemoved, propInCore
}

// PropRemoved is only meaningful after the summary has been calculated.
func (s *Seq) PropRemoved() float64 { return s.propRemoved }

// PropInCore is only meaningful after the summary has been calculated.
func (s *Seq) PropInCore() float64 { return s.propInCore }

// AllRemoved is true if there is nothing left to write out. Such a
// sequence is dropped from the filtered output, but still counted
// amongst the originals.
func (s *Seq) AllRemoved() bool {
	if len(s.removed) == 0 {
		return false
	}
	return s.NRemoved() == len(s.removed)
}

// Masked returns a copy of the sequence with removed residues replaced
// by c.
func (s *Seq) Masked(c byte) []byte {
	b := make([]byte, len(s.seq))
	copy(b, s.seq)
	for i, r := range s.removed {
		if r {
			b[i] = c
		}
	}
	return b
}

// String returns a sequence, with its comment at the start as
// a single string
func (s *Seq) String() (t string) {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, s.cmmt, s.seq)
}

// GetLen returns the length of the first sequence.
// If we are reading a multiple sequence alignment, this should be the length
// of all sequences.
func (seqgrp *SeqGrp) GetLen() int { return len(seqgrp.seqs[0].seq) }

// TotalLen is the number of residues over all sequences.
func (seqgrp *SeqGrp) TotalLen() (n int) {
	for i := range seqgrp.seqs {
		n += len(seqgrp.seqs[i].seq)
	}
	return n
}

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc return the slice of sequences. Range over it by index if you
// want to change anything, since ranging by value gives you copies.
func (seqgrp *SeqGrp) SeqSlc() []Seq { return seqgrp.seqs }

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	seqgrp.usedKnwn, seqgrp.stype = false, Unchecked
	return nil
}

// SetScores attaches one row of confidence scores to each sequence and
// resets the masks. The matrix must have one row per sequence and each
// row must be as long as its sequence. Nothing is changed if there is
// an error.
func (seqgrp *SeqGrp) SetScores(pp [][]float32) error {
	if len(pp) != len(seqgrp.seqs) {
		return fmt.Errorf("%w: %d rows of scores for %d sequences",
			ErrDimensionMismatch, len(pp), len(seqgrp.seqs))
	}
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].checkScores(pp[i]); err != nil {
			return &SeqError{Ndx: i, Name: trimStr(seqgrp.seqs[i].cmmt, 40), Err: err}
		}
	}
	for i := range seqgrp.seqs {
		seqgrp.seqs[i].setScores(pp[i])
	}
	return nil
}

// checkLengths should only be called if we are keeping
// gaps. Then we imagine all the sequences are aligned, so they
// must be the same length.
func (seqgrp *SeqGrp) checkLengths() error {
	msg := `Sequence lengths are not the same. First sequence length %d, but
sequence %d length: %d. Sequence starts %s"`
	if len(seqgrp.seqs) == 0 {
		return nil
	}
	iwant := seqgrp.seqs[0].Len()
	for i := 1; i < len(seqgrp.seqs); i++ {
		if ilen := seqgrp.seqs[i].Len(); ilen != iwant {
			return fmt.Errorf(msg, iwant, i, ilen, trimStr(seqgrp.seqs[i].cmmt, 40))
		}
	}
	return nil
}

// FindNdx returns the index of the first sequence whose comment
// contains a string, or -1.
// Numbering starts from zero. We remove any ">", space or tab at the start.
func (seqgrp *SeqGrp) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >	")

	for i := range seqgrp.seqs {
		if strings.Contains(seqgrp.seqs[i].cmmt, s) {
			return i
		}
	}
	return -1
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	var base string
	seqgrp := new(SeqGrp)
	if prefix == nil {
		base = "s"
	} else {
		base = prefix[0]
	}
	for i, s := range sIn {
		f := Seq{cmmt: fmt.Sprint(base, i), seq: []byte(s)}
		seqgrp.seqs = append(seqgrp.seqs, f)
	}
	return seqgrp
}
