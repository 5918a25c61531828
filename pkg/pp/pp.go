// 14 Oct 2026

// Package pp reads the posterior probability (confidence) scores which
// belong to a set of sequences. The scores are calculated elsewhere.
// The file looks like fasta, but instead of residues there are numbers:
//
//	>seq1 anything else is ignored
//	0.9981 0.9975 0.41
//	0.12
//	>seq2
//	...
//
// Lines starting with # are comments. There must be one record per
// sequence, in the same order, and one score per residue.
// Files are memory mapped, since they can get much bigger than the
// sequences they describe.
package pp

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/ppfilter/pkg/seq"
	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

// Record is the scores for one sequence.
type Record struct {
	Name   string // first word after the ">"
	Scores []float32
}

// Parse breaks up the contents of a score file.
func Parse(b []byte) ([]Record, error) {
	var recs []Record
	for lnum := 1; len(b) > 0; lnum++ {
		var line []byte
		if i := bytes.IndexByte(b, '\n'); i == -1 {
			line, b = b, nil
		} else {
			line, b = b[:i], b[i+1:]
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if line[0] == '>' {
			var name string
			if f := bytes.Fields(line[1:]); len(f) > 0 {
				name = string(f[0])
			}
			recs = append(recs, Record{Name: name})
			continue
		}
		if len(recs) == 0 {
			return nil, fmt.Errorf("line %d: scores before first \">\"", lnum)
		}
		r := &recs[len(recs)-1]
		for _, f := range bytes.Fields(line) {
			v, err := strconv.ParseFloat(string(f), 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lnum, err)
			}
			if v < 0 || v > 1 {
				return nil, fmt.Errorf("line %d: %w: %s", lnum, ErrBadScore, f)
			}
			r.Scores = append(r.Scores, float32(v))
		}
	}
	return recs, nil
}

// ReadFile maps a score file and parses it.
func ReadFile(fname string) ([]Record, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // cannot map an empty file
		return nil, fmt.Errorf("%s: %w: empty score file", fname, ErrDimensionMismatch)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	recs, err := Parse(mm) // Parse copies everything it keeps, so
	if err != nil {        // unmapping afterwards is safe.
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return recs, nil
}

// Attach checks the records belong to the sequences and hands the
// scores over. A record's name must be the sequence's gene id.
func Attach(seqgrp *seq.SeqGrp, recs []Record) error {
	if len(recs) != seqgrp.NSeq() {
		return fmt.Errorf("%w: %d score records for %d sequences",
			ErrDimensionMismatch, len(recs), seqgrp.NSeq())
	}
	rows := make([][]float32, len(recs))
	for i := range recs {
		s := &seqgrp.SeqSlc()[i]
		if id := s.GeneId(); recs[i].Name != id {
			return &SeqError{Ndx: i, Name: id,
				Err: fmt.Errorf("%w: score record is called \"%s\"", ErrDimensionMismatch, recs[i].Name)}
		}
		rows[i] = recs[i].Scores
	}
	return seqgrp.SetScores(rows)
}

// Load reads a score file and attaches it to the sequences.
func Load(fname string, seqgrp *seq.SeqGrp) error {
	recs, err := ReadFile(fname)
	if err != nil {
		return err
	}
	return Attach(seqgrp, recs)
}
