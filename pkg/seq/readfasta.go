// Reader for fasta format files.

package seq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
	"github.com/andrew-torda/ppfilter/pkg/white"
	"github.com/andrew-torda/ppfilter/pkg/zwrap"
)

type lexer struct {
	rdr    *bufio.Reader
	seqgrp *SeqGrp
	opts   *Options
	cmmt   string // comment of the sequence being read
	seq    []byte // partial sequence
	inSeq  bool   // have we seen a comment yet ?
	err    error
}

const defaultReadSize = 64 * 1024

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing and benchmarking
func setFastaRdSize(i int) {
	if i < 16 { // bufio will not go smaller than this anyway
		panic("setFastaRdSize given buffer length less than 16")
	}
	rdsize = i
}

// line returns the next line without its newline. ok is false at the
// end of input or on an error, which is left in l.err.
func (l *lexer) line() (b []byte, ok bool) {
	for {
		b, err := l.rdr.ReadBytes('\n')
		if err != nil && err != io.EOF {
			l.err = err
			return nil, false
		}
		if len(b) == 0 && err == io.EOF {
			return nil, false
		}
		b = bytes.TrimRight(b, "\r\n")
		if len(bytes.TrimSpace(b)) == 0 { // Blank lines are
			if err == io.EOF { //              silently skipped
				return nil, false
			}
			continue
		}
		return b, true
	}
}

// flush stores the sequence we have been collecting.
func (l *lexer) flush() {
	if !l.inSeq {
		return
	}
	if len(l.seq) == 0 {
		l.err = errors.New("Zero length sequence after " + trimStr(l.cmmt, 40))
		return
	}
	l.seqgrp.seqs = append(l.seqgrp.seqs, Seq{cmmt: l.cmmt, seq: l.seq})
	l.cmmt, l.seq = "", nil
}

type stateFn func(*lexer) stateFn

// gstart looks for the first comment. Anything before it is junk.
func gstart(l *lexer) stateFn {
	b, ok := l.line()
	if !ok {
		return nil
	}
	if b[0] != cmmtChar {
		l.err = fmt.Errorf("fasta: expected \"%c\" at start, got \"%s\"", cmmtChar, trimStr(string(b), 20))
		return nil
	}
	l.cmmt, l.inSeq = string(b[1:]), true
	return gseq
}

// gseq collects sequence lines until the next comment.
func gseq(l *lexer) stateFn {
	b, ok := l.line()
	if !ok {
		if l.err == nil {
			l.flush()
		}
		return nil
	}
	if b[0] == cmmtChar {
		if l.flush(); l.err != nil {
			return nil
		}
		l.cmmt = string(b[1:])
		return gseq
	}
	if l.opts.RmvGapsRd {
		white.RemoveMinus(&b, GapChar)
	} else {
		white.Remove(&b)
	}
	l.seq = append(l.seq, b...)
	return gseq
}

// ReadFasta reads fasta formatted files.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) (err error) {
	l := lexer{rdr: bufio.NewReaderSize(rdr, rdsize), seqgrp: seqgrp, opts: s_opts}

	for state := gstart; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return l.err
	}
	if seqgrp.NSeq() == 0 {
		return errors.New("No sequences found")
	}
	if !s_opts.DiffLenSeq {
		return seqgrp.checkLengths()
	}
	return nil
}

// Readfile takes a filename and reads sequences from it.
// An empty name means standard input. Compressed files are unpacked
// on the way. It returns a SeqGrp and error.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	var seqgrp = new(SeqGrp)
	fp, err := zwrap.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	if err := ReadFasta(fp, seqgrp, s_opts); err != nil {
		return seqgrp, fmt.Errorf("%s: %w", fname, err)
	}
	return seqgrp, nil
}
