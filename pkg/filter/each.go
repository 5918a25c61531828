package filter

import (
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/ppfilter/pkg/seq"
)

// forEach calls f on every sequence and adds up what it returns.
// Sequences never share anything, so with nproc > 1 they are split
// into blocks, one per goroutine. Within a sequence f always runs
// start to finish in one goroutine.
func forEach(seqgrp *seq.SeqGrp, nproc int, f func(s *seq.Seq) int) int {
	seqs := seqgrp.SeqSlc()
	if nproc < 2 || len(seqs) < 2 {
		n := 0
		for i := range seqs {
			n += f(&seqs[i])
		}
		return n
	}
	if nproc > len(seqs) {
		nproc = len(seqs)
	}
	var g errgroup.Group
	counts := make([]int, nproc)
	chunk := (len(seqs) + nproc - 1) / nproc
	for p := 0; p < nproc; p++ {
		p := p // per-iteration copy for the goroutine (pre-Go 1.22 loop semantics)
		lo, hi := p*chunk, min((p+1)*chunk, len(seqs))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				counts[p] += f(&seqs[i])
			}
			return nil
		})
	}
	g.Wait() // nothing in here returns an error
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}
