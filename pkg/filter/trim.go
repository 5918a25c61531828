package filter

import (
	"github.com/andrew-torda/ppfilter/pkg/seq"
)

// trimFront scans the first run residues from the inside towards the
// start. From
// the first removed residue it finds, everything up to (not including)
// position 0 is removed and taken out of the core. Then the removed
// run touching position 0 is taken out of the core.
func trimFront(removed, inCore []bool, run int) int {
	nTrim := 0
	outside := false
	for j := min(len(removed), run) - 1; j > 0; j-- {
		if removed[j] {
			if !outside {
				nTrim++
			}
			outside = true
		}
		if outside {
			inCore[j], removed[j] = false, true
		}
	}
	for j := range removed {
		if !removed[j] {
			break
		}
		inCore[j] = false
	}
	return nTrim
}

// trimBack is trimFront from the other end, but here the scan reaches
// the last residue.
func trimBack(removed, inCore []bool, run int) int {
	nTrim := 0
	outside := false
	for j := max(0, len(removed)-run); j < len(removed); j++ {
		if removed[j] {
			if !outside {
				nTrim++
			}
			outside = true
		}
		if outside {
			inCore[j], removed[j] = false, true
		}
	}
	for j := len(removed) - 1; j >= 0; j-- {
		if !removed[j] {
			break
		}
		inCore[j] = false
	}
	return nTrim
}

// TrimEdges cleans up the ends of sequences, where scores are least
// reliable. If anything is removed within run residues of an end,
// everything from there to the end is removed and put outside the core.
// It returns the number of ends trimmed, so one sequence can count
// twice. run of zero or less turns it off.
func TrimEdges(seqgrp *seq.SeqGrp, run int) int {
	return trimEdges(seqgrp, run, 1)
}

func trimEdges(seqgrp *seq.SeqGrp, run, nproc int) int {
	if run <= 0 {
		return 0
	}
	return forEach(seqgrp, nproc, func(s *seq.Seq) int {
		return trimFront(s.Removed(), s.InCore(), run) + trimBack(s.Removed(), s.InCore(), run)
	})
}
