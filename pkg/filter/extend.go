package filter

import (
	"github.com/andrew-torda/ppfilter/pkg/seq"
)

// extendOne joins removed regions in one sequence. lastFilter starts
// at zero whether or not residue 0 is removed, so the first removed
// residue can pull in everything back to position 1.
func extendOne(removed []bool, maxGap int) int {
	nJoin := 0
	lastFilter := 0
	for j := range removed {
		if !removed[j] {
			continue
		}
		if gap := j - lastFilter; gap > 1 && gap < maxGap {
			for k := j; k > lastFilter; k-- {
				removed[k] = true
			}
			nJoin++
		}
		lastFilter = j
	}
	return nJoin
}

// ExtendRegions looks for short runs of kept residues between two
// removed ones and removes them too. Two removed residues j1 < j2 are
// joined if 1 < j2 - j1 < maxGap. A frameshift, for example, tends to
// leave a few good looking residues in the middle of a bad region.
// It returns the number of joins. maxGap of zero or less turns it off.
func ExtendRegions(seqgrp *seq.SeqGrp, maxGap int) int {
	return extendRegions(seqgrp, maxGap, 1)
}

func extendRegions(seqgrp *seq.SeqGrp, maxGap, nproc int) int {
	if maxGap <= 0 {
		return 0
	}
	return forEach(seqgrp, nproc, func(s *seq.Seq) int { return extendOne(s.Removed(), maxGap) })
}
