// 14 Oct 2026

// Package filter decides which residues of a group of sequences should
// be masked, given a confidence score for every residue.
//
// The stages run in a fixed order, each one working on the masks left by
// the one before:
//
//	SelectThreshold  pick a cutoff, given or from the score distribution
//	ApplyThreshold   remove residues scoring below the cutoff
//	ExtendRegions    join removed regions separated by short gaps
//	TrimEdges        remove bad looking ends, mark them outside the core
//	Summarize        proportions removed and in the core
//
// Run does all of them. The stages never reset a mask to false, so
// running them again with the same settings changes nothing.
package filter

import (
	"log/slog"

	"github.com/andrew-torda/ppfilter/pkg/seq"
)

// Config holds the settings for Run.
type Config struct {
	Mode   Mode
	Join   int               // ExtendRegions maxGap, 0 turns it off
	Run    int               // TrimEdges run length, 0 turns it off
	Ignore func(string) bool // passed to Summarize, may be nil
	NProc  int               // goroutines to spread sequences over
	Logger *slog.Logger      // slog.Default() if nil
	Ladder bool              // work out the cutoff ladder too
}

// Result is what came out of each stage.
type Result struct {
	Threshold float32
	Ladder    []Cutoff // only for Retain modes, if asked for
	NMasked   int      // residues removed by the threshold
	NJoined   int      // regions joined
	NTrimmed  int      // sequence ends trimmed
	Stats     *Stats
}

// Run does all the filtering stages in order. If a stage fails, the
// stages before it have left their marks.
func Run(seqgrp *seq.SeqGrp, cfg *Config) (*Result, error) {
	lg := cfg.Logger
	if lg == nil {
		lg = slog.Default()
	}
	var res Result
	var err error

	if res.Threshold, err = SelectThreshold(seqgrp, cfg.Mode); err != nil {
		return nil, err
	}
	if cfg.Ladder && cfg.Mode.IsRetain() {
		if res.Ladder, err = CutoffLadder(seqgrp); err != nil {
			return nil, err
		}
	}
	lg.Info("threshold", "mode", cfg.Mode.String(), "value", res.Threshold)

	if res.NMasked, err = applyThreshold(seqgrp, res.Threshold, cfg.NProc); err != nil {
		return nil, err
	}
	lg.Info("applied threshold", "removed", res.NMasked)

	if cfg.Join > 0 {
		res.NJoined = extendRegions(seqgrp, cfg.Join, cfg.NProc)
		lg.Info("extended regions", "width", cfg.Join, "joined", res.NJoined)
	}
	if cfg.Run > 0 {
		res.NTrimmed = trimEdges(seqgrp, cfg.Run, cfg.NProc)
		lg.Info("trimmed ends", "run", cfg.Run, "sections", res.NTrimmed)
	}

	if res.Stats, err = Summarize(seqgrp, cfg.Ignore); err != nil {
		return nil, err
	}
	lg.Debug("summary", "stats", res.Stats.String())
	return &res, nil
}
