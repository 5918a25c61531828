// 15 Oct 2026

// Package ppfilter is the body of the ppfilter command. It reads
// sequences and scores, runs the filter and writes the results.
package ppfilter

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/andrew-torda/ppfilter/pkg/filter"
	"github.com/andrew-torda/ppfilter/pkg/pp"
	"github.com/andrew-torda/ppfilter/pkg/seq"
)

// Suffixes of the files we write next to the input.
const (
	PPSuffix      = ".PP"
	DetailSuffix  = ".detail"
	SummarySuffix = ".summary"
	ProfileSuffix = ".profile.csv"
)

// outNames works out where everything goes.
type outNames struct {
	base, pp, filtered string
}

func names(flags *CmdFlag, infile string) outNames {
	var o outNames
	o.base = infile
	if infile == "" || infile == "-" {
		o.base = "stdin"
	}
	o.pp = flags.PPFile
	if o.pp == "" {
		o.pp = o.base + PPSuffix
	}
	o.filtered = flags.Outfile
	if o.filtered == "" {
		o.filtered = o.base + flags.OutSuffix
	}
	return o
}

// Mymain is the main function for filtering. It reads sequences and
// their scores, filters and writes out whatever was asked for.
func Mymain(flags *CmdFlag, infile string, lg *slog.Logger) error {
	if err := flags.Validate(); err != nil {
		return err
	}
	if lg == nil {
		lg = slog.Default()
	}
	nm := names(flags, infile)
	report := flags.Report
	switch {
	case report != nil:
	case nm.filtered == "-" && !flags.DryRun: // keep the table out
		report = os.Stderr //                     of the sequences
	default:
		report = os.Stdout
	}

	s_opts := &seq.Options{DiffLenSeq: true, RmvGapsRd: true}
	seqgrp, err := seq.Readfile(infile, s_opts)
	if err != nil {
		return fmt.Errorf("Fail reading sequences: %w", err)
	}
	lg.Info("read sequences", "file", nm.base, "n", seqgrp.NSeq(), "residues", seqgrp.TotalLen(),
		"type", seqgrp.GetType())
	if err = pp.Load(nm.pp, seqgrp); err != nil {
		return fmt.Errorf("Fail reading scores: %w", err)
	}

	for _, n := range flags.Ignore {
		if seqgrp.FindNdx(n) < 0 {
			lg.Warn("no sequence to ignore", "name", n)
		}
	}
	ignore := flags.ignorer()
	cfg := &filter.Config{
		Mode:   flags.Mode(),
		Join:   flags.Join,
		Run:    flags.Run,
		Ignore: ignore,
		NProc:  flags.NProc,
		Logger: lg,
		Ladder: true,
	}
	res, err := filter.Run(seqgrp, cfg)
	if err != nil {
		return fmt.Errorf("filtering: %w", err)
	}
	for _, c := range res.Ladder {
		lg.Info("helpful cut-off", "retain", c.Retain, "threshold", c.Threshold)
	}

	if flags.Detail {
		f := func(w io.Writer) error { return writeDetail(w, seqgrp) }
		if err := wrtFile(nm.base+DetailSuffix, lg, f); err != nil {
			return err
		}
	}
	if flags.Summary {
		f := func(w io.Writer) error { return writeSummary(w, seqgrp, res.Stats) }
		if err := wrtFile(nm.base+SummarySuffix, lg, f); err != nil {
			return err
		}
	}
	if flags.Profile > 0 {
		prof, err := seqgrp.PosProfile(flags.Profile)
		if err != nil {
			return err
		}
		f := func(w io.Writer) error { return writeProfile(w, prof) }
		if err := wrtFile(nm.base+ProfileSuffix, lg, f); err != nil {
			return err
		}
	}

	wopts := &seq.WrtOpts{Mask: flags.Mask[0], Ignore: ignore}
	var cnt seq.WrtCount
	wrt := func(w io.Writer) error {
		var err error
		cnt, err = seq.WriteFiltered(w, seqgrp, wopts)
		return err
	}
	switch {
	case flags.DryRun:
		err = wrt(io.Discard)
	case nm.filtered == "-":
		err = wrt(os.Stdout)
	default:
		err = wrtFile(nm.filtered, lg, wrt)
	}
	if err != nil {
		return err
	}
	for _, i := range cnt.Dropped {
		lg.Warn("fully removed sequence", "ndx", i, "name", seqgrp.SeqSlc()[i].GetCmmt())
	}
	writeTable(report, cnt)
	return nil
}
