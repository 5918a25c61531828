// 15 Oct 2026

package ppfilter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/ppfilter/pkg/filter"
	"github.com/andrew-torda/ppfilter/pkg/seq"
)

// warnExists checks if a filename exists and logs a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string, lg *slog.Logger) {
	if _, err := os.Stat(fname); err == nil {
		lg.Warn("trashing old version", "file", fname)
	}
}

// b2i is for printing masks as 0 and 1.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// writeDetail writes every residue with its score and masks. Output
// is buffered, so the error from Flush catches anything lost on the way.
func writeDetail(w io.Writer, seqgrp *seq.SeqGrp) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "# [seq_pos]seq_character\tscore\tremoved\tinCore\n")
	for i := range seqgrp.SeqSlc() {
		s := &seqgrp.SeqSlc()[i]
		fmt.Fprintf(bw, ">%s\n", s.GetCmmt())
		rmv, core := s.Removed(), s.InCore()
		for j, v := range s.Scores() {
			_, err := fmt.Fprintf(bw, "[%d]%c\t%.4f\t%d\t%d\n", j, s.GetSeq()[j], v, b2i(rmv[j]), b2i(core[j]))
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// writeSummary writes the group statistics, then a line per sequence.
func writeSummary(w io.Writer, seqgrp *seq.SeqGrp, st *filter.Stats) error {
	bw := bufio.NewWriter(w)
	slc := seqgrp.SeqSlc()
	fmt.Fprintf(bw, "There are %d sequences\n", st.NSeq)
	fmt.Fprintf(bw, "Removal:\n\tOn average %.4f%% of sequence removed\n", st.MeanRemoved*100)
	fmt.Fprintf(bw, "\tSequence with most removed (%.4f%%) is [%d] = %s\n",
		st.MaxRemoved*100, st.MaxRemovedNdx, slc[st.MaxRemovedNdx].GetCmmt())
	fmt.Fprintf(bw, "Core regions:\n\tOn average %.4f%% of sequence is in the core region\n", st.MeanInCore*100)
	fmt.Fprintf(bw, "\tSequence with least in core (%.4f%%) is [%d] = %s\n",
		st.MinInCore*100, st.MinInCoreNdx, slc[st.MinInCoreNdx].GetCmmt())
	fmt.Fprintln(bw, "##")
	for i := range slc {
		s := &slc[i]
		_, err := fmt.Fprintf(bw, "[%d] %s has %.4f%% removed and %.4f%% in the core\n",
			i, s.GetCmmt(), s.PropRemoved()*100, s.PropInCore()*100)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeProfile writes the position profile as csv for plotting.
func writeProfile(w io.Writer, prof *matrix.FMatrix2d) error {
	bw := bufio.NewWriter(w)
	_, nbin := prof.Size()
	fmt.Fprintln(bw, `"bin","rel pos","mean score","frac removed","frac in core"`)
	for i := 0; i < nbin; i++ {
		relpos := (float32(i) + 0.5) / float32(nbin)
		_, err := fmt.Fprintf(bw, "%d,%.3f,%.4f,%.4f,%.4f\n", i+1, relpos,
			prof.Mat[seq.ProfScore][i], prof.Mat[seq.ProfRemoved][i], prof.Mat[seq.ProfInCore][i])
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// pcnt avoids dividing by zero.
func pcnt(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return 100 * float64(a) / float64(b)
}

// writeTable is the little summary at the end of a run.
func writeTable(w io.Writer, cnt seq.WrtCount) {
	fmt.Fprintln(w, "=================== Summary ===================")
	fmt.Fprintf(w, "              %8s%10s%10s\n", "Original", "Filtered", "%Retained")
	fmt.Fprintf(w, "#Sequences    %8d%10d%9.3g%%\n", cnt.NSeqIn, cnt.NSeqOut, pcnt(cnt.NSeqOut, cnt.NSeqIn))
	fmt.Fprintf(w, "#Residues     %8d%10d%9.3g%%\n", cnt.NResIn, cnt.NResOut, pcnt(cnt.NResOut, cnt.NResIn))
}

// wrtFile creates a file and hands it to f.
func wrtFile(fname string, lg *slog.Logger, f func(io.Writer) error) error {
	warnExists(fname, lg)
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err = f(fp); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	lg.Info("wrote", "file", fname)
	return fp.Close()
}
