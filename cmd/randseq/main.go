// 31 July 2020

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/andrew-torda/ppfilter/pkg/ppfilter"
	"github.com/andrew-torda/ppfilter/pkg/randseq"
	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

// create opens a file, or gives back stdout for "-".
func create(fname string) (*os.File, error) {
	if fname == "-" || fname == "" {
		return os.Stdout, nil
	}
	return os.Create(fname)
}

func main() {
	f := pflag.NewFlagSet("randseq", pflag.ContinueOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs
	var noScores bool

	f.BoolVarP(&args.NoGap, "nogap", "g", false, "do not put gaps in sequences")
	f.BoolVarP(&args.MkErr, "err", "e", false, "provoke errors, the first score record is short")
	f.Int64VarP(&args.Iseed, "seed", "r", iseed, "random number seed")
	f.IntVarP(&args.LenVar, "vary", "v", 0, "lengths vary by up to this much")
	f.StringVarP(&args.Cmmt, "cmmt", "c", "rseq", "sequence names start with this")
	f.BoolVarP(&noScores, "noscores", "n", false, "do not write a score file")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Too few args\nrandseq [..] file nseq length")
		f.PrintDefaults()
		os.Exit(ExitUsageError)
	}

	fname := f.Arg(0)
	ft, err := create(fname)
	if err != nil {
		fmt.Fprintln(os.Stderr, "File for output:", err)
		os.Exit(ExitFailure)
	}
	defer ft.Close()
	args.Wrtr = ft
	if !noScores && fname != "-" {
		fp, err := create(fname + ppfilter.PPSuffix)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for scores:", err)
			os.Exit(ExitFailure)
		}
		defer fp.Close()
		args.PPWrtr = fp
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Arg(1), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(1))
		os.Exit(ExitFailure)
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Arg(2), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(2))
		os.Exit(ExitFailure)
	} else {
		args.Len = int(nlen)
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
