// 31 July 2020

/*
Randseq makes random sequences with scores for trying out ppfilter.
Usage:

	randseq [options] fname nseq length

will generate nseq sequences of about length residues, write them to
fname and their scores to fname.PP, ready for

	ppfilter fname

Flags:

	-g, --nogap
		no gaps in the output sequences
	-e, --err
		provoke errors. The first score record is one short, which
		ppfilter should refuse.
	-r, --seed
		random number seed
	-v, --vary
		lengths vary by up to this much either way
	-c, --cmmt
		names are this, then _ and a number
	-n, --noscores
		only write sequences

Scores near the ends of sequences are worse than in the middle, and there
is an occasional bad residue in the middle, so all the filter stages have
something to do. White space is scattered through the sequences, since
the readers should not care.
If fname is "-", sequences go to standard output and no scores are
written.
*/
package main
