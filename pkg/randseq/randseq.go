// 31 July 2020
// Random sequences, and now random confidence scores to go with them,
// for testing and benchmarking the readers and the filter.

package randseq

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
)

const (
	nPadWhite = 9    // For padding for adding whitespace to sequences
	edgeFrac  = 0.1  // this fraction at each end gets worse scores
	lowProb   = 0.05 // chance of a bad residue in the middle
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where we write sequences to
	PPWrtr io.Writer // where scores go. No scores if nil.
	Cmmt   string    // Comment for the sequences
	Nseq   int       // number of sequences
	Len    int       // Length of sequences
	LenVar int       // lengths vary by up to this much either way
	NoGap  bool      // Do not add gaps
	MkErr  bool      // Add an error, by making one score row short
}

var letters = []byte{'a', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'w', 'y'}

// oneSeq is a sequence and the scores of its residues.
type oneSeq struct {
	s  []byte
	pp []float32
}

// getseq returns a byte slice with a random sequence in it, room to
// add white space later and one score per residue. Gaps do not get
// scores.
func getseq(seqlen int, noGap bool, rnd *rand.Rand) oneSeq {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := oneSeq{s: make([]byte, 0, space), pp: make([]float32, 0, seqlen)}
	nedge := int(float64(seqlen) * edgeFrac)
	for i := 0; i < seqlen; i++ {
		if !noGap && rnd.Int31n(10) == 0 {
			ret.s = append(ret.s, '-')
		}
		ret.s = append(ret.s, letters[rnd.Int31n(int32(len(letters)))])
		var v float32
		switch {
		case i < nedge || i >= seqlen-nedge:
			v = rnd.Float32()
		case rnd.Float64() < lowProb:
			v = rnd.Float32() * 0.5
		default:
			v = 0.9 + rnd.Float32()*0.1
		}
		ret.pp = append(ret.pp, v)
	}
	return ret
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Int31n(int32(len(s)))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	nNL := 0 // Number of new lines to add
	if spacernd.Int31n(2) == 0 {
		nNL = toAdd / 9
	}

	nSpace := toAdd - nNL
	s = addInner(s, nSpace, ' ', spacernd)
	s = addInner(s, nNL, '\n', spacernd)
	return s
}

// wrtScores writes one score record.
func wrtScores(w io.Writer, name string, pp []float32) error {
	if _, err := fmt.Fprintf(w, ">%s\n", name); err != nil {
		return err
	}
	for i, v := range pp {
		sep := " "
		if i%10 == 9 || i == len(pp)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%.4f%s", v, sep); err != nil {
			return err
		}
	}
	return nil
}

// writeseq takes sequences and their scores from the channel. It adds a
// comment and writes them out. The n'th sequence is called
// "something_n", so the first word of the comment is unique.
func writeseq(sChan <-chan oneSeq, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()

	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed))
	var i int
	for one := range sChan {
		i++
		if *errp != nil {
			continue // drain the channel
		}
		name := fmt.Sprintf("%s_%0[2]*d", args.Cmmt, width, i)
		s := addspace(one.s, spacernd)
		if _, err := fmt.Fprintf(args.Wrtr, ">%s\n%s\n", name, s); err != nil {
			*errp = err
			continue
		}
		if args.PPWrtr == nil {
			continue
		}
		pp := one.pp
		if args.MkErr && i == 1 {
			pp = pp[:len(pp)-1]
		}
		*errp = wrtScores(args.PPWrtr, name, pp)
	}
}

// RandSeqMain writes random sequences to an io.Writer and their scores
// to another.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Len-args.LenVar < 2 {
		return errors.New("randseq: sequences would be too short")
	}
	if args.Cmmt == "" {
		args.Cmmt = "rseq"
	}
	var wg sync.WaitGroup
	var err error
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan oneSeq)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		l := args.Len
		if args.LenVar > 0 {
			l += rnd.Intn(2*args.LenVar+1) - args.LenVar
		}
		sChan <- getseq(l, args.NoGap, rnd)
	}
	close(sChan)
	wg.Wait()
	return err
}
