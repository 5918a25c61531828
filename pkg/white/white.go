// Package white removes white space from byte slices. The fasta reader
// calls it on every line, so it works in place and never allocates.

package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// isWhite is true for the usual ascii white space characters.
func isWhite(c byte) bool { return asciiSpace[c] }

// Remove acts on a byte slice, in place, and removes all the white
// space. The length is adjusted, but the capacity is unchanged.
func Remove(pb *[]byte) {
	b := *pb
	n := 0
	for _, c := range b {
		if !isWhite(c) {
			b[n] = c
			n++
		}
	}
	*pb = b[:n]
}

// RemoveMinus removes white space and also the gap character c. It is
// used when reading sequences whose gaps are to be thrown away.
func RemoveMinus(pb *[]byte, c byte) {
	b := *pb
	n := 0
	for _, x := range b {
		if !isWhite(x) && x != c {
			b[n] = x
			n++
		}
	}
	*pb = b[:n]
}
