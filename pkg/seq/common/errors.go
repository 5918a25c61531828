// 14 Oct 2026

package common

import (
	"errors"
	"fmt"
)

// Errors a filtering run can stop with. None of them are worth a retry.
// Callers should check with errors.Is, since most of them come back
// wrapped in a SeqError or with some context in front.
var (
	ErrInvalidThreshold  = errors.New("threshold outside [0, 1]")
	ErrEmptyCorpus       = errors.New("no sequences or no residues")
	ErrDimensionMismatch = errors.New("scores do not match sequence")
	ErrEmptySequence     = errors.New("zero length sequence")
	ErrBadScore          = errors.New("score outside [0, 1]")
)

// SeqError says which sequence was the problem.
type SeqError struct {
	Ndx  int    // index in the group, from zero
	Name string // comment line, possibly trimmed
	Err  error
}

func (e *SeqError) Error() string {
	return fmt.Sprintf("sequence %d (%s): %v", e.Ndx, e.Name, e.Err)
}

func (e *SeqError) Unwrap() error { return e.Err }
