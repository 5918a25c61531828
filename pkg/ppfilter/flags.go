// 15 Oct 2026

package ppfilter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/ppfilter/pkg/filter"
	. "github.com/andrew-torda/ppfilter/pkg/seq/common"
)

// DefaultThreshold is used if neither a threshold nor a proportion to
// retain is given.
const DefaultThreshold = 0.994

// CmdFlag is everything from the command line and config file. The
// mapstructure names are the flag names.
type CmdFlag struct {
	PPFile    string    `mapstructure:"pp"`         // scores, default infile + ".PP"
	Threshold *float32  `mapstructure:"threshold"`  // nil if not set
	Retain    *float32  `mapstructure:"retain"`     // nil if not set
	Join      int       `mapstructure:"join"`       // merge removed regions closer than this
	Run       int       `mapstructure:"run"`        // trim ends within this many residues
	Mask      string    `mapstructure:"mask"`       // one character
	Ignore    []string  `mapstructure:"ignore"`     // sequence ids written unfiltered
	OutSuffix string    `mapstructure:"outsuffix"`  // filtered output is infile + this
	Outfile   string    `mapstructure:"out"`        // overrides the suffix, "-" is stdout
	Detail    bool      `mapstructure:"detail"`     // write a per residue file
	Summary   bool      `mapstructure:"summary"`    // write a per sequence file
	Profile   int       `mapstructure:"profile"`    // bins for the profile, 0 for none
	DryRun    bool      `mapstructure:"dry-run"`    // no filtered sequences written
	NProc     int       `mapstructure:"nproc"`      // goroutines for the filter
	LogLevel  string    `mapstructure:"log-level"`
	LogFormat string    `mapstructure:"log-format"`
	Report    io.Writer `mapstructure:"-"`          // final table, stdout if nil
}

// NewCmdFlag returns the defaults.
func NewCmdFlag() *CmdFlag {
	return &CmdFlag{
		Join:      10,
		Run:       25,
		Mask:      "X",
		OutSuffix: ".filtered",
		NProc:     1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Validate checks the flags make sense together.
func (f *CmdFlag) Validate() error {
	var errs []error
	if f.Threshold != nil && f.Retain != nil {
		errs = append(errs, errors.New("give a threshold or a proportion to retain, not both"))
	}
	if err := inRange("threshold", f.Threshold); err != nil {
		errs = append(errs, err)
	}
	if err := inRange("retain", f.Retain); err != nil {
		errs = append(errs, err)
	}
	if f.Join < 0 || f.Run < 0 || f.Profile < 0 {
		errs = append(errs, fmt.Errorf("join %d, run %d, profile %d: none can be negative", f.Join, f.Run, f.Profile))
	}
	if len(f.Mask) != 1 {
		errs = append(errs, fmt.Errorf("mask \"%s\" should be one character", f.Mask))
	}
	return errors.Join(errs...)
}

// inRange is happy with a value which was not set. NaN fails, since
// it is not >= 0.
func inRange(name string, p *float32) error {
	if p == nil {
		return nil
	}
	if v := *p; !(v >= 0 && v <= 1) {
		return fmt.Errorf("%w: %s %g", ErrInvalidThreshold, name, v)
	}
	return nil
}

// Mode turns the threshold and retain flags into a filter.Mode.
func (f *CmdFlag) Mode() filter.Mode {
	switch {
	case f.Retain != nil:
		return filter.Retain(*f.Retain)
	case f.Threshold != nil:
		return filter.Absolute(*f.Threshold)
	}
	return filter.Absolute(DefaultThreshold)
}

// ignorer returns a function which is true for sequences whose first
// word is in the ignore list, or nil if the list is empty.
func (f *CmdFlag) ignorer() func(string) bool {
	if len(f.Ignore) == 0 {
		return nil
	}
	names := make(map[string]bool, len(f.Ignore))
	for _, n := range f.Ignore {
		names[strings.TrimLeft(n, "> ")] = true
	}
	return func(cmmt string) bool {
		w := strings.Fields(cmmt)
		return len(w) > 0 && names[w[0]]
	}
}
