// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// We recognise gzip and xz by their magic bytes. Anything else is
// passed through untouched. Since we only peek at the start of the
// stream, this works on stdin and pipes, not just files that can seek.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
)

var (
	gzMagic = []byte{0x1f, 0x8b}
	xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Kind says what was found at the start of the stream.
type Kind byte

const (
	Plain Kind = iota
	Gzip
	Xz
)

type FpZ struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader    // where reads go
	zrdr *gzip.Reader // only set for gzip. xz readers have no Close.
	kind Kind
}

// Kind returns the type of compression found.
func (fc *FpZ) Kind() Kind { return fc.kind }

// Close closes the decompressor, then the underlying backing readCloser.
// It should work if the source is a file or an http stream.
func (fc *FpZ) Close() error {
	var e1, e2 error
	if fc.zrdr != nil {
		e1 = fc.zrdr.Close()
	}
	e2 = fc.fp.Close()
	return errors.Join(e1, e2)
}

// Read makes sure we read from the decompressed stream and
// not the underlying file stream.
func (fc *FpZ) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary.
func WrapMaybe(fp io.ReadCloser) (*FpZ, error) {
	br := bufio.NewReader(fp)
	fc := &FpZ{fp: fp, rdr: br}
	magic, err := br.Peek(len(xzMagic)) // A short file gives io.EOF, but
	if err != nil && err != io.EOF {     // the bytes we got are still good.
		return nil, err
	}
	switch {
	case bytes.HasPrefix(magic, gzMagic):
		if fc.zrdr, err = gzip.NewReader(br); err != nil {
			return nil, fmt.Errorf("gzip header: %w", err)
		}
		fc.rdr, fc.kind = fc.zrdr, Gzip
	case bytes.HasPrefix(magic, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("xz header: %w", err)
		}
		fc.rdr, fc.kind = xr, Xz
	}
	return fc, nil
}

// Open opens a file and wraps it. An empty name or "-" means stdin.
func Open(fname string) (io.ReadCloser, error) {
	var fp io.ReadCloser
	if fname == "" || fname == "-" {
		fp = io.NopCloser(os.Stdin)
	} else {
		var err error
		if fp, err = os.Open(fname); err != nil {
			return nil, err
		}
	}
	fc, err := WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return fc, nil
}
