package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements, it is simply returned.
// Otherwise bufio.Reader is used to provide rune reading around the given reader.
// If r implements Name() string, so will the returned Reader.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	br := bufio.NewReader(r)
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedReader{br, impl.Name()}
	}
	return br
}

// Named returns a Reader around r that reports the given name, for inputs
// like os.Stdin whose own name means little to a user.
func Named(r io.Reader, name string) Reader {
	return namedReader{NewReader(r), name}
}

type namedReader struct {
	Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
