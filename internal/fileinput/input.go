package fileinput

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/jcorbin/symtab/internal/runeio"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

// Word is a whitespace-delimited token scanned from an Input.
type Word struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }
func (w Word) String() string       { return fmt.Sprintf("%v %q", w.Location, w.Text) }

// Input implements sequential rune reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	src   io.Reader
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed.
//
// An input stream that does not end in a line feed reads as if it did, so
// that lines never continue from one stream into the next.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return 0, 0, io.EOF
		}

		r, n, err := in.rr.ReadRune()
		if err == nil {
			if r == '\n' {
				in.nextLine()
			} else {
				in.Scan.WriteRune(r)
			}
			return r, n, nil
		}
		if err != io.EOF {
			return 0, 0, err
		}

		partial := in.Scan.Len() > 0
		in.closeIn()
		if partial {
			return '\n', 0, nil
		}
	}
}

// ScanWord reads the next run of non-space runes, returning io.EOF once every
// input stream has been exhausted.
func (in *Input) ScanWord() (Word, error) {
	var (
		word Word
		sb   strings.Builder
	)
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				err = nil
			}
			word.Text = sb.String()
			return word, err
		}
		if unicode.IsSpace(r) {
			if sb.Len() > 0 {
				word.Text = sb.String()
				return word, nil
			}
			continue
		}
		if sb.Len() == 0 {
			word.Location = in.Scan.Location
		}
		sb.WriteRune(r)
	}
}

// Close closes the current input stream, and any still queued.
func (in *Input) Close() error {
	var err error
	if cl, ok := in.src.(io.Closer); ok {
		err = cl.Close()
	}
	in.src, in.rr = nil, nil
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) closeIn() {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if cl, ok := in.src.(io.Closer); ok {
		cl.Close()
	}
	in.src, in.rr = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.src = r
	in.rr = runeio.NewReader(r)
	in.Scan.Reset()
	in.Scan.Name = nameOf(r)
	in.Scan.Line = 1
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
