package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a position within an Input: a 1-based line and a 1-based
// byte column within that line.
type Location struct {
	Name string
	Line int
	Col  int
}

func (loc Location) String() string {
	if loc.Name == "" {
		return fmt.Sprintf("%v:%v", loc.Line, loc.Col)
	}
	return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Col)
}

// Input implements sequential byte reading from a source stream, tracking the
// Location of every byte read to facilitate user feedback.
type Input struct {
	br   io.ByteReader
	next Location
}

// New creates an Input reading from r. If name is empty, and r implements
// Name() string (like *os.File does), that name is used instead.
func New(name string, r io.Reader) *Input {
	if name == "" {
		name = nameOf(r)
	}
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Input{
		br:   br,
		next: Location{Name: name, Line: 1, Col: 1},
	}
}

// Next reads one byte, returning it along with its Location; any error,
// including io.EOF at the end of the stream, is returned as is.
func (in *Input) Next() (c byte, loc Location, err error) {
	loc = in.next
	c, err = in.br.ReadByte()
	if err != nil {
		return 0, loc, err
	}
	if c == '\n' {
		in.next.Line++
		in.next.Col = 1
	} else {
		in.next.Col++
	}
	return c, loc, nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return ""
}
