package main

import (
	"bytes"
	"io"

	"github.com/jcorbin/gobf/internal/fileinput"
)

// Compile parses program source into a Program tree.
//
// The eight instruction bytes are "><+-.,[]"; every other byte is ignored.
// Each "[" must be balanced by a later "]", otherwise a CompileError is
// returned, locating the offending bracket.
func Compile(src []byte) (Program, error) {
	return CompileReader("", bytes.NewReader(src))
}

// CompileReader is like Compile, but reads source from r; name, if not empty,
// is used to qualify the location of any CompileError.
func CompileReader(name string, r io.Reader) (Program, error) {
	cmp := compiler{in: fileinput.New(name, r)}
	return cmp.block()
}

type compiler struct {
	in *fileinput.Input

	// opens holds the location of every "[" not yet closed, innermost last
	opens []fileinput.Location
}

// block compiles instructions until the "]" matching the innermost open
// bracket, or until the end of input when no bracket is open.
func (cmp *compiler) block() (Program, error) {
	prog := Program{}
	for {
		c, loc, err := cmp.in.Next()
		if err == io.EOF {
			if len(cmp.opens) > 0 {
				return nil, cmp.unclosed()
			}
			return prog, nil
		} else if err != nil {
			return nil, FileError{loc.Name, err}
		}

		switch c {
		case '>':
			prog = append(prog, Move(1))
		case '<':
			prog = append(prog, Move(-1))
		case '+':
			prog = append(prog, IncValue(1))
		case '-':
			prog = append(prog, IncValue(-1))
		case '.':
			prog = append(prog, Output)
		case ',':
			prog = append(prog, Input)

		case '[':
			cmp.opens = append(cmp.opens, loc)
			body, err := cmp.block()
			if err != nil {
				return nil, err
			}
			prog = append(prog, Loop(body...))

		case ']':
			i := len(cmp.opens) - 1
			if i < 0 {
				return nil, CompileError{loc, errMessClosed}
			}
			cmp.opens = cmp.opens[:i]
			return prog, nil
		}
	}
}

// unclosed reports the outermost bracket left open at the end of input; any
// balanced pairs nested within it were already dropped from opens when they
// closed.
func (cmp *compiler) unclosed() error {
	return CompileError{cmp.opens[0], errMessOpened}
}
