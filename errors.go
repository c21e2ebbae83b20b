package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jcorbin/gobf/internal/fileinput"
)

// ConfigError indicates an unusable command line.
type ConfigError string

func (err ConfigError) Error() string { return string(err) }

var errNoSource = ConfigError("no path to the source file provided")

// FileError indicates that the source file does not exist, or cannot be read.
type FileError struct {
	Path string
	Err  error
}

func (err FileError) Error() string {
	if errors.Is(err.Err, os.ErrNotExist) {
		return fmt.Sprintf("the path %q does not exist", err.Path)
	}
	cause := err.Err
	var pathErr *os.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("unable to read %q: %v", err.Path, cause)
}

func (err FileError) Unwrap() error { return err.Err }

// CompileError indicates unbalanced loop brackets in a program source.
type CompileError struct {
	Loc  fileinput.Location
	Mess string
}

func (err CompileError) Error() string {
	return fmt.Sprintf("%v on line %v", err.Mess, err.Loc)
}

// Compile error messages.
const (
	errMessOpened = "opened a nonexistent loop"
	errMessClosed = "closed a nonexistent loop"
)

// RuntimeError indicates an I/O failure while running a program.
type RuntimeError struct {
	Op  string
	Err error
}

func (err RuntimeError) Error() string {
	return fmt.Sprintf("error while %v data: %v", err.Op, err.Err)
}

func (err RuntimeError) Unwrap() error { return err.Err }

// errUnknownOp is a VM halt cause for instructions not built by Compile.
var errUnknownOp = errors.New("invalid instruction")
