package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/jcorbin/gobf/internal/logio"
	"github.com/jcorbin/gobf/internal/panicerr"
	"github.com/mattn/go-isatty"
	"github.com/tebeka/atexit"
)

func main() {
	// the VM flushes stdout when it halts, but not when a run panics
	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { stdout.Flush() })

	cmd := command{
		name:      filepath.Base(os.Args[0]),
		args:      os.Args[1:],
		stdin:     os.Stdin,
		stdout:    stdout,
		stderr:    os.Stderr,
		lineFlush: isTerminal(os.Stdout),
	}
	atexit.Exit(cmd.run(context.Background()))
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type command struct {
	name   string
	args   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// lineFlush flushes program output after every line feed, as a terminal
	// user would expect
	lineFlush bool

	log logio.Logger
}

// run executes the command, returning the process exit code: 0 if the source
// program ran to completion, 1 after any error.
func (cmd *command) run(ctx context.Context) int {
	cmd.log.SetOutput(cmd.stderr)

	var (
		debug   bool
		trace   bool
		utf8Out bool
		eof     EOFMode
		timeout time.Duration
	)
	flags := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	flags.SetOutput(cmd.stderr)
	flags.BoolVar(&debug, "debug", false, "enable debug logging, and dump the VM after running")
	flags.BoolVar(&trace, "trace", false, "log every executed instruction; implies -debug")
	flags.BoolVar(&utf8Out, "utf8", false, "write output bytes as utf8 encoded code points")
	flags.Var(&eof, "eof", "value stored by input at end of input: zero, max, or keep")
	flags.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %v [flags] <source file path>\n", cmd.name)
		flags.PrintDefaults()
	}
	if err := flags.Parse(cmd.args); err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 1
	}
	debug = debug || trace

	if flags.NArg() < 1 {
		cmd.fail(errNoSource)
		flags.Usage()
		return cmd.log.ExitCode()
	}

	path := flags.Arg(0)
	src, err := readSource(path)
	if err != nil {
		cmd.fail(err)
		return cmd.log.ExitCode()
	}

	prog, err := CompileReader(path, bytes.NewReader(src))
	if err != nil {
		cmd.fail(err)
		return cmd.log.ExitCode()
	}
	opt := Optimize(prog)

	opts := []VMOption{
		WithInput(cmd.stdin),
		WithOutput(cmd.stdout),
		WithLineFlush(cmd.lineFlush),
		WithEOF(eof),
		WithUTF8Output(utf8Out),
	}
	// with debug logging, program output is also logged as it is flushed
	outLog := logio.Writer{Logf: cmd.log.Leveledf("OUT")}
	if debug {
		debugf := cmd.log.Leveledf("DEBUG")
		debugf("compiled %v: %v instructions, optimized to %v", path, prog.Len(), opt.Len())
		opts = append(opts,
			WithLogf(debugf),
			WithTrace(trace),
			WithTee(&outLog),
		)
	}
	vm := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	err = vm.Run(ctx, opt)

	if debug {
		cmd.log.ErrorIf(outLog.Close())
		lw := logio.Writer{Logf: cmd.log.Leveledf("DEBUG")}
		vmDumper{vm: vm, out: &lw}.dump()
		cmd.log.ErrorIf(lw.Close())
	}
	if err != nil {
		cmd.fail(err)
	}
	return cmd.log.ExitCode()
}

func (cmd *command) fail(err error) {
	var (
		cfgErr  ConfigError
		fileErr FileError
		cmpErr  CompileError
		runErr  RuntimeError
	)
	switch {
	case errors.As(err, &cfgErr):
		cmd.log.Errorf("%v", err)
	case errors.As(err, &fileErr):
		cmd.log.Errorf("file error: %v", err)
	case errors.As(err, &cmpErr):
		cmd.log.Errorf("compile error: %v", err)
	case errors.As(err, &runErr):
		cmd.log.Errorf("runtime error: %v", err)
	case errors.Is(err, context.DeadlineExceeded):
		cmd.log.Errorf("time limit exceeded")
	case panicerr.IsPanic(err), panicerr.IsExit(err):
		cmd.log.Errorf("internal error: %+v", err)
	default:
		cmd.log.Errorf("%+v", err)
	}
}

var errNotText = errors.New("not a text file")

// readSource reads the whole of a source file, which must exist and contain
// valid utf8 text.
func readSource(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, FileError{path, err}
	}
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, FileError{path, err}
	}
	if !utf8.Valid(src) {
		return nil, FileError{path, errNotText}
	}
	return src, nil
}
