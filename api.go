package main

import (
	"context"
	"io"

	"github.com/jcorbin/gobf/internal/panicerr"
)

// New creates a VM with a fresh zeroed tape. Without options, it reads from
// an empty input and discards all output.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run executes prog to completion, returning nil if it halts normally.
//
// A failure to read input or write output halts the program with a
// RuntimeError. Programs need not halt at all: ctx is consulted after every
// loop pass, so a program may be abandoned by cancelling it, in which case
// ctx.Err() is returned. Any output written before halting is flushed.
func (vm *VM) Run(ctx context.Context, prog Program) error {
	return panicerr.Recover("VM", func() error {
		return vm.run(ctx, prog)
	})
}

// Interpret compiles, optimizes, and runs source on a new VM.
func Interpret(ctx context.Context, src []byte, opts ...VMOption) error {
	prog, err := Compile(src)
	if err != nil {
		return err
	}
	return New(opts...).Run(ctx, Optimize(prog))
}

// WithInput sets the stream read by input instructions.
func WithInput(r io.Reader) VMOption { return withInput(r) }

// WithOutput sets the stream written by output instructions; it is buffered,
// unless it is an in memory buffer, and flushed before every input and when
// the program halts.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee copies all output into w, in addition to any prior output.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithLineFlush causes output to be flushed after every line feed; it applies
// to whatever output has been set by any prior option.
func WithLineFlush(enabled bool) VMOption { return lineFlushOption(enabled) }

// WithEOF sets what input instructions store once input is exhausted.
func WithEOF(mode EOFMode) VMOption { return mode }

// WithUTF8Output causes every output byte to be written as the utf8 encoding
// of the code point with the same value, rather than as a raw byte.
func WithUTF8Output(enabled bool) VMOption { return utf8Option(enabled) }

// WithLogf sets a function to receive debug logging.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

// WithTrace enables logging of every executed instruction through any WithLogf
// function.
func WithTrace(enabled bool) VMOption { return traceOption(enabled) }
