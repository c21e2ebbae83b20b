package main

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"

	"github.com/jcorbin/gobf/internal/flushio"
)

// VMOption configures a VM constructed by New.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, applied in order; nil
// options are ignored.
func VMOptions(opts ...VMOption) VMOption {
	var all vmOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case vmOptions:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(ioutil.Discard),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type lineFlushOption bool
type traceOption bool
type utf8Option bool

func withInput(r io.Reader) inputOption   { return inputOption{r} }
func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (i inputOption) apply(vm *VM) {
	if br, ok := i.Reader.(io.ByteReader); ok {
		vm.in = br
	} else {
		vm.in = bufio.NewReader(i.Reader)
	}
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Tee(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (lf lineFlushOption) apply(vm *VM) {
	if lfw, is := vm.out.(flushio.LineFlusher); is {
		vm.out = lfw.WriteFlusher
	}
	if lf {
		vm.out = flushio.LineFlusher{WriteFlusher: vm.out}
	}
}

func (mode EOFMode) apply(vm *VM) { vm.eof = mode }

func (tr traceOption) apply(vm *VM) { vm.trace = bool(tr) }

func (u utf8Option) apply(vm *VM) { vm.utf8Out = bool(u) }
