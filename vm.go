package main

import (
	"context"

	"github.com/jcorbin/gobf/internal/mem"
	"github.com/jcorbin/gobf/internal/runeio"
)

// VM executes compiled programs against a circular tape of mem.TapeSize byte
// cells. Each VM exclusively owns its tape and data pointer; neither is shared
// with any other VM, nor retained across processes.
type VM struct {
	ioCore
	logging
	trace bool

	mem.Tape

	// prog is the program most recently run, retained for dumping
	prog Program

	// steps counts instructions executed, including loop condition checks
	steps uint64
}

func (vm *VM) run(ctx context.Context, prog Program) error {
	vm.prog = prog
	vm.logf("#", "run %v instructions, loop depth %v", prog.Len(), prog.Depth())
	return vm.halt(vm.exec(ctx, prog))
}

// halt flushes any pending output, logging how execution ended.
func (vm *VM) halt(err error) error {
	if ferr := vm.flush(); err == nil {
		err = ferr
	}
	if err != nil {
		vm.logf("#", "halt error after %v steps: %v", vm.steps, err)
	} else {
		vm.logf("#", "halt after %v steps", vm.steps)
	}
	return err
}

func (vm *VM) exec(ctx context.Context, prog Program) error {
	for _, in := range prog {
		if err := vm.step(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

func (vm *VM) step(ctx context.Context, in Instruction) error {
	vm.steps++
	if vm.trace {
		vm.logf(">", "@%v:%v %v", vm.Pointer(), vm.Load(), in)
	}

	switch in.Op {
	case OpOutput:
		c := vm.Load()
		if vm.trace {
			vm.traceOutput(c)
		}
		return vm.writeByte(c)

	case OpInput:
		c, err := vm.readByte(vm.Load())
		if err != nil {
			return err
		}
		vm.Stor(c)

	case OpMove:
		vm.Move(in.N)

	case OpIncValue:
		vm.Add(in.N)

	case OpLoop:
		return vm.loop(ctx, in.Body)

	default:
		return errUnknownOp
	}
	return nil
}

func (vm *VM) traceOutput(c byte) {
	if caret := runeio.CaretForm(c); caret != "" {
		vm.logf("<", "out %v %v", runeio.Name(c), caret)
	} else {
		vm.logf("<", "out %v", runeio.Name(c))
	}
}

// loop runs body for as long as the current cell is non-zero at the start of
// each pass; ctx is checked after every pass, so that a caller may abandon a
// program that never halts.
func (vm *VM) loop(ctx context.Context, body Program) error {
	if vm.trace {
		defer vm.withLogPrefix("\t")()
	}
	done := ctx.Done()
	for vm.Load() != 0 {
		if err := vm.exec(ctx, body); err != nil {
			return err
		}
		select {
		case <-done:
			return ctx.Err()
		default:
		}
		vm.steps++
	}
	return nil
}
