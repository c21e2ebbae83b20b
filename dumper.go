package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/gobf/internal/runeio"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	addrWidth int
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  pointer: %v\n", dump.vm.Pointer())
	fmt.Fprintf(dump.out, "  steps: %v\n", dump.vm.steps)
	dump.dumpTape()
	dump.dumpProg()
}

// dumpTape writes every non-zero cell, along with the cell under the data
// pointer, eliding runs of zero cells between them.
func (dump *vmDumper) dumpTape() {
	ptr := dump.vm.Pointer()
	lo, hi, used := dump.vm.Used()
	if !used {
		lo, hi = ptr, ptr
	} else if ptr < lo {
		lo = ptr
	} else if ptr > hi {
		hi = ptr
	}
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(int(hi)))
	}

	fmt.Fprintf(dump.out, "# Tape @%v..@%v\n", lo, hi)
	var buf bytes.Buffer
	elided := false
	for addr := lo; addr <= hi; addr++ {
		val := dump.vm.LoadAt(int(addr))
		if val == 0 && addr != ptr {
			elided = true
			continue
		}
		if elided {
			buf.WriteString("  ...\n")
			elided = false
		}
		fmt.Fprintf(&buf, "  @%-*v %3v %v", dump.addrWidth, addr, val, runeio.Name(val))
		if addr == ptr {
			buf.WriteString(" <- ptr")
		}
		buf.WriteByte('\n')
		buf.WriteTo(dump.out)
	}
}

func (dump *vmDumper) dumpProg() {
	fmt.Fprintf(dump.out, "# Program: %v instructions\n", dump.vm.prog.Len())
	dump.formatProg(dump.vm.prog, "  ")
}

// formatProg writes each run of straight line instructions on one line, and
// each loop body indented between bracket lines.
func (dump *vmDumper) formatProg(prog Program, indent string) {
	for i := 0; i < len(prog); {
		j := i
		for j < len(prog) && prog[j].Op != OpLoop {
			j++
		}
		if j > i {
			fmt.Fprintf(dump.out, "%v%v\n", indent, prog[i:j])
		}
		if j < len(prog) {
			fmt.Fprintf(dump.out, "%v[\n", indent)
			dump.formatProg(prog[j].Body, indent+"  ")
			fmt.Fprintf(dump.out, "%v]\n", indent)
			j++
		}
		i = j
	}
}
