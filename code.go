package main

import (
	"strconv"
	"strings"
)

// Op identifies the kind of an Instruction.
type Op uint8

// Instruction ops; the zero Op is invalid.
const (
	OpOutput Op = iota + 1
	OpInput
	OpMove
	OpIncValue
	OpLoop
)

var opNames = [...]string{
	OpOutput:   "output",
	OpInput:    "input",
	OpMove:     "move",
	OpIncValue: "inc",
	OpLoop:     "loop",
}

func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Instruction is a single node of a compiled program tree.
//
// Move and IncValue carry a signed magnitude in N, which is only reduced
// modulo the tape size or cell width when executed. Loop carries its body,
// which it exclusively owns.
type Instruction struct {
	Op   Op
	N    int
	Body Program
}

// Program is an ordered sequence of instructions; it is either a whole
// compiled program, or the body of a Loop.
type Program []Instruction

// Output and Input are the operand-less instructions.
var (
	Output = Instruction{Op: OpOutput}
	Input  = Instruction{Op: OpInput}
)

// Move returns an instruction that shifts the data pointer by n cells.
func Move(n int) Instruction { return Instruction{Op: OpMove, N: n} }

// IncValue returns an instruction that adds n to the current cell.
func IncValue(n int) Instruction { return Instruction{Op: OpIncValue, N: n} }

// Loop returns an instruction that runs body while the current cell is
// non-zero.
func Loop(body ...Instruction) Instruction {
	if body == nil {
		body = Program{}
	}
	return Instruction{Op: OpLoop, Body: body}
}

func (in Instruction) String() string {
	var sb strings.Builder
	in.format(&sb)
	return sb.String()
}

func (prog Program) String() string {
	var sb strings.Builder
	prog.format(&sb)
	return sb.String()
}

// Len returns the total number of instructions in the program tree,
// counting loop instructions along with all of their body instructions.
func (prog Program) Len() (n int) {
	for _, in := range prog {
		n++
		if in.Op == OpLoop {
			n += in.Body.Len()
		}
	}
	return n
}

// Depth returns the maximum loop nesting depth within the program.
func (prog Program) Depth() (depth int) {
	for _, in := range prog {
		if in.Op == OpLoop {
			if d := 1 + in.Body.Depth(); d > depth {
				depth = d
			}
		}
	}
	return depth
}

func (prog Program) format(sb *strings.Builder) {
	for i, in := range prog {
		if i > 0 {
			sb.WriteByte(' ')
		}
		in.format(sb)
	}
}

func (in Instruction) format(sb *strings.Builder) {
	switch in.Op {
	case OpOutput:
		sb.WriteByte('.')
	case OpInput:
		sb.WriteByte(',')
	case OpMove:
		formatDelta(sb, '>', '<', in.N)
	case OpIncValue:
		formatDelta(sb, '+', '-', in.N)
	case OpLoop:
		sb.WriteByte('[')
		if len(in.Body) > 0 {
			sb.WriteByte(' ')
			in.Body.format(sb)
			sb.WriteByte(' ')
		}
		sb.WriteByte(']')
	default:
		sb.WriteString(in.Op.String())
	}
}

func formatDelta(sb *strings.Builder, pos, neg byte, n int) {
	if n < 0 {
		sb.WriteByte(neg)
		sb.WriteString(strconv.Itoa(-n))
	} else {
		sb.WriteByte(pos)
		sb.WriteString(strconv.Itoa(n))
	}
}
