package main

// Optimize returns a new program equivalent to prog, with every run of
// adjacent Move instructions, and every run of adjacent IncValue
// instructions, folded into a single instruction of the summed magnitude.
// Loop bodies are optimized recursively; prog itself is not modified.
//
// Folding is a single forward pass: a run that sums to zero is kept as a
// Move(0) or IncValue(0), rather than removed.
func Optimize(prog Program) Program {
	opt := make(Program, 0, len(prog))
	for _, in := range prog {
		if in.Op == OpLoop {
			opt = append(opt, Loop(Optimize(in.Body)...))
			continue
		}
		if i := len(opt) - 1; i >= 0 && opt[i].Op == in.Op {
			switch in.Op {
			case OpMove, OpIncValue:
				opt[i].N += in.N
				continue
			}
		}
		opt = append(opt, in)
	}
	return opt
}
