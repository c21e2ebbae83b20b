package mem

// TapeSize is the fixed number of cells in a Tape.
const TapeSize = 30000

// Tape implements a fixed size circular byte memory along with a data
// pointer into it. Addresses wrap modulo TapeSize in both directions, and cell
// arithmetic wraps modulo 256, so no operation on a Tape can fail.
//
// The zero value is a ready to use tape of zeroed cells, with the pointer at
// cell 0.
type Tape struct {
	cells [TapeSize]byte
	ptr   uint
}

// Wrap reduces any signed address into the range [0, TapeSize).
func Wrap(addr int) uint {
	addr %= TapeSize
	if addr < 0 {
		addr += TapeSize
	}
	return uint(addr)
}

// Pointer returns the current data pointer.
func (t *Tape) Pointer() uint { return t.ptr }

// Seek sets the data pointer to addr, wrapped into range.
func (t *Tape) Seek(addr int) { t.ptr = Wrap(addr) }

// Move shifts the data pointer by delta cells; delta may be of any magnitude.
func (t *Tape) Move(delta int) {
	t.ptr = Wrap(int(t.ptr) + delta%TapeSize)
}

// Load returns the value of the current cell.
func (t *Tape) Load() byte { return t.cells[t.ptr] }

// Stor sets the value of the current cell.
func (t *Tape) Stor(val byte) { t.cells[t.ptr] = val }

// Add adds delta to the current cell, wrapping modulo 256; delta may be of any
// magnitude.
func (t *Tape) Add(delta int) {
	// converting a negative or large int to byte keeps its low 8 bits, which
	// is exactly the mod 256 residue
	t.cells[t.ptr] += byte(delta)
}

// LoadAt returns the value of the cell at addr, wrapped into range.
func (t *Tape) LoadAt(addr int) byte { return t.cells[Wrap(addr)] }

// LoadInto reads len(buf) cells starting at addr, wrapping around the end of
// the tape as necessary.
func (t *Tape) LoadInto(addr int, buf []byte) {
	at := Wrap(addr)
	for len(buf) > 0 {
		n := copy(buf, t.cells[at:])
		buf = buf[n:]
		at = 0
	}
}

// StorAt stores any values starting at addr, wrapping around the end of the
// tape as necessary.
func (t *Tape) StorAt(addr int, values ...byte) {
	at := Wrap(addr)
	for len(values) > 0 {
		n := copy(t.cells[at:], values)
		values = values[n:]
		at = 0
	}
}

// Used returns the lowest and highest addresses of non-zero cells, or false if
// every cell is zero.
func (t *Tape) Used() (lo, hi uint, ok bool) {
	for i, val := range t.cells {
		if val != 0 {
			if !ok {
				lo, ok = uint(i), true
			}
			hi = uint(i)
		}
	}
	return lo, hi, ok
}
