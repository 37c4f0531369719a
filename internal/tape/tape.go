// Package tape implements the interpreter's growable cell store.
package tape

// chunkSize is the growth granularity: growth rounds allocation up to a
// whole number of chunks so repeated rightward moves amortize.
const chunkSize = 256

// A Tape is an ordered sequence of unsigned 32-bit cells addressed from
// zero. It starts one cell long, holding zero, and grows monotonically
// rightward only; it never shrinks and never grows leftward. Addressing
// is the caller's invariant: Load and Stor index directly, so the
// caller must Grow an address before touching it.
type Tape struct {
	cells []uint32
}

func New() *Tape {
	return &Tape{cells: make([]uint32, 1)}
}

// Len returns the current number of addressable cells.
func (t *Tape) Len() int { return len(t.cells) }

// Load returns the cell at addr.
func (t *Tape) Load(addr int) uint32 { return t.cells[addr] }

// Stor overwrites the cell at addr.
func (t *Tape) Stor(addr int, val uint32) { t.cells[addr] = val }

// Grow ensures addr is addressable, allocating in chunk multiples and
// zero filling the new cells. Growing to an already addressable
// position is a no-op.
func (t *Tape) Grow(addr int) {
	if addr < len(t.cells) {
		return
	}
	size := addr + 1
	size = (size + chunkSize - 1) / chunkSize * chunkSize
	if need := size - len(t.cells); need > 0 {
		t.cells = append(t.cells, make([]uint32, need)...)
	}
}

// Cells exposes the underlying cell slice for dumps and tests; callers
// must not grow it.
func (t *Tape) Cells() []uint32 { return t.cells }
