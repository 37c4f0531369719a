package main

import (
	"io"
	"unicode/utf8"

	"github.com/bfart/gofart/internal/flushio"
	"github.com/bfart/gofart/internal/lineio"
	"github.com/bfart/gofart/internal/runeio"
	"github.com/bfart/gofart/internal/tape"
)

// A VM owns one growable cell tape and its pointer, and executes an
// optimized expression tree against them depth first on a single
// thread of control. Side effects are confined to Output and Input
// nodes; evaluation order mirrors the tree's left-to-right order
// exactly.
type VM struct {
	tape *tape.Tape
	ptr  int

	in  *lineio.Reader
	out flushio.WriteFlusher

	logfn   func(mess string, args ...interface{})
	closers []io.Closer
}

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

func (vm *VM) exec(exprs []expr) error {
	for i := range exprs {
		e := &exprs[i]
		if vm.logfn != nil && e.kind != exprLoop {
			vm.logf("exec %v ptr=%v cell=%v", e, vm.ptr, vm.tape.Load(vm.ptr))
		}
		var err error
		switch e.kind {
		case exprAdd:
			vm.tape.Stor(vm.ptr, vm.tape.Load(vm.ptr)+e.n)
		case exprSub:
			err = vm.execSub(e)
		case exprSet:
			vm.tape.Stor(vm.ptr, e.n)
		case exprMoveRight:
			vm.ptr += int(e.n)
			vm.tape.Grow(vm.ptr)
		case exprMoveLeft:
			err = vm.execMoveLeft(e)
		case exprOutput:
			err = vm.execOutput(e)
		case exprInput:
			err = vm.execInput(e)
		case exprLoop:
			err = vm.execLoop(e)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// execSub subtracts the run count from the current cell. When the count
// exceeds the cell, the error is bound to the token of the exact unit
// at which the cell would have gone below zero: the first cur units
// succeed, so toks[cur] is the offender, and cur < n == len(toks) keeps
// it in range.
func (vm *VM) execSub(e *expr) error {
	cur := vm.tape.Load(vm.ptr)
	if e.n > cur {
		return valueUnderflowError(e.toks[cur])
	}
	vm.tape.Stor(vm.ptr, cur-e.n)
	return nil
}

// execMoveLeft decrements the pointer by the run count, failing on the
// token of the exact unit that would move past cell zero.
func (vm *VM) execMoveLeft(e *expr) error {
	if n := int(e.n); n > vm.ptr {
		return pointUnderflowError(e.toks[vm.ptr])
	} else {
		vm.ptr -= n
	}
	return nil
}

// execOutput writes the current cell as a character, repeated for the
// run count. A cell that is not a valid Unicode scalar (surrogates,
// values past the code space) writes a single space once, regardless of
// the count; the substitution is defined behavior, not a failure.
func (vm *VM) execOutput(e *expr) error {
	r := rune(vm.tape.Load(vm.ptr))
	if !utf8.ValidRune(r) {
		_, err := vm.out.Write([]byte{' '})
		return err
	}
	for i := uint32(0); i < e.n; i++ {
		if _, err := runeio.WriteRune(vm.out, r); err != nil {
			return err
		}
	}
	return nil
}

// execInput reads one line per run unit, overwriting the current cell
// with each line's first character. Output is flushed before every read
// so anything the program printed is visible while it blocks. A failed
// read, including end of input, aborts the remaining units with an I/O
// error bound to the run's first token.
func (vm *VM) execInput(e *expr) error {
	for i := uint32(0); i < e.n; i++ {
		if err := vm.out.Flush(); err != nil {
			return err
		}
		r, err := vm.in.ReadFirstRune()
		if err != nil {
			return inputError{e.toks[0], err}
		}
		vm.tape.Stor(vm.ptr, uint32(r))
	}
	return nil
}

// execLoop checks the current cell before every iteration, including
// the first, and runs the body to completion while it is nonzero.
func (vm *VM) execLoop(e *expr) error {
	for vm.tape.Load(vm.ptr) != 0 {
		if err := vm.exec(e.body); err != nil {
			return err
		}
	}
	return nil
}
