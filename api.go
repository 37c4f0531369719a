package main

import (
	"io"

	"github.com/bfart/gofart/internal/tape"
)

// New creates a VM with a one-cell zeroed tape, the pointer at zero,
// and the given options applied over the defaults (empty input,
// discarded output).
func New(opts ...VMOption) *VM {
	vm := &VM{tape: tape.New()}
	defaultOptions.apply(vm)
	VMOptions(opts...).apply(vm)
	return vm
}

// Run lexes, parses, and executes one program source against the VM.
// The first failure at any stage aborts the run; buffered output is
// flushed either way.
func (vm *VM) Run(src string) error {
	toks, err := lexString(src)
	if err != nil {
		return err
	}
	exprs, err := parseTokens(toks)
	if err != nil {
		return err
	}
	err = vm.exec(exprs)
	if ferr := vm.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func WithInput(r io.Reader) VMOption  { return withInput(r) }
func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption    { return withTee(w) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

func (vm *VM) Close() (err error) {
	for i := len(vm.closers) - 1; i >= 0; i-- {
		if cerr := vm.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}
