package main

import (
	"errors"
	"fmt"
)

// The failure taxonomy is closed: every way a program can fail, from
// scan to run time, is one of the five values below. All but the
// unmatched-open case carry the source token they are bound to.

// errUnmatchedOpen is only detectable at end of scan; no single token
// identifies which open bracket lacks a close.
var errUnmatchedOpen = errors.New("missing matching closing bracket ]")

type unmatchedCloseError token

func (tok unmatchedCloseError) Error() string {
	return fmt.Sprintf("line %v col %v: unmatched closing bracket ]", tok.line, tok.col)
}

type pointUnderflowError token

func (tok pointUnderflowError) Error() string {
	return fmt.Sprintf("line %v col %v: attempted to decrement pointer that is at index 0", tok.line, tok.col)
}

type valueUnderflowError token

func (tok valueUnderflowError) Error() string {
	return fmt.Sprintf("line %v col %v: attempted to decrement value that is 0", tok.line, tok.col)
}

type inputError struct {
	tok token
	err error
}

func (ie inputError) Error() string {
	return fmt.Sprintf("line %v col %v: failed to read character from input: %v", ie.tok.line, ie.tok.col, ie.err)
}

func (ie inputError) Unwrap() error { return ie.err }
