package main

import "fmt"

// A tokenKind names one of the eight command characters.
type tokenKind uint8

const (
	tokenInvalid tokenKind = iota

	tokenMoveRight // >
	tokenMoveLeft  // <
	tokenAdd       // +
	tokenSub       // -
	tokenOutput    // .
	tokenInput     // ,
	tokenLoopStart // [
	tokenLoopEnd   // ]
)

var tokenKindNames = [...]string{
	tokenInvalid:   "Invalid",
	tokenMoveRight: "MoveRight",
	tokenMoveLeft:  "MoveLeft",
	tokenAdd:       "Add",
	tokenSub:       "Sub",
	tokenOutput:    "Output",
	tokenInput:     "Input",
	tokenLoopStart: "LoopStart",
	tokenLoopEnd:   "LoopEnd",
}

func (kind tokenKind) String() string {
	if int(kind) < len(tokenKindNames) {
		return tokenKindNames[kind]
	}
	return fmt.Sprintf("tokenKind(%v)", uint8(kind))
}

// A token is one occurrence of a command character, carrying where in
// the source it was scanned. Lines and columns are 1-indexed.
type token struct {
	kind tokenKind
	line int
	col  int
}

func (tok token) String() string {
	return fmt.Sprintf("%v@%v:%v", tok.kind, tok.line, tok.col)
}
