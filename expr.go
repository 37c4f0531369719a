package main

import "fmt"

// An exprKind names one of the eight optimized node kinds.
type exprKind uint8

const (
	exprMoveRight exprKind = iota + 1
	exprMoveLeft
	exprAdd
	exprSub
	exprSet
	exprOutput
	exprInput
	exprLoop
)

var exprKindNames = [...]string{
	exprMoveRight: "MoveRight",
	exprMoveLeft:  "MoveLeft",
	exprAdd:       "Add",
	exprSub:       "Sub",
	exprSet:       "Set",
	exprOutput:    "Output",
	exprInput:     "Input",
	exprLoop:      "Loop",
}

func (kind exprKind) String() string {
	if int(kind) < len(exprKindNames) && exprKindNames[kind] != "" {
		return exprKindNames[kind]
	}
	return fmt.Sprintf("exprKind(%v)", uint8(kind))
}

// An expr is one node of the optimized tree. Run nodes carry the count
// of collapsed source commands and one provenance token per run unit;
// a Set carries its zeroing token first, then one token per unit of its
// constant. A Loop owns its body exclusively and carries no tokens of
// its own: errors inside it are bound to body tokens.
type expr struct {
	kind exprKind
	n    uint32
	toks []token
	body []expr
}

func (e expr) String() string {
	if e.kind == exprLoop {
		return fmt.Sprintf("Loop%v", e.body)
	}
	return fmt.Sprintf("%v(%v)", e.kind, e.n)
}
