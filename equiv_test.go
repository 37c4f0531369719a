package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bfart/gofart/internal/lineio"
	"github.com/bfart/gofart/internal/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Optimization must be invisible: for any bracket-valid program, the
// optimized tree and a direct token-by-token execution produce the
// same output and the same tape.
func TestOptimizationPreservesSemantics(t *testing.T) {
	for _, tc := range []struct {
		name  string
		prog  string
		input string
	}{
		{name: "hello world", prog: helloWorldProg},
		{name: "transfer", prog: "++++[->++<]"},
		{name: "nested countdown", prog: "++[>++[>++<-]<-]"},
		{name: "echo twice", prog: ",.,.", input: "hi\nyo\n"},
		{name: "runs and cancels", prog: "+++-->><<>+."},
		{name: "zero loop", prog: "+++[-]"},
		{name: "set then adjust", prog: "++++[-]+++."},
		{name: "skipped loop", prog: "[>+<]>"},
		{name: "output run", prog: strings.Repeat("+", 42) + "..."},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := lexString(tc.prog)
			require.NoError(t, err, "unexpected lex error")

			wantOut, wantTape, err := runDirect(toks, tc.input)
			require.NoError(t, err, "unexpected direct run error")

			var out strings.Builder
			vm := New(WithInput(strings.NewReader(tc.input)), WithOutput(&out))
			require.NoError(t, vm.Run(tc.prog), "unexpected optimized run error")

			assert.Equal(t, wantOut, out.String(), "expected identical output")
			assert.Equal(t,
				trimZeroTail(wantTape), trimZeroTail(vm.tape.Cells()),
				"expected identical touched cells")
		})
	}
}

// runDirect executes tokens one at a time with no optimization,
// mirroring each command's unit semantics exactly.
func runDirect(toks []token, input string) (string, []uint32, error) {
	var out strings.Builder
	in := lineio.NewReader(strings.NewReader(input))
	tp := tape.New()
	ptr := 0

	jump := matchBrackets(toks)
	for pc := 0; pc < len(toks); pc++ {
		tok := toks[pc]
		switch tok.kind {
		case tokenMoveRight:
			ptr++
			tp.Grow(ptr)
		case tokenMoveLeft:
			if ptr == 0 {
				return out.String(), tp.Cells(), pointUnderflowError(tok)
			}
			ptr--
		case tokenAdd:
			tp.Stor(ptr, tp.Load(ptr)+1)
		case tokenSub:
			if tp.Load(ptr) == 0 {
				return out.String(), tp.Cells(), valueUnderflowError(tok)
			}
			tp.Stor(ptr, tp.Load(ptr)-1)
		case tokenOutput:
			if r := rune(tp.Load(ptr)); utf8.ValidRune(r) {
				out.WriteRune(r)
			} else {
				out.WriteByte(' ')
			}
		case tokenInput:
			r, err := in.ReadFirstRune()
			if err != nil {
				return out.String(), tp.Cells(), inputError{tok, err}
			}
			tp.Stor(ptr, uint32(r))
		case tokenLoopStart:
			if tp.Load(ptr) == 0 {
				pc = jump[pc]
			}
		case tokenLoopEnd:
			if tp.Load(ptr) != 0 {
				pc = jump[pc]
			}
		}
	}
	return out.String(), tp.Cells(), nil
}

func matchBrackets(toks []token) map[int]int {
	jump := make(map[int]int)
	var stack []int
	for i, tok := range toks {
		switch tok.kind {
		case tokenLoopStart:
			stack = append(stack, i)
		case tokenLoopEnd:
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jump[open] = i
			jump[i] = open
		}
	}
	return jump
}

func trimZeroTail(cells []uint32) []uint32 {
	n := len(cells)
	for n > 0 && cells[n-1] == 0 {
		n--
	}
	return cells[:n]
}
