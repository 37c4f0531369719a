package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	replPrompt         = "bf> "
	replContinuePrompt = "..> "
)

// repl runs an interactive session against one persistent VM: each
// bracket-balanced fragment is lexed, parsed, and executed with the
// tape and pointer surviving to the next fragment. Errors are printed
// and the session continues.
func repl(opts ...VMOption) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".gofart_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	newVM := func() *VM {
		return New(append([]VMOption{
			WithInput(os.Stdin),
			WithOutput(os.Stdout),
		}, opts...)...)
	}
	vm := newVM()

	fmt.Println("gofart session; :tape shows the tape, :reset clears it, ctrl-D exits")

	var buf strings.Builder
	for {
		prompt := replPrompt
		if buf.Len() > 0 {
			prompt = replContinuePrompt
		}
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				buf.Reset()
				fmt.Println("^C")
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return
			}
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			return
		}

		trimmed := strings.TrimSpace(input)
		if buf.Len() == 0 && strings.HasPrefix(trimmed, ":") {
			switch trimmed {
			case ":tape":
				tapeDumper{vm: vm, out: os.Stdout}.dump()
			case ":reset":
				vm = newVM()
				fmt.Println("tape cleared")
			default:
				fmt.Printf("unknown command %q\n", trimmed)
			}
			continue
		}
		if buf.Len() == 0 && trimmed == "" {
			continue
		}

		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(input)

		src := buf.String()
		if needsMoreInput(src) {
			continue
		}
		buf.Reset()
		line.AppendHistory(src)

		if err := vm.Run(src); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// needsMoreInput reports whether src has loop opens still awaiting
// their closes. An excess of closes is not waited on; the lexer gets to
// report it.
func needsMoreInput(src string) bool {
	depth := 0
	for _, r := range src {
		switch r {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return depth > 0
}
