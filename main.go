package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bfart/gofart/internal/panicerr"
	"github.com/mattn/go-isatty"
)

func main() {
	var trace bool
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.Parse()

	var opts []VMOption
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}

	args := flag.Args()
	if len(args) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			repl(opts...)
			return
		}
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stdin: %v\n", err)
			os.Exit(1)
		}
		if err := runProgram(string(src), opts...); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	// each file runs on its own VM; one failing does not stop the next
	code := 0
	for _, name := range args {
		if err := runFile(name, opts...); err != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", name, err)
			code = 1
		}
	}
	os.Exit(code)
}

func runFile(name string, opts ...VMOption) error {
	src, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	return runProgram(string(src), opts...)
}

// runProgram runs one source on a fresh VM wired to the console.
func runProgram(src string, opts ...VMOption) error {
	vm := New(append([]VMOption{
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
	}, opts...)...)
	defer vm.Close()
	return panicerr.Recover("run", func() error {
		return vm.Run(src)
	})
}
