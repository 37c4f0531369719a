package main

import (
	"fmt"
	"io"
)

// A tapeDumper prints a VM's tape and pointer, trimming the untouched
// zero tail so dumps stay readable as the tape grows in chunks.
type tapeDumper struct {
	vm  *VM
	out io.Writer

	width int // cells per line, 8 by default
}

func (d tapeDumper) dump() {
	width := d.width
	if width == 0 {
		width = 8
	}

	cells := d.vm.tape.Cells()
	n := len(cells)
	for n > 0 && cells[n-1] == 0 {
		n--
	}
	// always show the pointer's row, even when it sits in the zero tail
	if n <= d.vm.ptr {
		n = d.vm.ptr + 1
	}

	fmt.Fprintf(d.out, "tape len=%v ptr @%v\n", len(cells), d.vm.ptr)
	for base := 0; base < n; base += width {
		fmt.Fprintf(d.out, "@%04d:", base)
		for i := base; i < base+width && i < n; i++ {
			mark := " "
			if i == d.vm.ptr {
				mark = "*"
			}
			fmt.Fprintf(d.out, "%s%v", mark, cells[i])
		}
		io.WriteString(d.out, "\n")
	}
}
