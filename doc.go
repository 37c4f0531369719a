/* Package main: gofart, a brainfuck interpreter

The language is eight single-character commands operating on an
unbounded tape of unsigned 32-bit cells through a single data pointer:

	>  move the pointer right
	<  move the pointer left
	+  increment the current cell
	-  decrement the current cell
	.  write the current cell as a character
	,  read a line, storing its first character in the current cell
	[  enter the loop if the current cell is nonzero
	]  return to the matching [ while the current cell is nonzero

Every other character is a comment. Programs are interpreted in three
stages. The lexer turns source text into command tokens, tracking line
and column for every character, commands and comments alike, and
validating bracket nesting as it goes. The parser collapses adjacent
same-command tokens into counted runs, cancels opposed moves and
opposed value changes against each other, and rewrites the cell-zeroing
idiom [-] into a direct assignment; the result is a compact expression
tree in which every node still remembers the source tokens it came
from. The interpreter walks that tree against a growing tape, so any
failure, whether found while parsing or while running, points back at
an exact line and column of the original source.

Departing from convention, the interpreter refuses to move the pointer
left of cell zero and refuses to decrement a cell below zero, reporting
the offending command instead of wrapping; increments wrap at the cell
width as usual.

Each file named on the command line runs on its own interpreter, in
order; a failure is reported and the remaining files still run. With no
arguments and a terminal on stdin an interactive session starts, with
the tape persisting between inputs; with stdin redirected the whole of
stdin is read as one program.
*/
package main
