// Package lineio reads line-oriented console input.
package lineio

import (
	"bufio"
	"io"
)

// A Reader consumes newline-terminated lines from an underlying reader,
// handing back each line's first rune.
type Reader struct {
	br *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return &Reader{br}
	}
	return &Reader{bufio.NewReader(r)}
}

// ReadFirstRune consumes one full line, including its terminator, and
// returns the line's first rune. A line holding only a newline yields
// that newline itself. Exhausted input returns io.EOF; a line cut short
// by end of input still yields its first rune.
func (rd *Reader) ReadFirstRune() (rune, error) {
	first, _, err := rd.br.ReadRune()
	if err != nil {
		return 0, err
	}
	for r := first; r != '\n'; {
		r, _, err = rd.br.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}
	}
	return first, nil
}
