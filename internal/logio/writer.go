// Package logio bridges io.Writer output into formatted logging
// functions, line by line.
package logio

import "bytes"

// Writer implements an io.Writer around a formatted logging function.
// The pipeline writing through it is single threaded, so no locking is
// done.
type Writer struct {
	Logf func(string, ...interface{})

	buf bytes.Buffer
}

// Write appends the given bytes into an internal buffer, then flushes
// any completed lines through Logf.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync flushes anything remaining in the internal buffer.
func (lw *Writer) Sync() error {
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		i := bytes.IndexByte(lw.buf.Bytes(), '\n')
		if i >= 0 {
			lw.Logf("%s", lw.buf.Next(i))
			lw.buf.Next(1)
		} else if all {
			lw.Logf("%s", lw.buf.Next(lw.buf.Len()))
		} else {
			break
		}
	}
}
