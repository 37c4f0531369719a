// Package runeio writes runes efficiently to byte-oriented writers.
package runeio

import "io"

// WriteRune writes a rune to the given writer:
// - ASCII runes are written directly as bytes
// - other runes use the writer's own rune or string support when
//   offered, falling back to a utf8 byte write
func WriteRune(w io.Writer, r rune) (n int, err error) {
	type runeWriter interface {
		WriteRune(r rune) (n int, err error)
	}
	if r < 0x80 {
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Write([]byte{byte(r)})
	}
	if rw, ok := w.(runeWriter); ok {
		return rw.WriteRune(r)
	}
	if sw, ok := w.(io.StringWriter); ok {
		return sw.WriteString(string(r))
	}
	return w.Write([]byte(string(r)))
}
