package html

import (
	"bytes"
	"unicode/utf8"
)

// Buffer accumulates extracted text. It only grows between Resets; the
// single exception is Retract, which drops the most recent rune.
type Buffer struct {
	buf bytes.Buffer
}

// Reset empties the buffer and makes room for roughly hint bytes.
func (b *Buffer) Reset(hint int) {
	b.buf.Reset()
	if hint > 0 {
		b.buf.Grow(hint)
	}
}

// WriteRune appends a single character.
func (b *Buffer) WriteRune(r rune) {
	b.buf.WriteRune(r)
}

// WriteRunes appends a run of characters.
func (b *Buffer) WriteRunes(rs []rune) {
	for _, r := range rs {
		b.buf.WriteRune(r)
	}
}

// WriteString appends s as-is.
func (b *Buffer) WriteString(s string) {
	b.buf.WriteString(s)
}

// WriteRepeat appends r n times.
func (b *Buffer) WriteRepeat(r rune, n int) {
	for i := 0; i < n; i++ {
		b.buf.WriteRune(r)
	}
}

// Len returns the size of the accumulated text in bytes.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Last returns the most recently written rune.
func (b *Buffer) Last() (rune, bool) {
	if b.buf.Len() == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeLastRune(b.buf.Bytes())
	return r, true
}

// Retract removes the last rune if it equals r and reports whether it did.
func (b *Buffer) Retract(r rune) bool {
	last, size := utf8.DecodeLastRune(b.buf.Bytes())
	if size == 0 || last != r {
		return false
	}
	b.buf.Truncate(b.buf.Len() - size)
	return true
}

// String returns the accumulated text.
func (b *Buffer) String() string {
	return b.buf.String()
}
