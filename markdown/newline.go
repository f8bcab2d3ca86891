package markdown

import (
	"strings"
	"unicode"
)

// blockMarkers start a line whose preceding break must be kept, since the
// line opens a quote, list item, table row, definition or footnote.
const blockMarkers = ">-*+|:^"

// applyLineBreak decides how a run of line breaks is rendered. Soft breaks
// inside a paragraph become spaces, blank lines are kept, and breaks before
// structural lines are preserved.
func (e *Extractor) applyLineBreak() outcome {
	src := e.src
	pos := e.cur.pos

	forced := 0
	if pos >= 2 && src[pos-1] == ' ' && src[pos-2] == ' ' {
		forced = 1
	}

	breaks := 0
	rule := false
	for pos < len(src) && isLineBreak(src[pos]) {
		pos = skipLineBreak(src, pos)
		breaks++

		if breaks == 1 && !e.atLineStart() {
			if end := setextUnderline(src, pos); end > pos {
				pos = end
				e.cur.headerMode = true
				continue
			}
		}
		if breaks >= 2 {
			if end := thematicBreak(src, pos); end > pos {
				pos = end
				rule = true
			}
		}
	}
	e.cur.pos = pos

	count := breaks + forced
	if rule && count > 2 {
		count = 2
	}

	defer func() {
		e.cur.headerMode = false
		e.cur.escaping = false
	}()

	// Trailing breaks carry no text.
	if pos >= len(src) {
		return consumed
	}

	switch {
	case count > 1:
		e.out.WriteRepeat('\n', count)
		e.cur.prev = '\n'
	case e.cur.headerMode:
		e.paragraphBreak()
	case e.keepsLineBreak(pos):
		e.emit('\n')
	default:
		e.emit(' ')
	}
	return consumed
}

// keepsLineBreak reports whether the line starting at i opens a structure
// that needs its own line.
func (e *Extractor) keepsLineBreak(i int) bool {
	src := e.src
	indent := 0
	for i < len(src) && isBlank(src[i]) {
		if src[i] == '\t' {
			indent += 4
		} else {
			indent++
		}
		i++
	}
	if indent >= 4 {
		return true
	}
	if i >= len(src) {
		return false
	}
	if strings.ContainsRune(blockMarkers, src[i]) {
		return true
	}
	return orderedListItem(src, i)
}

// orderedListItem reports whether src[i:] starts with "12." or "12)".
func orderedListItem(src []rune, i int) bool {
	start := i
	for i < len(src) && unicode.IsDigit(src[i]) {
		i++
	}
	return i > start && i < len(src) && (src[i] == '.' || src[i] == ')')
}

// setextUnderline returns the end of a line made only of "=" or "-"
// characters starting at i, or i when there is none.
func setextUnderline(src []rune, i int) int {
	if i >= len(src) || (src[i] != '=' && src[i] != '-') {
		return i
	}
	c := src[i]
	j := i
	for j < len(src) && src[j] == c {
		j++
	}
	if j-i < 2 {
		return i
	}
	j = skipBlanks(src, j)
	if j < len(src) && !isLineBreak(src[j]) {
		return i
	}
	return j
}

// thematicBreak returns the end of a "---", "***" or "___" line starting at
// i, or i when there is none. Blanks between the characters are allowed.
func thematicBreak(src []rune, i int) int {
	if i >= len(src) || (src[i] != '-' && src[i] != '*' && src[i] != '_') {
		return i
	}
	c := src[i]
	n := 0
	j := i
	for j < len(src) && !isLineBreak(src[j]) {
		switch src[j] {
		case c:
			n++
		case ' ', '\t':
		default:
			return i
		}
		j++
	}
	if n < 3 {
		return i
	}
	return j
}
