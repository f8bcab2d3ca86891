package markdown

import (
	"fmt"
	"strings"
	"unicode"
)

// closingPunctuation cannot follow an opening emphasis marker.
const closingPunctuation = ".,;:!?)]}>"

// applyEmphasis removes "*", "_" and "~" runs that wrap text and resolves
// the wrapped text recursively. Markers that do not open a span are copied.
func (e *Extractor) applyEmphasis() outcome {
	src := e.src
	pos := e.cur.pos
	tag := src[pos]

	i := pos
	for i < len(src) && src[i] == tag {
		i++
	}
	run := i - pos

	if i >= len(src) || unicode.IsSpace(src[i]) {
		return declined
	}
	if run == 1 && strings.ContainsRune(closingPunctuation, src[i]) {
		return declined
	}

	start, end := e.findEmphasisClose(i, tag, run)
	if start < 0 {
		e.warn(fmt.Sprintf("missing closing %q", string(src[pos:i])))
		e.emitRunes(src[pos:i])
		e.cur.pos = i
		return consumed
	}

	e.emitString(e.resolve(src[i:start]))
	e.cur.pos = end
	return consumed
}

type emphasisKey struct {
	tag    rune
	double bool
}

// unclosedSpan is a stretch of a line known to hold no closing run.
type unclosedSpan struct {
	from, to int
}

// findEmphasisClose wraps emphasisClose, remembering where a scan came up
// empty. Every closer a later opener in that stretch could use was already
// rejected, so it fails without rescanning the rest of the line.
func (e *Extractor) findEmphasisClose(i int, tag rune, run int) (int, int) {
	key := emphasisKey{tag: tag, double: run >= 2}
	if miss, ok := e.unclosed[key]; ok && i >= miss.from && i <= miss.to {
		return -1, -1
	}

	start, end := emphasisClose(e.src, i, tag, run)
	if start < 0 {
		if e.unclosed == nil {
			e.unclosed = make(map[emphasisKey]unclosedSpan)
		}
		e.unclosed[key] = unclosedSpan{from: i, to: end}
	}
	return start, end
}

// emphasisClose finds the run of tag closing a span of the given length
// whose content starts at i. The closer must be on the same line, must not
// follow whitespace and must not be followed by a letter or digit. Code
// spans and escaped characters are skipped. It returns the bounds of the
// closing run, or -1 and the position where the search gave up.
func emphasisClose(src []rune, i int, tag rune, run int) (int, int) {
	from := i
	for i < len(src) {
		c := src[i]
		switch {
		case isLineBreak(c):
			return -1, i
		case c == '\\':
			if i+1 < len(src) && isLineBreak(src[i+1]) {
				return -1, i
			}
			i += 2
			continue
		case c == '`':
			if end := findUnescaped(src, i+1, '`'); end > 0 {
				i = end + 1
				continue
			}
		case c == tag:
			j := i
			for j < len(src) && src[j] == tag {
				j++
			}
			closes := (run == 1 && j-i != 2) || (run >= 2 && j-i >= 2)
			if closes && i > from && !unicode.IsSpace(src[i-1]) && (j >= len(src) || !isWord(src[j])) {
				return i, j
			}
			i = j
			continue
		}
		i++
	}
	return -1, len(src)
}
