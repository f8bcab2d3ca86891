package markdown

import "unicode"

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

func isWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// hasPrefixAt reports whether src[i:] begins with s.
func hasPrefixAt(src []rune, i int, s string) bool {
	for _, r := range s {
		if i >= len(src) || src[i] != r {
			return false
		}
		i++
	}
	return true
}

// indexAt returns the index of the first occurrence of s in src at or after
// i, or -1.
func indexAt(src []rune, i int, s string) int {
	for ; i < len(src); i++ {
		if hasPrefixAt(src, i, s) {
			return i
		}
	}
	return -1
}

// findUnescaped returns the index of the first r at or after i that is not
// escaped by a backslash and lies on the same line, or -1.
func findUnescaped(src []rune, i int, r rune) int {
	for ; i < len(src); i++ {
		switch c := src[i]; {
		case isLineBreak(c):
			return -1
		case c == '\\':
			if i+1 < len(src) && !isLineBreak(src[i+1]) {
				i++
			}
		case c == r:
			return i
		}
	}
	return -1
}

// findClose returns the index of the close rune balancing an open rune
// that was consumed just before i. Nesting and backslash escapes are
// honored and the search never leaves the current line. Returns -1 when
// unbalanced.
func findClose(src []rune, i int, open, close rune) int {
	depth := 1
	for ; i < len(src); i++ {
		switch c := src[i]; {
		case isLineBreak(c):
			return -1
		case c == '\\':
			if i+1 < len(src) && !isLineBreak(src[i+1]) {
				i++
			}
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// bracketPair identifies the delimiters matched by findClose.
type bracketPair struct {
	open, close rune
}

// matchPairs maps every opener of src to the position of its closer on the
// same line, or -1, using the rules of findClose.
func matchPairs(src []rune, open, close rune) map[int]int {
	closers := make(map[int]int)
	var stack []int
	unmatched := func() {
		for _, p := range stack {
			closers[p] = -1
		}
		stack = stack[:0]
	}

	for i := 0; i < len(src); i++ {
		switch c := src[i]; {
		case isLineBreak(c):
			unmatched()
		case c == '\\':
			if i+1 < len(src) && !isLineBreak(src[i+1]) {
				i++
			}
		case c == open:
			stack = append(stack, i)
		case c == close:
			if n := len(stack); n > 0 {
				closers[stack[n-1]] = i
				stack = stack[:n-1]
			}
		}
	}
	unmatched()
	return closers
}

// findClose is the cached form of findClose for an opener at i-1 in the
// source being extracted. Each bracket pair is indexed once per pass, so a
// line full of unbalanced openers is not rescanned for each of them.
func (e *Extractor) findClose(i int, open, close rune) int {
	if i < 1 {
		return findClose(e.src, i, open, close)
	}

	key := bracketPair{open, close}
	closers, ok := e.closers[key]
	if !ok {
		if e.closers == nil {
			e.closers = make(map[bracketPair]map[int]int)
		}
		closers = matchPairs(e.src, open, close)
		e.closers[key] = closers
	}

	// Openers seen as escaped by the index fall back to a direct scan.
	if end, ok := closers[i-1]; ok {
		return end
	}
	return findClose(e.src, i, open, close)
}

// lineEnd returns the index of the line break ending the line containing i,
// or len(src).
func lineEnd(src []rune, i int) int {
	for i < len(src) && !isLineBreak(src[i]) {
		i++
	}
	return i
}

// skipLineBreak steps over one line break (CRLF counts once) at i.
func skipLineBreak(src []rune, i int) int {
	if i < len(src) && src[i] == '\r' {
		i++
		if i < len(src) && src[i] == '\n' {
			i++
		}
		return i
	}
	if i < len(src) && src[i] == '\n' {
		i++
	}
	return i
}

func skipBlanks(src []rune, i int) int {
	for i < len(src) && isBlank(src[i]) {
		i++
	}
	return i
}
