package markdown

import "unicode"

// applyMath renders $inline$ and $$display$$ math, replacing LaTeX symbol
// commands with their Unicode characters.
func (e *Extractor) applyMath() outcome {
	src := e.src
	pos := e.cur.pos

	if e.hasPrefix("$$") {
		end := indexAt(src, pos+2, "$$")
		if end < 0 {
			e.warn("missing closing $$")
			e.emitString("$$")
			e.cur.pos = pos + 2
			return consumed
		}
		body := src[pos+2 : end]
		body = trimTrailingBreak(body[skipLineBreak(body, 0):])
		e.emitString(SubstituteLaTeX(string(body)))
		e.cur.pos = end + 2
		return consumed
	}

	// "$5 and $10" is currency, not math.
	if pos+1 >= len(src) || unicode.IsSpace(src[pos+1]) {
		return declined
	}
	end := findUnescaped(src, pos+1, '$')
	if end < 0 || unicode.IsSpace(src[end-1]) {
		return declined
	}
	if end+1 < len(src) && unicode.IsDigit(src[end+1]) {
		return declined
	}

	e.emitString(SubstituteLaTeX(string(src[pos+1 : end])))
	e.cur.pos = end + 1
	return consumed
}

// trimTrailingBreak removes one trailing line break (CRLF counts once).
func trimTrailingBreak(rs []rune) []rune {
	n := len(rs)
	switch {
	case n > 0 && rs[n-1] == '\n':
		n--
		if n > 0 && rs[n-1] == '\r' {
			n--
		}
	case n > 0 && rs[n-1] == '\r':
		n--
	}
	return rs[:n]
}
