package markdown

// applyImage drops images entirely, including their alt text, target and
// reference label.
func (e *Extractor) applyImage() outcome {
	src := e.src
	pos := e.cur.pos
	if pos+1 >= len(src) || src[pos+1] != '[' {
		return declined
	}

	labelStart := pos + 2
	end, ok := e.linkEnd(labelStart, "image")
	if !ok {
		e.emitString("![")
		e.cur.pos = labelStart
		return consumed
	}
	e.cur.pos = end
	return consumed
}

// applyLink keeps the resolved label of inline, reference and bracketed
// span links. Footnote references are dropped.
func (e *Extractor) applyLink() outcome {
	src := e.src
	pos := e.cur.pos

	if pos+1 < len(src) && src[pos+1] == '^' {
		if end := e.findClose(pos+1, '[', ']'); end >= 0 {
			e.cur.pos = end + 1
			// A footnote definition keeps its text but not the ":".
			if e.atLineStart() && end+1 < len(src) && src[end+1] == ':' {
				e.cur.pos = skipBlanks(src, end+2)
			}
			return consumed
		}
	}

	labelStart := pos + 1
	end, ok := e.linkEnd(labelStart, "link")
	if !ok {
		e.emit('[')
		e.cur.pos = labelStart
		return consumed
	}

	bracket := e.findClose(labelStart, '[', ']')
	e.emitString(e.resolve(src[labelStart:bracket]))
	e.cur.pos = end
	return consumed
}

// linkEnd validates the link or image whose label starts at labelStart and
// returns the position just past its target. A label directly followed by
// an attribute block ("[text]{.class}") ends at the block, which the
// attribute rule removes.
func (e *Extractor) linkEnd(labelStart int, kind string) (int, bool) {
	src := e.src
	bracket := e.findClose(labelStart, '[', ']')
	if bracket < 0 {
		e.warn(kind + " is missing closing ']'")
		return 0, false
	}

	i := bracket + 1
	if i >= len(src) {
		e.warn(kind + " has no target")
		return 0, false
	}

	switch src[i] {
	case '(':
		end := e.findClose(i+1, '(', ')')
		if end < 0 {
			e.warn(kind + " is missing closing ')'")
			return 0, false
		}
		return end + 1, true
	case '[':
		end := e.findClose(i+1, '[', ']')
		if end < 0 {
			e.warn(kind + " reference is missing closing ']'")
			return 0, false
		}
		return end + 1, true
	case '{':
		return i, true
	}

	e.warn(kind + " has no target")
	return 0, false
}
