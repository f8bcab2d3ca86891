package markdown

// pageBreakCommands are LaTeX commands rendered as a paragraph break.
var pageBreakCommands = []string{`\newpage`, `\pagebreak`, `\clearpage`}

// droppedCommands are LaTeX commands removed without a trace.
var droppedCommands = []string{`\begin{figure}`, `\end{figure}`}

func (e *Extractor) applyEscape() outcome {
	src := e.src
	pos := e.cur.pos

	if e.hasPrefix(`\index{`) {
		end := e.findClose(pos+len(`\index{`), '{', '}')
		if end < 0 {
			e.warn(`unterminated \index{} command`)
			return halted
		}
		e.cur.pos = end + 1
		return consumed
	}

	if e.hasPrefix(`\@ref(`) {
		end := e.findClose(pos+len(`\@ref(`), '(', ')')
		if end < 0 {
			e.warn(`unterminated \@ref() cross-reference`)
			e.emitString(`\@ref(`)
			e.cur.pos += len(`\@ref(`)
			return consumed
		}
		e.cur.pos = end + 1
		return consumed
	}

	for _, cmd := range droppedCommands {
		if e.hasPrefix(cmd) {
			e.cur.pos += len(cmd)
			return consumed
		}
	}

	for _, cmd := range pageBreakCommands {
		if e.hasPrefix(cmd) && (pos+len(cmd) >= len(src) || !isWord(src[pos+len(cmd)])) {
			e.paragraphBreak()
			i := skipBlanks(src, pos+len(cmd))
			e.cur.pos = skipLineBreak(src, i)
			return consumed
		}
	}

	// A backslash at the end of a line is a hard line break.
	if pos+1 < len(src) && isLineBreak(src[pos+1]) {
		e.cur.headerMode = true
		e.cur.pos++
		return consumed
	}

	e.cur.escaping = true
	e.cur.prev = '\\'
	e.cur.pos++
	return consumed
}

// applyHeading drops the ATX heading marker and makes the line that
// follows start a new paragraph.
func (e *Extractor) applyHeading() outcome {
	src := e.src
	i := e.cur.pos
	for i < len(src) && src[i] == '#' {
		i++
	}
	if level := i - e.cur.pos; level > 6 {
		return declined
	}
	if i < len(src) && !isBlank(src[i]) && !isLineBreak(src[i]) {
		return declined
	}

	e.cur.pos = skipBlanks(src, i)
	e.cur.headerMode = true
	e.cur.prev = ' '
	return consumed
}

// applyDivFence removes Pandoc fenced div markers (":::" and longer) and
// the single colon used for definition lists. A fence line separates the
// text around it like a paragraph break.
func (e *Extractor) applyDivFence() outcome {
	src := e.src
	i := e.cur.pos
	for i < len(src) && src[i] == ':' {
		i++
	}
	if i-e.cur.pos < 3 {
		e.cur.pos = skipBlanks(src, i)
		return consumed
	}

	end := lineEnd(src, i)
	for e.out.Retract('\n') {
	}
	if e.out.Len() == 0 {
		e.cur.pos = skipLineBreak(src, end)
		return consumed
	}

	e.cur.pos = end
	e.cur.headerMode = true
	e.cur.prev = '\n'
	return consumed
}

func (e *Extractor) applyBlockQuote() outcome {
	src := e.src
	i := e.cur.pos
	depth := 0
	for i < len(src) && src[i] == '>' {
		depth++
		i++
		if i+1 < len(src) && src[i] == ' ' && src[i+1] == '>' {
			i++
		}
	}

	e.cur.pos = skipBlanks(src, i)
	e.out.WriteRepeat('\t', depth)
	e.cur.prev = '\n'
	return consumed
}

// applyTableCell marks pipe-table cells with a tab and drops delimiter rows
// such as "|---|:--:|".
func (e *Extractor) applyTableCell() outcome {
	src := e.src
	if e.atLineStart() {
		end := lineEnd(src, e.cur.pos)
		if isDelimiterRow(src[e.cur.pos:end]) {
			e.cur.pos = skipLineBreak(src, end)
			return consumed
		}
	}

	e.out.WriteString("\t|")
	e.cur.prev = '|'
	e.cur.pos++
	return consumed
}

func isDelimiterRow(line []rune) bool {
	dashes := 0
	for _, r := range line {
		switch r {
		case '-':
			dashes++
		case '|', ':', ' ', '\t':
		default:
			return false
		}
	}
	return dashes >= 3
}

// applySuperscript drops the "^" of Pandoc superscripts (5^th^) and removes
// inline footnotes (^[note]) entirely.
func (e *Extractor) applySuperscript() outcome {
	src := e.src
	pos := e.cur.pos
	if pos+1 < len(src) && src[pos+1] == '[' {
		if end := e.findClose(pos+2, '[', ']'); end >= 0 {
			e.cur.pos = end + 1
			return consumed
		}
		e.warn("unterminated inline footnote")
	}
	e.cur.pos++
	return consumed
}
