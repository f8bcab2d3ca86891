package markdown

import "strings"

// crossRefPrefixes are the Quarto cross-reference kinds, as in @fig-plot.
var crossRefPrefixes = map[string]bool{
	"fig": true, "tbl": true, "sec": true, "eq": true, "lst": true,
	"thm": true, "lem": true, "cor": true, "prp": true, "cnj": true,
	"def": true, "exm": true, "exr": true, "sol": true, "rem": true,
	"alg": true, "tip": true, "nte": true, "wrn": true, "imp": true,
	"cau": true,
}

// keywordShortcodes render their argument upper-cased.
var keywordShortcodes = map[string]bool{
	"kbd":  true,
	"meta": true,
	"var":  true,
	"env":  true,
}

// applyBrace removes Pandoc attribute blocks ({#id .class key=value}) and
// dispatches Quarto shortcodes ({{< name args >}}).
func (e *Extractor) applyBrace() outcome {
	if e.hasPrefix("{{<") {
		return e.shortcode()
	}

	end := e.findClose(e.cur.pos+1, '{', '}')
	if end < 0 {
		e.warn("unbalanced '{'")
		e.emit('{')
		e.cur.pos++
		return consumed
	}
	e.cur.pos = end + 1
	return consumed
}

func (e *Extractor) shortcode() outcome {
	start := e.cur.pos + len("{{<")
	end := indexAt(e.src, start, ">}}")
	if end < 0 {
		e.warn("unterminated shortcode")
		return halted
	}
	e.cur.pos = end + len(">}}")

	fields := strings.Fields(string(e.src[start:end]))
	if len(fields) == 0 {
		return consumed
	}
	name := strings.ToLower(fields[0])
	arg := strings.Trim(strings.Join(fields[1:], " "), `"'`)

	switch {
	case name == "pagebreak":
		e.paragraphBreak()
	case keywordShortcodes[name]:
		e.emitString(strings.ToUpper(arg))
	case name == "video":
		e.emitString(arg)
	}
	return consumed
}

// applyCrossReference removes Quarto cross-references such as @fig-plot or
// @tbl-results. A hyphen emitted just before the reference goes with it.
func (e *Extractor) applyCrossReference() outcome {
	src := e.src
	pos := e.cur.pos
	if pos > 0 && isWord(src[pos-1]) {
		return declined
	}

	i := pos + 1
	for i < len(src) && isASCIILetter(src[i]) {
		i++
	}
	if i >= len(src) || src[i] != '-' || !crossRefPrefixes[string(src[pos+1:i])] {
		return declined
	}

	j := i + 1
	for j < len(src) {
		c := src[j]
		if isWord(c) || c == '-' || c == '_' {
			j++
			continue
		}
		// Inner punctuation such as "sec-intro.setup" belongs to the label.
		if (c == '.' || c == ':') && j+1 < len(src) && isWord(src[j+1]) {
			j++
			continue
		}
		break
	}
	if j == i+1 {
		return declined
	}

	if pos > 0 && src[pos-1] == '-' {
		e.out.Retract('-')
	}
	e.cur.pos = j
	if last, ok := e.out.Last(); ok {
		e.cur.prev = last
	}
	return consumed
}
