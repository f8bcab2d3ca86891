package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// chunkOption matches R Markdown chunk options that hide a chunk,
	// e.g. ```{r setup, include=FALSE}.
	chunkOption = regexp.MustCompile(`(?i)\b(include|echo)\s*=\s*(FALSE|F)\b`)
	// chunkDirective matches Quarto "#|" option lines that hide a chunk.
	chunkDirective = regexp.MustCompile(`^\s*#\|\s*(include|echo)\s*:\s*false\s*$`)
)

// codeLanguages are inline code prefixes that request evaluation; the
// prefix is dropped and the code kept.
var codeLanguages = []string{"`r ", "`python "}

type codeHelper struct {
	prefix string
	render func(args []string) string
}

// codeHelpers are inline R calls that render user interface text.
var codeHelpers = []codeHelper{
	{"`r keys(", func(args []string) string {
		return `"` + strings.Join(args, "+") + `"`
	}},
	{"`r menu(", func(args []string) string {
		for i, a := range args {
			args[i] = `"` + a + `"`
		}
		return strings.Join(args, " > ")
	}},
	{"`r drop_cap(", func(args []string) string {
		return strings.ToUpper(strings.Join(args, ""))
	}},
}

func (e *Extractor) applyCode() outcome {
	if e.hasPrefix("```") {
		return e.fencedCode()
	}
	return e.inlineCode()
}

// fencedCode renders a fenced block with every line indented by a tab. The
// info line and "#|" directives are dropped, as are chunks hidden by their
// options.
func (e *Extractor) fencedCode() outcome {
	src := e.src
	pos := e.cur.pos

	i := pos
	for i < len(src) && src[i] == '`' {
		i++
	}
	fence := strings.Repeat("`", i-pos)

	end := indexAt(src, i, fence)
	if end < 0 {
		e.warn("unterminated fenced code block")
		return halted
	}
	body := src[i:end]
	next := end + len(fence)
	for next < len(src) && src[next] == '`' {
		next++
	}
	e.cur.pos = next

	nl := lineEnd(body, 0)
	if nl == len(body) {
		// "```code```" on a single line.
		e.emitRunes(body)
		return consumed
	}

	lines := codeLines(body[nl:])
	if chunkOption.MatchString(string(body[:nl])) || hiddenByDirective(lines) {
		for e.cur.pos < len(src) && isLineBreak(src[e.cur.pos]) {
			e.cur.pos = skipLineBreak(src, e.cur.pos)
		}
		return consumed
	}

	for i, l := range lines {
		if isDirective(l.text) {
			continue
		}
		if i == len(lines)-1 && len(l.text) == 0 {
			break
		}
		e.out.WriteRunes(l.breaks)
		e.out.WriteRune('\t')
		e.out.WriteRunes(l.text)
	}
	if last, ok := e.out.Last(); ok {
		e.cur.prev = last
	}

	if e.cur.pos < len(src) && isLineBreak(src[e.cur.pos]) {
		e.cur.headerMode = true
	}
	return consumed
}

// codeLine is a line of a code block and the line breaks preceding it.
type codeLine struct {
	breaks []rune
	text   []rune
}

func codeLines(body []rune) []codeLine {
	var lines []codeLine
	for i := 0; i < len(body); {
		j := i
		for j < len(body) && isLineBreak(body[j]) {
			j++
		}
		k := lineEnd(body, j)
		lines = append(lines, codeLine{breaks: body[i:j], text: body[j:k]})
		i = k
	}
	return lines
}

func isDirective(line []rune) bool {
	return strings.HasPrefix(strings.TrimSpace(string(line)), "#|")
}

func hiddenByDirective(lines []codeLine) bool {
	for _, l := range lines {
		if !isDirective(l.text) {
			continue
		}
		if chunkDirective.MatchString(string(l.text)) {
			return true
		}
	}
	return false
}

func (e *Extractor) inlineCode() outcome {
	for _, h := range codeHelpers {
		if !e.hasPrefix(h.prefix) {
			continue
		}
		args, next, ok := e.helperArgs(e.cur.pos + len([]rune(h.prefix)))
		if ok {
			e.emitString(h.render(args))
			e.cur.pos = next
			return consumed
		}
		e.warn(fmt.Sprintf("malformed %s) call", strings.TrimPrefix(h.prefix, "`r ")))
		break
	}

	src := e.src
	start := e.cur.pos + 1
	for _, lang := range codeLanguages {
		if e.hasPrefix(lang) {
			start = e.cur.pos + len([]rune(lang))
			break
		}
	}

	if start == e.cur.pos+1 && start < len(src) && src[start] == '`' {
		return e.doubleBacktickCode(start + 1)
	}

	i := start
	for i < len(src) && src[i] != '`' {
		if isLineBreak(src[i]) {
			e.warn("unterminated inline code")
			e.emitRunes(src[start:i])
			e.emit('\n')
			e.cur.pos = skipLineBreak(src, i)
			return consumed
		}
		i++
	}
	e.emitRunes(src[start:i])
	if i < len(src) {
		i++
	} else {
		e.warn("unterminated inline code")
	}
	e.cur.pos = i
	return consumed
}

// doubleBacktickCode handles ``code`` spans, which may contain single
// backticks. One space of padding on both sides is removed.
func (e *Extractor) doubleBacktickCode(start int) outcome {
	src := e.src
	end := indexAt(src, start, "``")
	if end < 0 {
		e.warn("missing closing ``")
		e.emitString("``")
		e.cur.pos = start
		return consumed
	}

	content := src[start:end]
	if len(content) >= 2 && content[0] == ' ' && content[len(content)-1] == ' ' {
		content = content[1 : len(content)-1]
	}
	e.emitRunes(content)
	e.cur.pos = end + 2
	return consumed
}

// helperArgs parses the quoted arguments of a helper call starting at i,
// up to and including the closing backtick. A c(...) vector is flattened.
func (e *Extractor) helperArgs(i int) ([]string, int, bool) {
	src := e.src
	vector := false
	if hasPrefixAt(src, i, "c(") {
		vector = true
		i += 2
	}

	var args []string
	for {
		for i < len(src) && (isBlank(src[i]) || src[i] == ',') {
			i++
		}
		if i >= len(src) || (src[i] != '\'' && src[i] != '"') {
			break
		}
		end := findUnescaped(src, i+1, src[i])
		if end < 0 {
			return nil, 0, false
		}
		args = append(args, e.resolve(src[i+1:end]))
		i = end + 1
	}

	closers := ")"
	if vector {
		closers = "))"
	}
	for _, c := range closers {
		i = skipBlanks(src, i)
		if i >= len(src) || src[i] != c {
			return nil, 0, false
		}
		i++
	}
	i = skipBlanks(src, i)
	if len(args) == 0 || i >= len(src) || src[i] != '`' {
		return nil, 0, false
	}
	return args, i + 1, true
}
