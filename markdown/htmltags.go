package markdown

import (
	"fmt"
	"unicode"

	"go-mdtext/html"
)

// blockTags are HTML elements whose whole subtree is converted to text.
var blockTags = map[string]bool{
	"table": true,
	"ol":    true,
	"ul":    true,
	"sup":   true,
}

// inlineTags are HTML elements whose tags are removed and content kept.
var inlineTags = map[string]bool{
	"p": true, "a": true, "b": true, "i": true, "u": true,
	"code": true, "span": true, "strong": true, "div": true,
	"dl": true, "dt": true, "dd": true, "em": true, "tt": true,
	"li": true,
}

type breakTag struct {
	tag  string
	text string
}

// breakTags are matched before any other tag; the longer spelling first.
var breakTags = []breakTag{
	{`<br>\linebreak`, " "},
	{"<br>", "\n\n"},
	{"<br/>", "\n\n"},
	{"<br />", "\n\n"},
	{"< br/>", "\n\n"},
	{"<p/>", "\n\n"},
	{"<p />", "\n\n"},
}

func (e *Extractor) applyComment() outcome {
	if !e.hasPrefix("<!--") {
		return declined
	}
	end := indexAt(e.src, e.cur.pos+4, "-->")
	if end < 0 {
		e.warn("unterminated HTML comment")
		return halted
	}
	e.cur.pos = end + 3
	return consumed
}

func (e *Extractor) applyBreakTag() outcome {
	for _, b := range breakTags {
		if !e.hasPrefix(b.tag) {
			continue
		}
		if b.text == " " {
			e.emit(' ')
		} else {
			e.paragraphBreak()
		}
		e.cur.pos += len([]rune(b.tag))
		return consumed
	}
	return declined
}

// applyHTMLTag strips known inline tags and any closing tag, and converts
// block elements to text. Anything else, such as "2 < 5" or an autolink, is
// left to be copied.
func (e *Extractor) applyHTMLTag() outcome {
	src := e.src
	pos := e.cur.pos
	name, closing := tagNameAt(src, pos)
	if name == "" {
		return declined
	}

	if !closing && blockTags[name] {
		return e.htmlBlock(name)
	}
	if !closing && !inlineTags[name] {
		return declined
	}

	end := e.findClose(pos+1, '<', '>')
	if end < 0 {
		e.warn(fmt.Sprintf("unterminated <%s> tag", name))
		return declined
	}
	e.cur.pos = end + 1
	return consumed
}

// htmlBlock converts the element starting at the cursor, up to its matching
// closing tag, with the HTML text extractor.
func (e *Extractor) htmlBlock(name string) outcome {
	end := closingTagEnd(e.src, e.cur.pos, name)
	if end < 0 {
		e.warn(fmt.Sprintf("unterminated <%s> block", name))
		return halted
	}

	if e.htmlText == nil {
		e.htmlText = html.NewExtractor()
	}
	e.emitString(e.htmlText.Extract(string(e.src[e.cur.pos:end])))
	e.cur.pos = end
	return consumed
}

// tagNameAt returns the lower-cased element name of the tag at i and
// whether it is a closing tag. The name must be followed by ">", "/" or
// whitespace.
func tagNameAt(src []rune, i int) (string, bool) {
	if i >= len(src) || src[i] != '<' {
		return "", false
	}
	i++
	closing := false
	if i < len(src) && src[i] == '/' {
		closing = true
		i++
	}

	start := i
	for i < len(src) && (isASCIILetter(src[i]) || (i > start && unicode.IsDigit(src[i]))) {
		i++
	}
	if i == start || i >= len(src) {
		return "", false
	}
	if c := src[i]; c != '>' && c != '/' && !unicode.IsSpace(c) {
		return "", false
	}

	name := make([]rune, i-start)
	for k, r := range src[start:i] {
		name[k] = unicode.ToLower(r)
	}
	return string(name), closing
}

// closingTagEnd returns the position just past the "</name>" that closes
// the element opened at start, honoring nested elements of the same name,
// or -1.
func closingTagEnd(src []rune, start int, name string) int {
	depth := 0
	for i := start; i < len(src); i++ {
		if src[i] != '<' {
			continue
		}
		tag, closing := tagNameAt(src, i)
		if tag != name {
			continue
		}
		if !closing {
			depth++
			continue
		}
		depth--
		if depth > 0 {
			continue
		}
		for j := i; j < len(src); j++ {
			if src[j] == '>' {
				return j + 1
			}
		}
		return -1
	}
	return -1
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// maxEntityLength bounds the distance between "&" and ";".
const maxEntityLength = 32

// applyEntity decodes character references such as &amp; or &#169;.
// Unknown names and a missing ";" leave the "&" as text.
func (e *Extractor) applyEntity() outcome {
	src := e.src
	pos := e.cur.pos
	i := pos + 1
	for i < len(src) && src[i] != ';' {
		if i-pos > maxEntityLength || !(isWord(src[i]) || (i == pos+1 && src[i] == '#')) {
			return declined
		}
		i++
	}
	if i >= len(src) {
		return declined
	}

	decoded, ok := html.DecodeEntity(string(src[pos+1 : i]))
	if !ok {
		return declined
	}
	e.emitString(decoded)
	e.cur.pos = i + 1
	return consumed
}
