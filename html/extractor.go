package html

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// separator is a pending break between two runs of text. Larger values win.
type separator int

const (
	sepNone separator = iota
	sepSpace
	sepCell
	sepLine
	sepParagraph
)

var lineElements = map[string]bool{
	"div": true, "section": true, "article": true, "header": true, "footer": true,
	"ul": true, "ol": true, "li": true, "dl": true, "dt": true, "dd": true,
	"table": true, "thead": true, "tbody": true, "tfoot": true, "tr": true,
	"caption": true, "figure": true, "figcaption": true, "hr": true,
}

var paragraphElements = map[string]bool{
	"p": true, "blockquote": true, "pre": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Extractor converts an HTML fragment into plain text: entities decoded,
// tags removed, table cells separated by tabs and rows by line breaks.
//
// An Extractor reuses its buffer between calls and must not be shared
// between goroutines.
type Extractor struct {
	buf     Buffer
	pending separator
	pre     int
}

// NewExtractor returns an Extractor ready for use.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the readable text of src.
func (x *Extractor) Extract(src string) string {
	x.buf.Reset(len(src))
	x.pending = sepNone
	x.pre = 0

	if strings.TrimSpace(src) == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return ""
	}

	removeNoisyElements(doc, nil)
	x.walk(doc)

	return x.buf.String()
}

func (x *Extractor) walk(node *html.Node) {
	switch node.Type {
	case html.TextNode:
		x.text(node.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		switch {
		case node.Data == "br":
			x.request(sepLine)
			return
		case node.Data == "img":
			return
		case node.Data == "td" || node.Data == "th":
			x.request(sepCell)
		case paragraphElements[node.Data]:
			x.request(sepParagraph)
		case lineElements[node.Data]:
			x.request(sepLine)
		}
	}

	if node.Type == html.ElementNode && node.Data == "pre" {
		x.pre++
		defer func() { x.pre-- }()
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		x.walk(child)
	}

	if node.Type == html.ElementNode {
		switch {
		case paragraphElements[node.Data]:
			x.request(sepParagraph)
		case lineElements[node.Data]:
			x.request(sepLine)
		}
	}
}

func (x *Extractor) text(s string) {
	if x.pre > 0 {
		if s != "" {
			x.flush()
			x.buf.WriteString(s)
		}
		return
	}

	for _, r := range s {
		if unicode.IsSpace(r) {
			x.request(sepSpace)
			continue
		}
		x.flush()
		x.buf.WriteRune(r)
	}
}

func (x *Extractor) request(s separator) {
	if s > x.pending {
		x.pending = s
	}
}

// flush writes the pending separator, never at the start of the output.
func (x *Extractor) flush() {
	if x.buf.Len() > 0 {
		switch x.pending {
		case sepSpace:
			x.buf.WriteRune(' ')
		case sepCell:
			x.buf.WriteRune('\t')
		case sepLine:
			x.buf.WriteRune('\n')
		case sepParagraph:
			x.buf.WriteString("\n\n")
		}
	}
	x.pending = sepNone
}
