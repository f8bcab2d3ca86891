// Package markdown extracts readable plain text from Markdown documents,
// including the R Markdown, Quarto and Pandoc extensions commonly found in
// technical writing: chunk directives, math, shortcodes, cross-references,
// fenced divs and embedded HTML.
//
// Extraction is a single forward pass over the document. Malformed
// constructs never cause a panic: most degrade to literal text, a few stop
// the pass early, and both leave a human-readable diagnostic behind.
package markdown

import (
	"go-mdtext/html"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// maxNesting bounds how deep nested inline content (emphasis inside a link
// label inside emphasis...) is resolved. Deeper content is copied verbatim.
const maxNesting = 64

// cursor is the scanning state threaded through the rules.
type cursor struct {
	pos        int
	escaping   bool // previous character was a consumed backslash
	headerMode bool // the next single line break ends a block
	prev       rune // last character seen or emitted
}

// Extractor converts Markdown into plain text.
//
// An Extractor reuses its buffers between calls and is not safe for
// concurrent use; give every goroutine its own instance.
type Extractor struct {
	src         []rune
	out         html.Buffer
	cur         cursor
	diagnostics []string

	// Per-pass scan caches, cleared whenever src changes.
	closers  map[bracketPair]map[int]int
	unclosed map[emphasisKey]unclosedSpan

	// child resolves nested inline content; created on first use.
	child *Extractor
	depth int

	htmlText *html.Extractor
	logger   *zap.Logger
	nfc      bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used to report diagnostics at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithNFC applies Unicode NFC normalization to the extracted text.
func WithNFC(enabled bool) Option {
	return func(e *Extractor) {
		e.nfc = enabled
	}
}

// New returns an Extractor configured with opts.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(zap.String("component", "markdown"))
	return e
}

// Extract returns the plain text of the Markdown document text. Leading
// front matter is skipped. Diagnostics from the call are available through
// Diagnostics until the next call.
func (e *Extractor) Extract(text string) string {
	e.diagnostics = nil
	e.out.Reset(len(text) * 2)
	if text == "" {
		return ""
	}

	e.run([]rune(StripFrontMatter(text)), '\n')

	result := e.out.String()
	if e.nfc {
		result = norm.NFC.String(result)
	}
	return result
}

// Diagnostics returns the warnings recorded by the last Extract call.
func (e *Extractor) Diagnostics() []string {
	return e.diagnostics
}

// Extract is a convenience wrapper that runs a fresh Extractor over text.
func Extract(text string) (string, []string) {
	e := New()
	out := e.Extract(text)
	return out, e.Diagnostics()
}

func (e *Extractor) run(src []rune, prev rune) {
	e.src = src
	e.cur = cursor{prev: prev}
	clear(e.closers)
	clear(e.unclosed)

	for e.cur.pos < len(e.src) {
		before := e.cur.pos
		if !e.step() {
			return
		}
		if e.cur.pos <= before {
			e.copyLiteral()
		}
	}
}

// step applies the first rule that consumes input at the cursor, falling
// back to copying the character. It returns false when the pass must stop.
func (e *Extractor) step() bool {
	if e.cur.escaping {
		e.copyLiteral()
		return true
	}

	r := e.src[e.cur.pos]
	for i := range rules {
		if !rules[i].match(e, r) {
			continue
		}
		switch rules[i].apply(e) {
		case consumed:
			return true
		case halted:
			e.logger.Debug("extraction halted",
				zap.String("rule", rules[i].name),
				zap.Int("offset", e.cur.pos))
			return false
		}
	}

	e.copyLiteral()
	return true
}

// resolve runs the child extractor over nested inline content.
func (e *Extractor) resolve(content []rune) string {
	if len(content) == 0 {
		return ""
	}
	if e.depth >= maxNesting {
		return string(content)
	}
	if e.child == nil {
		e.child = &Extractor{logger: e.logger, depth: e.depth + 1}
	}

	c := e.child
	c.diagnostics = nil
	c.out.Reset(len(content) * 2)
	c.run(content, ' ')
	e.diagnostics = append(e.diagnostics, c.diagnostics...)

	return c.out.String()
}

func (e *Extractor) warn(msg string) {
	e.diagnostics = append(e.diagnostics, msg)
	e.logger.Debug("markdown diagnostic",
		zap.String("message", msg),
		zap.Int("offset", e.cur.pos),
		zap.Int("depth", e.depth))
}

func (e *Extractor) copyLiteral() {
	e.cur.escaping = false
	e.emit(e.src[e.cur.pos])
	e.cur.pos++
}

func (e *Extractor) emit(r rune) {
	e.out.WriteRune(r)
	e.cur.prev = r
}

func (e *Extractor) emitString(s string) {
	if s == "" {
		return
	}
	e.out.WriteString(s)
	e.cur.prev, _ = e.out.Last()
}

func (e *Extractor) emitRunes(rs []rune) {
	if len(rs) == 0 {
		return
	}
	e.out.WriteRunes(rs)
	e.cur.prev = rs[len(rs)-1]
}

// paragraphBreak emits a blank line and leaves the cursor at a line start.
func (e *Extractor) paragraphBreak() {
	e.out.WriteString("\n\n")
	e.cur.prev = '\n'
}

func (e *Extractor) hasPrefix(s string) bool {
	return hasPrefixAt(e.src, e.cur.pos, s)
}

func (e *Extractor) atLineStart() bool {
	return isLineBreak(e.cur.prev)
}
