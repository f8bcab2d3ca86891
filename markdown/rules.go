package markdown

// outcome reports what a rule did with the input at the cursor.
type outcome int

const (
	declined outcome = iota // not applicable here; try the next rule
	consumed                // input consumed; continue scanning
	halted                  // unrecoverable; stop and keep what was extracted
)

type rule struct {
	name  string
	match func(e *Extractor, r rune) bool
	apply func(e *Extractor) outcome
}

// rules are evaluated in order at every cursor position. The order encodes
// construct precedence and must not be changed casually.
var rules []rule

func init() {
	rules = []rule{
		{"escape", is('\\'), (*Extractor).applyEscape},
		{"heading", atLineStart('#'), (*Extractor).applyHeading},
		{"div-fence", atLineStart(':'), (*Extractor).applyDivFence},
		{"blockquote", atLineStart('>'), (*Extractor).applyBlockQuote},
		{"entity", is('&'), (*Extractor).applyEntity},
		{"code", is('`'), (*Extractor).applyCode},
		{"image", is('!'), (*Extractor).applyImage},
		{"link", is('['), (*Extractor).applyLink},
		{"attributes", is('{'), (*Extractor).applyBrace},
		{"superscript", is('^'), (*Extractor).applySuperscript},
		{"cross-reference", is('@'), (*Extractor).applyCrossReference},
		{"math", is('$'), (*Extractor).applyMath},
		{"html-comment", is('<'), (*Extractor).applyComment},
		{"html-break", is('<'), (*Extractor).applyBreakTag},
		{"html-tag", is('<'), (*Extractor).applyHTMLTag},
		{"line-break", lineBreak, (*Extractor).applyLineBreak},
		{"emphasis", emphasisMarker, (*Extractor).applyEmphasis},
		{"table", is('|'), (*Extractor).applyTableCell},
	}
}

func is(c rune) func(*Extractor, rune) bool {
	return func(_ *Extractor, r rune) bool {
		return r == c
	}
}

func atLineStart(c rune) func(*Extractor, rune) bool {
	return func(e *Extractor, r rune) bool {
		return r == c && e.atLineStart()
	}
}

func lineBreak(_ *Extractor, r rune) bool {
	return isLineBreak(r)
}

func emphasisMarker(e *Extractor, r rune) bool {
	return (r == '*' || r == '_' || r == '~') && !isWord(e.cur.prev)
}
