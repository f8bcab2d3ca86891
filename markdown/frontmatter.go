package markdown

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// Metadata holds the commonly used front matter fields of a document.
type Metadata struct {
	Title    string         `json:"title,omitempty"`
	Subtitle string         `json:"subtitle,omitempty"`
	Author   string         `json:"author,omitempty"`
	Date     string         `json:"date,omitempty"`
	Lang     string         `json:"lang,omitempty"`
	Raw      map[string]any `json:"-"`
}

// StripFrontMatter returns text without its leading YAML ("---") or TOML
// ("+++") front matter block and the blank lines following it. YAML blocks
// may also end with "...". A Pandoc title block ("% Title") runs to the
// first blank line. Text without a complete block is returned unchanged.
func StripFrontMatter(text string) string {
	body, ok := frontMatterBody(text)
	if !ok {
		return text
	}
	return body
}

func frontMatterBody(text string) (string, bool) {
	s := strings.TrimPrefix(text, "\ufeff")
	if isTitleBlock(s) {
		lines, rest := titleBlockLines(s)
		if len(lines) == 0 {
			return "", false
		}
		return skipBlankLines(rest), true
	}

	first, rest, found := cutLine(s)
	if !found {
		return "", false
	}
	delim := strings.TrimRight(first, " \t\r")
	if delim != "---" && delim != "+++" {
		return "", false
	}

	for rest != "" {
		line, next, _ := cutLine(rest)
		t := strings.TrimRight(line, " \t\r")
		if t == delim || (delim == "---" && t == "...") {
			return skipBlankLines(next), true
		}
		rest = next
	}
	return "", false
}

// ParseFrontMatter decodes the front matter of text and returns it along
// with the document body. YAML and TOML front matter are supported.
// Text without front matter yields empty Metadata and the unchanged text.
func ParseFrontMatter(text string) (Metadata, string, error) {
	body, ok := frontMatterBody(text)
	if !ok {
		return Metadata{}, text, nil
	}

	if s := strings.TrimPrefix(text, "\ufeff"); isTitleBlock(s) {
		lines, _ := titleBlockLines(s)
		return parseTitleBlock(lines), body, nil
	}

	var raw map[string]any
	if _, err := frontmatter.Parse(strings.NewReader(strings.TrimPrefix(text, "\ufeff")), &raw); err != nil {
		return Metadata{}, text, fmt.Errorf("parse front matter: %w", err)
	}

	meta := Metadata{
		Title:    field(raw, "title"),
		Subtitle: field(raw, "subtitle"),
		Author:   field(raw, "author"),
		Date:     field(raw, "date"),
		Lang:     field(raw, "lang"),
		Raw:      raw,
	}
	return meta, body, nil
}

// field renders a metadata value as text. Lists are joined with commas and
// maps contribute their "name" entry, as used for authors.
func field(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	return fieldText(v)
}

func fieldText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := fieldText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		return fieldText(v["name"])
	case map[any]any:
		return fieldText(v["name"])
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// isTitleBlock reports whether s opens with a Pandoc title block.
func isTitleBlock(s string) bool {
	return strings.HasPrefix(s, "% ") || strings.HasPrefix(s, "%\t")
}

// titleBlockLines splits a title block off s at the first blank line.
func titleBlockLines(s string) ([]string, string) {
	var lines []string
	for s != "" {
		line, next, _ := cutLine(s)
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
		s = next
	}
	return lines, s
}

// parseTitleBlock reads the title, author and date lines of a Pandoc title
// block. Indented lines continue the previous field; authors are separated
// by semicolons.
func parseTitleBlock(lines []string) Metadata {
	var fields []string
	for _, line := range lines {
		if strings.HasPrefix(line, "%") {
			fields = append(fields, strings.TrimSpace(line[1:]))
			continue
		}
		if n := len(fields); n > 0 {
			fields[n-1] = strings.TrimSpace(fields[n-1] + " " + strings.TrimSpace(line))
		}
	}

	raw := make(map[string]any)
	for i, key := range []string{"title", "author", "date"} {
		if i >= len(fields) || fields[i] == "" {
			continue
		}
		if key != "author" {
			raw[key] = fields[i]
			continue
		}
		var authors []any
		for _, a := range strings.Split(fields[i], ";") {
			if a = strings.TrimSpace(a); a != "" {
				authors = append(authors, a)
			}
		}
		raw[key] = authors
	}

	return Metadata{
		Title:  field(raw, "title"),
		Author: field(raw, "author"),
		Date:   field(raw, "date"),
		Raw:    raw,
	}
}

func cutLine(s string) (string, string, bool) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

func skipBlankLines(s string) string {
	for {
		line, next, found := cutLine(s)
		if !found || strings.TrimSpace(line) != "" {
			return s
		}
		s = next
	}
}
