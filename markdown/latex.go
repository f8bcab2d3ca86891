package markdown

import "strings"

// SubstituteLaTeX replaces LaTeX symbol commands such as \alpha or \leq
// with the Unicode character they render as. A command is the backslash
// followed by the longest run of ASCII letters; unknown commands are kept.
func SubstituteLaTeX(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != '\\' {
			sb.WriteByte(text[i])
			i++
			continue
		}

		j := i + 1
		for j < len(text) && isASCIILetter(rune(text[j])) {
			j++
		}
		if j == i+1 {
			sb.WriteByte('\\')
			i++
			continue
		}
		if r, ok := latexSymbols[text[i+1:j]]; ok {
			sb.WriteRune(r)
		} else {
			sb.WriteString(text[i:j])
		}
		i = j
	}
	return sb.String()
}
