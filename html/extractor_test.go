package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractorExtract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "superscript",
			input:    "<sup>2</sup>",
			expected: "2",
		},
		{
			name:     "table",
			input:    "<table><tr><th>Name</th><th>Age</th></tr><tr><td>Bob</td><td>3</td></tr></table>",
			expected: "Name\tAge\nBob\t3",
		},
		{
			name:     "lists",
			input:    "<ul>\n  <li>One</li>\n  <li>Two <b>bold</b></li>\n</ul>",
			expected: "One\nTwo bold",
		},
		{
			name:     "ordered list with paragraphs",
			input:    "<ol><li><p>First</p></li><li><p>Second</p></li></ol>",
			expected: "First\n\nSecond",
		},
		{
			name:     "entities decoded",
			input:    "<ul><li>Fish &amp; chips &mdash; &#169;</li></ul>",
			expected: "Fish & chips — ©",
		},
		{
			name:     "whitespace collapsed",
			input:    "<table>\n\t<tr>\n\t\t<td>a   b\n c</td>\n\t</tr>\n</table>",
			expected: "a b c",
		},
		{
			name:     "preformatted kept",
			input:    "<pre>x  =  1\ny = 2</pre>",
			expected: "x  =  1\ny = 2",
		},
		{
			name:     "line break",
			input:    "<sup>a<br>b</sup>",
			expected: "a\nb",
		},
		{
			name:     "noise dropped",
			input:    "<ul><li>Keep<script>var x = 1;</script><img src=\"a.png\" alt=\"pic\"></li></ul>",
			expected: "Keep",
		},
	}

	x := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, x.Extract(tt.input))
		})
	}
}

func TestExtractorReuse(t *testing.T) {
	x := NewExtractor()
	assert.Equal(t, "first", x.Extract("<p>first</p>"))
	assert.Equal(t, "second", x.Extract("<p>second</p>"))
}
