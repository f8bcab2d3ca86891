package html

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestRemoveNoisyElements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "<html><body>Hello World</body></html>",
			expected: "<html><body>Hello World</body></html>",
		},
		{
			name:     "remove script",
			input:    "<html><body><p>Hello</p><script>alert('hi')</script></body></html>",
			expected: "<html><body><p>Hello</p></body></html>",
		},
		{
			name:     "remove style and head",
			input:    "<html><head><style>body { color: red; }</style></head><body><p>Hello</p></body></html>",
			expected: "<html><body><p>Hello</p></body></html>",
		},
		{
			name:     "remove noscript, iframe, svg",
			input:    "<html><body><noscript>JS disabled</noscript><iframe src=''></iframe><svg><circle/></svg><p>Text</p></body></html>",
			expected: "<html><body><p>Text</p></body></html>",
		},
		{
			name:     "nested noisy elements",
			input:    "<html><body><table><tr><td><script>console.log(1)</script>Keep</td></tr></table></body></html>",
			expected: "<html><body><table><tbody><tr><td>Keep</td></tr></tbody></table></body></html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := html.Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("html.Parse() returned error: %v", err)
			}
			removeNoisyElements(doc, nil)

			var sb strings.Builder
			if err := html.Render(&sb, doc); err != nil {
				t.Fatalf("html.Render() returned error: %v", err)
			}

			if normalizeHTML(sb.String()) != normalizeHTML(tt.expected) {
				t.Errorf("removeNoisyElements() failed\nInput:    %s\nExpected: %s\nGot:      %s", tt.input, tt.expected, sb.String())
			}
		})
	}
}

func normalizeHTML(s string) string {
	return strings.Join(strings.Fields(s), "")
}
