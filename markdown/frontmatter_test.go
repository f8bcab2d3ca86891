package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no front matter", "# Title\nText", "# Title\nText"},
		{"yaml", "---\ntitle: x\n---\nBody", "Body"},
		{"yaml with dots terminator", "---\ntitle: x\n...\nBody", "Body"},
		{"toml", "+++\ntitle = \"x\"\n+++\nBody", "Body"},
		{"blank lines after block", "---\na: b\n---\n\n\nBody", "Body"},
		{"crlf", "---\r\ntitle: x\r\n---\r\nBody", "Body"},
		{"byte order mark", "\ufeff---\ntitle: x\n---\nBody", "Body"},
		{"unterminated", "---\ntitle: x\nBody", "---\ntitle: x\nBody"},
		{"single line", "---", "---"},
		{"mismatched delimiter", "---\ntitle: x\n+++\nBody", "---\ntitle: x\n+++\nBody"},
		{"only front matter", "---\ntitle: x\n---\n", ""},
		{"pandoc title block", "% Title\n% Ann; Bob\n% 2024\n\nBody", "Body"},
		{"pandoc title block crlf", "% Title\r\n\r\nBody", "Body"},
		{"pandoc title block only", "% Title\n% Ann", ""},
		{"percent without blank", "%Title\n\nBody", "%Title\n\nBody"},
		{"empty pandoc title line", "% \n\nBody", "% \n\nBody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripFrontMatter(tt.input))
		})
	}
}

func TestParseFrontMatter(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		input := "---\ntitle: Report\nsubtitle: Q3\nauthor:\n  - name: Ann\n  - Bob\ndate: \"2024-01-02\"\nlang: en\n---\n\nBody text"

		meta, body, err := ParseFrontMatter(input)
		require.NoError(t, err)
		assert.Equal(t, "Report", meta.Title)
		assert.Equal(t, "Q3", meta.Subtitle)
		assert.Equal(t, "Ann, Bob", meta.Author)
		assert.Equal(t, "2024-01-02", meta.Date)
		assert.Equal(t, "en", meta.Lang)
		assert.Contains(t, meta.Raw, "title")
		assert.Equal(t, "Body text", body)
	})

	t.Run("toml", func(t *testing.T) {
		meta, body, err := ParseFrontMatter("+++\ntitle = \"Notes\"\nauthor = \"Cy\"\n+++\nBody")
		require.NoError(t, err)
		assert.Equal(t, "Notes", meta.Title)
		assert.Equal(t, "Cy", meta.Author)
		assert.Equal(t, "Body", body)
	})

	t.Run("pandoc title block", func(t *testing.T) {
		input := "% My Report\n  continued\n% Ann; Bob\n% 2024-05-01\n\nBody"

		meta, body, err := ParseFrontMatter(input)
		require.NoError(t, err)
		assert.Equal(t, "My Report continued", meta.Title)
		assert.Equal(t, "Ann, Bob", meta.Author)
		assert.Equal(t, "2024-05-01", meta.Date)
		assert.Empty(t, meta.Subtitle)
		assert.Equal(t, "Body", body)
	})

	t.Run("pandoc title without author", func(t *testing.T) {
		meta, body, err := ParseFrontMatter("% Notes\n%\n% May\n\nBody")
		require.NoError(t, err)
		assert.Equal(t, "Notes", meta.Title)
		assert.Empty(t, meta.Author)
		assert.Equal(t, "May", meta.Date)
		assert.Equal(t, "Body", body)
	})

	t.Run("none", func(t *testing.T) {
		meta, body, err := ParseFrontMatter("Just text")
		require.NoError(t, err)
		assert.Empty(t, meta.Title)
		assert.Nil(t, meta.Raw)
		assert.Equal(t, "Just text", body)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, body, err := ParseFrontMatter("---\ntitle: [unclosed\n---\nBody")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse front matter")
		assert.Equal(t, "---\ntitle: [unclosed\n---\nBody", body)
	})
}

func TestExtractSkipsTitleBlock(t *testing.T) {
	text, diagnostics := Extract("% Field Notes\n% Dee\n\n# Intro\nText")

	assert.Equal(t, "Intro\n\nText", text)
	assert.Empty(t, diagnostics)
	assert.Equal(t, []Heading{{Level: 1, Text: "Intro"}}, Outline("% Field Notes\n\n# Intro"))
}
