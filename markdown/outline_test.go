package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutline(t *testing.T) {
	input := "---\ntitle: x\n---\n" +
		"# Intro {#sec-intro}\n\nText\n\n" +
		"## Details *here*\n\n" +
		"```\n# not a heading\n```\n\n" +
		"Setext\n======\n"

	expected := []Heading{
		{Level: 1, ID: "sec-intro", Text: "Intro"},
		{Level: 2, Text: "Details here"},
		{Level: 1, Text: "Setext"},
	}

	assert.Equal(t, expected, Outline(input))
}

func TestOutlineEmpty(t *testing.T) {
	assert.Nil(t, Outline(""))
	assert.Nil(t, Outline("No headings here."))
}
