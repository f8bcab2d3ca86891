package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteLaTeX(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"no commands", "no commands"},
		{`\alpha`, "α"},
		{`\Omega\omega`, "Ωω"},
		{`x \leq y \neq z`, "x ≤ y ≠ z"},
		{`\in \infty \int`, "∈ ∞ ∫"},
		{`\alphabet`, `\alphabet`},
		{`\unknowncmd`, `\unknowncmd`},
		{`a \, b`, `a \, b`},
		{`trailing \`, `trailing \`},
		{`\frac{1}{2} \to 0`, `\frac{1}{2} → 0`},
		{`é \pi`, "é π"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubstituteLaTeX(tt.input))
		})
	}
}
