package html

import (
	"context"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// documentConverter is safe for concurrent use; one instance serves every call.
var documentConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(
			table.WithCellPaddingBehavior(table.CellPaddingBehaviorMinimal),
		),
	),
)

// ConvertToMarkdown turns a whole HTML document into Markdown so it can be
// fed through the Markdown text extractor like any other source.
func ConvertToMarkdown(ctx context.Context, htmlStr string) (string, error) {
	if strings.TrimSpace(htmlStr) == "" {
		return "", nil
	}

	markdown, err := documentConverter.ConvertString(htmlStr, converter.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("convert html to markdown: %w", err)
	}

	return cleanupMarkdown(markdown), nil
}

// cleanupMarkdown normalizes line endings and blank-line runs left behind
// by the conversion.
func cleanupMarkdown(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	for strings.Contains(content, "\n\n\n") {
		content = strings.ReplaceAll(content, "\n\n\n", "\n\n")
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")

	return strings.TrimSpace(content)
}
