package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-mdtext/markdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfg := writeFile(t, t.TempDir(), "mdtext.yaml", "")
	cmd := NewRootCommand("test", "none", "unknown")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandStdin(t *testing.T) {
	out, err := executeCommand(t, "# Title\nHello **world**.")
	require.NoError(t, err)
	assert.Equal(t, "Title\n\nHello world.\n", out)
}

func TestRootCommandFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.md", "One *two*")
	second := writeFile(t, dir, "b.md", "Three `four`")

	out, err := executeCommand(t, "", first, second)
	require.NoError(t, err)
	assert.Equal(t, "One two\n\nThree four\n", out)
}

func TestRootCommandJSON(t *testing.T) {
	dir := t.TempDir()
	md := writeFile(t, dir, "notes.qmd", "---\ntitle: Notes\n---\n# Intro\n\nSee [docs](x).")
	page := writeFile(t, dir, "page.html", "<html><head><title>Page</title></head><body><h1>T</h1><p>Hi <b>there</b></p></body></html>")

	out, err := executeCommand(t, "", "--json", "--workers", "2", md, page)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var notes, html Result
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &notes))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &html))

	assert.Equal(t, md, notes.File)
	assert.Equal(t, "Notes", notes.Title)
	assert.Equal(t, "Intro\n\nSee docs.", notes.Text)
	assert.Equal(t, []markdown.Heading{{Level: 1, Text: "Intro"}}, notes.Headings)
	assert.Empty(t, notes.Diagnostics)
	assert.Contains(t, lines[0], `"diagnostics":[]`)

	assert.Equal(t, page, html.File)
	assert.Equal(t, "Page", html.Title)
	assert.Equal(t, "T\n\nHi there", html.Text)
}

func TestRootCommandOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.txt")

	out, err := executeCommand(t, "Some $\\alpha$ text", "--output", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Some α text\n", string(data))
}

func TestRootCommandStrict(t *testing.T) {
	out, err := executeCommand(t, "[broken link", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 diagnostic(s)")
	assert.Equal(t, "[broken link\n", out)

	_, err = executeCommand(t, "[broken link")
	assert.NoError(t, err)
}

func TestRootCommandErrors(t *testing.T) {
	_, err := executeCommand(t, "x", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	_, err = executeCommand(t, "", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract")
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format   string
		name     string
		src      string
		expected string
	}{
		{"auto", "doc.md", "<html>", "markdown"},
		{"auto", "page.HTML", "", "html"},
		{"auto", "page.htm", "", "html"},
		{"auto", "-", "  <!DOCTYPE html><html></html>", "html"},
		{"auto", "-", "# Title", "markdown"},
		{"markdown", "page.html", "", "markdown"},
		{"html", "doc.md", "", "html"},
	}

	for _, tt := range tests {
		t.Run(tt.format+" "+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveFormat(tt.format, tt.name, tt.src))
		})
	}
}

func TestRootCommandOutputFileErrors(t *testing.T) {
	_, err := executeCommand(t, "text", "--output", filepath.Join(t.TempDir(), "missing", "out.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output")

	if _, statErr := os.Stat("/dev/full"); statErr != nil {
		t.Skip("/dev/full not available")
	}
	_, err = executeCommand(t, "text", "--output", "/dev/full")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write output")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}

func TestWriteResultsErrors(t *testing.T) {
	results := []Result{{File: "-", Text: "x", Diagnostics: []string{}}}

	err := writeResults(failingWriter{}, results, false)
	require.ErrorIs(t, err, io.ErrShortWrite)
	assert.Contains(t, err.Error(), "write output")

	err = writeResults(failingWriter{}, results, true)
	require.ErrorIs(t, err, io.ErrShortWrite)
	assert.Contains(t, err.Error(), "write json")
}

func TestWriteOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	results := []Result{
		{File: "a.md", Text: "A", Diagnostics: []string{}},
		{File: "b.md", Text: "B", Diagnostics: []string{"x"}},
	}

	require.NoError(t, writeOutputFile(path, results, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), `"file":"b.md"`)
}
