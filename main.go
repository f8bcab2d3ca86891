package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"encoding/json"
	"unsafe"

	"go-mdtext/html"
	"go-mdtext/markdown"
)

// extraction is the JSON shape returned by ExtractTextJSON.
type extraction struct {
	Text        string             `json:"text"`
	Title       string             `json:"title,omitempty"`
	Headings    []markdown.Heading `json:"headings,omitempty"`
	Diagnostics []string           `json:"diagnostics"`
}

// ExtractText returns the readable plain text of a Markdown, R Markdown or
// Quarto document. The returned string must be freed by calling FreeString.
//
//export ExtractText
func ExtractText(markdownStr *C.char) *C.char {
	if markdownStr == nil {
		return C.CString("")
	}

	text, _ := markdown.Extract(C.GoString(markdownStr))
	return C.CString(text)
}

// ExtractHTMLText converts HTML to Markdown and returns its plain text.
// The returned string must be freed by calling FreeString.
// Returns empty string on error.
//
//export ExtractHTMLText
func ExtractHTMLText(htmlStr *C.char) *C.char {
	if htmlStr == nil {
		return C.CString("")
	}

	md, err := html.ConvertToMarkdown(context.Background(), C.GoString(htmlStr))
	if err != nil {
		return C.CString("")
	}

	text, _ := markdown.Extract(md)
	return C.CString(text)
}

// ExtractTextJSON extracts a Markdown document and returns a JSON object
// with the text, title, headings and diagnostics.
// The returned string must be freed by calling FreeString.
// Returns "{}" on error.
//
//export ExtractTextJSON
func ExtractTextJSON(markdownStr *C.char) *C.char {
	if markdownStr == nil {
		return C.CString("{}")
	}

	src := C.GoString(markdownStr)
	text, diagnostics := markdown.Extract(src)
	if diagnostics == nil {
		diagnostics = []string{}
	}

	// Malformed front matter only costs the title.
	meta, _, _ := markdown.ParseFrontMatter(src)

	jsonBytes, err := json.Marshal(extraction{
		Text:        text,
		Title:       meta.Title,
		Headings:    markdown.Outline(src),
		Diagnostics: diagnostics,
	})
	if err != nil {
		return C.CString("{}")
	}

	return C.CString(string(jsonBytes))
}

// StripFrontMatter removes a leading YAML or TOML front matter block.
// The returned string must be freed by calling FreeString.
//
//export StripFrontMatter
func StripFrontMatter(markdownStr *C.char) *C.char {
	if markdownStr == nil {
		return C.CString("")
	}

	return C.CString(markdown.StripFrontMatter(C.GoString(markdownStr)))
}

// FreeString frees memory allocated by functions returning *C.char.
// Must be called on all returned strings to prevent memory leaks.
//
//export FreeString
func FreeString(str *C.char) {
	if str != nil {
		C.free(unsafe.Pointer(str))
	}
}

// GetLibraryVersion returns the current version of the library.
// The returned string must be freed by calling FreeString.
//
//export GetLibraryVersion
func GetLibraryVersion() *C.char {
	return C.CString("2.0.0")
}

func main() {
	// Built with -buildmode=c-shared; main is never called.
}
