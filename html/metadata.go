package html

import (
	"strings"

	"golang.org/x/net/html"
)

// Metadata is the document information an HTML page carries in its head.
type Metadata struct {
	Title       string
	Description string
	Author      string
	Lang        string
}

// ParseMetadata reads the title, language and the description and author
// meta tags of an HTML document. Missing fields stay empty.
func ParseMetadata(htmlStr string) Metadata {
	var meta Metadata
	if strings.TrimSpace(htmlStr) == "" {
		return meta
	}

	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return meta
	}

	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch node.Data {
			case "html":
				meta.Lang = attr(node, "lang")
			case "title":
				if meta.Title == "" {
					meta.Title = textContent(node)
				}
				return
			case "meta":
				content := strings.TrimSpace(attr(node, "content"))
				switch strings.ToLower(attr(node, "name")) {
				case "description":
					meta.Description = content
				case "author":
					meta.Author = content
				}
				return
			case "body":
				// Metadata lives in the head.
				return
			}
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}

	visit(doc)
	return meta
}

func attr(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent joins the text below node, collapsing whitespace runs.
func textContent(node *html.Node) string {
	var text strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			text.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(node)

	return strings.Join(strings.Fields(text.String()), " ")
}
