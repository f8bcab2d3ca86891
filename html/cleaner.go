package html

import (
	"golang.org/x/net/html"
)

// noisyElements hold markup or program text, never prose.
var noisyElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
	"math":     true,
	"object":   true,
	"template": true,
	"head":     true,
}

// removeNoisyElements detaches every noisy element below node.
func removeNoisyElements(node, parent *html.Node) {
	if node.Type == html.ElementNode && noisyElements[node.Data] {
		if parent != nil {
			parent.RemoveChild(node)
		}
		return
	}

	for child := node.FirstChild; child != nil; {
		next := child.NextSibling
		removeNoisyElements(child, node)
		child = next
	}
}
