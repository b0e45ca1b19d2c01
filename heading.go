package sealtag

import (
	"bytes"
	"html/template"
	"strings"
	"text/template/parse"

	"golang.org/x/net/html"
)

const maxHeadingScan = 4096 // bytes per text node

// Heading returns the text content of the first h1 to h4 element in the text nodes of t, or "".
// Template actions are not executed, so headings generated by actions are not found.
func Heading(t *template.Template) string {
	if t == nil || t.Tree == nil || t.Tree.Root == nil {
		return ""
	}
	for _, node := range t.Tree.Root.Nodes {
		if text, ok := node.(*parse.TextNode); ok {
			if h := headingText(text.Text); h != "" {
				return h
			}
		}
	}
	return ""
}

func headingText(htm []byte) string {
	if len(htm) > maxHeadingScan {
		htm = htm[:maxHeadingScan]
	}
	tokenizer := html.NewTokenizerFragment(bytes.NewReader(htm), "body")

	var open string // name of the heading element we are in
	var text strings.Builder
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return "" // EOF before the heading was closed
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if open == "" && isHeading(string(name)) {
				open = string(name)
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if open != "" && string(name) == open {
				return strings.Join(strings.Fields(text.String()), " ")
			}
		case html.TextToken:
			if open != "" {
				text.Write(tokenizer.Text())
			}
		}
	}
}

func isHeading(name string) bool {
	switch name {
	case "h1", "h2", "h3", "h4":
		return true
	}
	return false
}
