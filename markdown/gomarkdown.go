package markdown

import (
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

type Gomarkdown struct{}

// Convert creates a new parser on every call because a gomarkdown parser can't be reused.
func (Gomarkdown) Convert(src string) (string, error) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(gomarkdown.ToHTML([]byte(src), p, renderer)), nil
}
