package markdown

import (
	commonmark "gitlab.com/golang-commonmark/markdown"
)

// Commonmark converts CommonMark. Raw HTML is passed through, so tag output survives page conversion.
type Commonmark struct {
	md *commonmark.Markdown
}

func NewCommonmark() *Commonmark {
	return &Commonmark{
		md: commonmark.New(commonmark.HTML(true), commonmark.Linkify(true), commonmark.Typographer(true), commonmark.MaxNesting(10)),
	}
}

func (c *Commonmark) Convert(src string) (string, error) {
	return c.md.RenderToString([]byte(src)), nil
}
