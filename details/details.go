// Package details provides the "details" block tag, which renders a collapsible <details> element:
//
//	{% details Click **me** %}
//	Hidden text.
//	{% enddetails %}
//
// Both the caption and the body are converted with the site's Markdown converter.
// Importing the package registers the tag in tag.Default.
package details

import (
	"regexp"
	"strings"

	"github.com/wansing/sealtag/markdown"
	"github.com/wansing/sealtag/tag"
)

const Name = "details"

// matches opening and closing paragraph tags, with or without attributes, but not <pre>, <param> etc.
var paragraphTag = regexp.MustCompile(`</?p(?:\s[^>]*)?/?>`)

// Details is one occurrence of the tag.
type Details struct {
	Caption string // Markdown source
}

func New(_ string, markup string) (tag.Tag, error) {
	return &Details{Caption: markup}, nil
}

func Definition() tag.Definition {
	return tag.Definition{
		Name:  Name,
		Block: true,
		New:   New,
	}
}

// Render converts the caption and the rendered body. Errors of the converter lookup and of the conversion are returned unchanged.
func (d *Details) Render(ctx *tag.Context) (string, error) {
	conv, err := ctx.FindConverter(markdown.Format)
	if err != nil {
		return "", err
	}

	caption, err := conv.Convert(d.Caption)
	if err != nil {
		return "", err
	}
	caption = Inline(caption)

	body, err := ctx.Body()
	if err != nil {
		return "", err
	}
	body, err = conv.Convert(body)
	if err != nil {
		return "", err
	}

	return "<details><summary>" + caption + "</summary>" + body + "</details>", nil
}

// Inline removes all paragraph tags from converted Markdown and at most one trailing line terminator.
// Other inline HTML is kept.
func Inline(html string) string {
	html = paragraphTag.ReplaceAllString(html, "")
	return chomp(html)
}

func chomp(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	default:
		return s
	}
}

func init() {
	tag.Register(Definition())
}
