// Package tag implements Liquid-style tags which are expanded in content before it is converted.
//
//	{% name markup %}                  inline tag
//	{% name markup %}...{% endname %}  block tag
//
// A tag is constructed once per occurrence when the source is parsed, and rendered when the template is rendered.
package tag

import (
	"fmt"

	"github.com/wansing/sealtag/markdown"
)

// A Site provides the build-wide converters to tags.
type Site interface {
	FindConverter(format string) (markdown.Converter, error)
}

// A Tag renders one occurrence of a tag.
type Tag interface {
	Render(ctx *Context) (string, error)
}

// A Definition associates a tag name with its constructor.
type Definition struct {
	Name  string
	Block bool // if true, the tag encloses a body which is terminated by {% end<name> %}
	New   func(name, markup string) (Tag, error)
}

// Context is passed to Tag.Render. It is valid during the call only.
type Context struct {
	Site Site
	body []node
}

// FindConverter looks up a converter from the site.
func (ctx *Context) FindConverter(format string) (markdown.Converter, error) {
	if ctx.Site == nil {
		return nil, fmt.Errorf("%w: %s", markdown.ErrNoConverter, format)
	}
	return ctx.Site.FindConverter(format)
}

// Body renders the enclosed source, expanding nested tags first. It returns "" for inline tags.
func (ctx *Context) Body() (string, error) {
	return render(ctx.Site, ctx.body)
}
