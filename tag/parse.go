package tag

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	markupPattern = regexp.MustCompile(`(?s)\{%(-?)\s*(\w+)(.*?)(-?)%\}`)
	endRawPattern = regexp.MustCompile(`\{%-?\s*endraw\s*-?%\}`)
)

type node struct {
	text string
	call *call // nil for text nodes
}

type call struct {
	tag  Tag
	body []node
}

// A Template is parsed source. It can be rendered any number of times.
type Template struct {
	nodes []node
}

// Parse splits src into text and calls of tags defined in r.
//
// Whitespace control works like in Liquid: "{%-" trims whitespace before the tag, "-%}" after it.
// The content of {% raw %}...{% endraw %} is copied verbatim.
func (r *Registry) Parse(src string) (*Template, error) {
	type block struct {
		name  string
		line  int
		call  *call
		nodes []node
	}

	var (
		stack     = []*block{{}}
		pos       = 0
		trimLeft  = false
		line      = 1
		lineCount = 0 // offset up to which line has been counted
	)

	addText := func(text string, trimRight bool) {
		if trimLeft {
			text = strings.TrimLeftFunc(text, unicode.IsSpace)
		}
		if trimRight {
			text = strings.TrimRightFunc(text, unicode.IsSpace)
		}
		if text != "" {
			top := stack[len(stack)-1]
			top.nodes = append(top.nodes, node{text: text})
		}
	}

	lineAt := func(offset int) int {
		line += strings.Count(src[lineCount:offset], "\n")
		lineCount = offset
		return line
	}

	for {
		m := markupPattern.FindStringSubmatchIndex(src[pos:])
		if m == nil {
			addText(src[pos:], false)
			break
		}

		start, end := pos+m[0], pos+m[1]
		name := normalize(src[pos+m[4] : pos+m[5]])
		markup := strings.TrimSpace(src[pos+m[6] : pos+m[7]])
		addText(src[pos:start], m[3] > m[2])
		trimLeft = m[9] > m[8]
		pos = end
		tagLine := lineAt(start)

		if name == "raw" {
			loc := endRawPattern.FindStringIndex(src[pos:])
			if loc == nil {
				return nil, &SyntaxError{Line: tagLine, Tag: name, Err: ErrUnclosed}
			}
			addText(src[pos:pos+loc[0]], false)
			pos += loc[1]
			trimLeft = false
			continue
		}

		if def, ok := r.Lookup(name); ok {
			t, err := def.New(name, markup)
			if err != nil {
				return nil, &SyntaxError{Line: tagLine, Tag: name, Err: err}
			}
			c := &call{tag: t}
			if def.Block {
				stack = append(stack, &block{name: name, line: tagLine, call: c})
			} else {
				top := stack[len(stack)-1]
				top.nodes = append(top.nodes, node{call: c})
			}
			continue
		}

		if strings.HasPrefix(name, "end") {
			top := stack[len(stack)-1]
			if len(stack) == 1 || top.name != strings.TrimPrefix(name, "end") {
				return nil, &SyntaxError{Line: tagLine, Tag: name, Err: ErrUnexpectedEnd}
			}
			stack = stack[:len(stack)-1]
			top.call.body = top.nodes
			parent := stack[len(stack)-1]
			parent.nodes = append(parent.nodes, node{call: top.call})
			continue
		}

		return nil, &SyntaxError{Line: tagLine, Tag: name, Err: ErrUnknownTag}
	}

	if len(stack) > 1 {
		top := stack[len(stack)-1]
		return nil, &SyntaxError{Line: top.line, Tag: top.name, Err: ErrUnclosed}
	}
	return &Template{nodes: stack[0].nodes}, nil
}

// Render renders the template. Errors returned by tags are passed through unchanged.
func (t *Template) Render(site Site) (string, error) {
	return render(site, t.nodes)
}

func render(site Site, nodes []node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if n.call == nil {
			b.WriteString(n.text)
			continue
		}
		out, err := n.call.tag.Render(&Context{
			Site: site,
			body: n.call.body,
		})
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// Expand parses and renders src. Source without tag markup is returned as is.
func (r *Registry) Expand(site Site, src string) (string, error) {
	if !strings.Contains(src, "{%") {
		return src, nil
	}
	t, err := r.Parse(src)
	if err != nil {
		return "", err
	}
	return t.Render(site)
}
