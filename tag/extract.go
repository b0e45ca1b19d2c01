package tag

import (
	"fmt"
	"strings"
)

// placeholderFormat is plain text, so converters and sanitizers leave it alone.
const placeholderFormat = "SEALTAG%dPLACEHOLDER"

// Extracted is source whose top-level tag calls have been rendered and replaced by placeholders.
type Extracted struct {
	Text    string
	outputs []string
}

// Extract renders the top-level tag calls of src and replaces each with a placeholder.
// Convert Text, then call Restore on the result. This keeps tag output away from the page converter.
func (r *Registry) Extract(site Site, src string) (*Extracted, error) {
	if !strings.Contains(src, "{%") {
		return &Extracted{Text: src}, nil
	}
	t, err := r.Parse(src)
	if err != nil {
		return nil, err
	}

	var (
		text    strings.Builder
		outputs []string
	)
	for _, n := range t.nodes {
		if n.call == nil {
			text.WriteString(n.text)
			continue
		}
		out, err := n.call.tag.Render(&Context{
			Site: site,
			body: n.call.body,
		})
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&text, placeholderFormat, len(outputs))
		outputs = append(outputs, out)
	}
	return &Extracted{
		Text:    text.String(),
		outputs: outputs,
	}, nil
}

// Restore substitutes the placeholders in converted with the tag outputs.
// A placeholder which the converter has wrapped into a paragraph of its own replaces the paragraph.
func (e *Extracted) Restore(converted string) string {
	for i, out := range e.outputs {
		placeholder := fmt.Sprintf(placeholderFormat, i)
		converted = strings.ReplaceAll(converted, "<p>"+placeholder+"</p>", out)
		converted = strings.ReplaceAll(converted, placeholder, out)
	}
	return converted
}
