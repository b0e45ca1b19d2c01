package content

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/adrg/frontmatter"
	"github.com/wansing/sealtag"
	"github.com/wansing/sealtag/markdown"
	"github.com/wansing/sealtag/tag"
)

var templateCmd = regexp.MustCompile(`\{([a-z-]{1,32})\}`)

type frontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// Markdown converts files with the Markdown converter of Site, after expanding tags.
// Use {name} to execute a template.
type Markdown struct {
	Site tag.Site
	Tags *tag.Registry // nil means tag.Default
}

// Render strips the front matter from src, renders the tags and converts the rest.
// Tag output is spliced into the converted page as is.
// It returns the title from the front matter, if any.
func (m Markdown) Render(src []byte) (title string, html string, err error) {
	var matter frontMatter
	rest, err := frontmatter.Parse(bytes.NewReader(src), &matter)
	if err != nil {
		return "", "", fmt.Errorf("parsing front matter: %w", err)
	}

	extracted, err := registry(m.Tags).Extract(m.Site, string(rest))
	if err != nil {
		return "", "", err
	}

	ctx := &tag.Context{Site: m.Site}
	conv, err := ctx.FindConverter(markdown.Format)
	if err != nil {
		return "", "", err
	}
	html, err = conv.Convert(extracted.Text)
	if err != nil {
		return "", "", err
	}
	return matter.Title, extracted.Restore(html), nil
}

func (m Markdown) Parse(dir *sealtag.Dir, filestem string, filecontent []byte) error {
	title, html, err := m.Render(filecontent)
	if err != nil {
		return err
	}
	if title != "" {
		dir.Title = title
	}
	html = templateCmd.ReplaceAllString(html, `{{template "$1" .}}`)
	return parseHTML(dir, filestem, html)
}
