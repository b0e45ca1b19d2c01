package content

import (
	"net/url"
	"path"
	"strings"
	"text/template/parse"

	"github.com/wansing/sealtag"
	"github.com/wansing/sealtag/tag"
	"golang.org/x/net/html"
)

// HTML parses files as html templates using Golang's html/template package, after expanding tags.
type HTML struct {
	Site tag.Site
	Tags *tag.Registry // nil means tag.Default
}

func (h HTML) Parse(dir *sealtag.Dir, filestem string, filecontent []byte) error {
	src, err := registry(h.Tags).Expand(h.Site, string(filecontent))
	if err != nil {
		return err
	}
	return parseHTML(dir, filestem, src)
}

// parseHTML parses src into dir.Template.New(filestem) and makes relative href and src paths absolute.
//
// This must be made before template execution, because execution brings templates with different urlpaths together.
// We modify the TextNodes (which contain the HTML code) of the parsed template. Other templates defined in src are not modified.
func parseHTML(dir *sealtag.Dir, filestem string, src string) error {
	parsed, err := dir.Template.New(filestem).Parse(src)
	if err != nil {
		return err
	}
	if parsed == nil || parsed.Tree == nil || parsed.Tree.Root == nil {
		return nil
	}

	var contextTag string
	for _, node := range parsed.Tree.Root.Nodes {
		textNode, ok := node.(*parse.TextNode)
		if !ok {
			continue
		}

		tokenizer := html.NewTokenizerFragment(strings.NewReader(string(textNode.Text)), contextTag) // TextNodes can't be parsed because they are not well-formed, but can be tokenized
		var newNodeText strings.Builder
		for {
			tokenType := tokenizer.Next()
			if tokenType == html.ErrorToken {
				// assuming tokenizer.Err() == io.EOF, Raw holds a tag cut off by a template action, like <a href="{{.}}">
				newNodeText.Write(tokenizer.Raw())
				break
			}
			if tokenType != html.StartTagToken {
				newNodeText.Write(tokenizer.Raw()) // raw copy everything except start tags
				continue
			}

			raw := append([]byte(nil), tokenizer.Raw()...) // Token unescapes attribute values in place
			token := tokenizer.Token()
			contextTag = token.Data
			var changed bool
			for i, a := range token.Attr {
				if (a.Key == "src" || a.Key == "href") && isRelative(a.Val) {
					token.Attr[i].Val = path.Join(dir.URLPath, a.Val)
					changed = true
				}
			}
			if changed {
				newNodeText.WriteString(token.String())
			} else {
				newNodeText.Write(raw)
			}
		}
		textNode.Text = []byte(newNodeText.String())
	}

	return nil
}

// isRelative reports whether ref is a relative path, like "image.jpg" or "../foo", but not "#anchor" or "mailto:x".
func isRelative(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") {
		return false
	}
	uri, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return !uri.IsAbs() && uri.Host == "" && !path.IsAbs(uri.Path)
}

func registry(r *tag.Registry) *tag.Registry {
	if r != nil {
		return r
	}
	return tag.Default
}
