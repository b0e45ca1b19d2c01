package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wansing/sealtag/markdown"
	"github.com/wansing/sealtag/tag"

	_ "github.com/wansing/sealtag/details"
)

var site = markdown.Converters{markdown.Format: markdown.NewCommonmark()}

func TestMarkdownRender(t *testing.T) {
	title, html, err := Markdown{Site: site}.Render([]byte("---\ntitle: FAQ\n---\n{% details Click me %}\nHidden text.\n{% enddetails %}\n"))
	require.NoError(t, err)
	require.Equal(t, "FAQ", title)
	require.Equal(t, "<details><summary>Click me</summary><p>Hidden text.</p>\n</details>", strings.TrimSpace(html))
}

func TestMarkdownRenderWithoutFrontMatter(t *testing.T) {
	title, html, err := Markdown{Site: site}.Render([]byte("# Hello"))
	require.NoError(t, err)
	require.Empty(t, title)
	require.Equal(t, "<h1>Hello</h1>\n", html)
}

func TestMarkdownRenderErrors(t *testing.T) {
	_, _, err := Markdown{Site: site}.Render([]byte("{% details x %}never closed"))
	require.ErrorIs(t, err, tag.ErrUnclosed)

	_, _, err = Markdown{}.Render([]byte("# Hello"))
	require.ErrorIs(t, err, markdown.ErrNoConverter)

	_, _, err = Markdown{Site: markdown.Converters{}}.Render([]byte("{% details x %}y{% enddetails %}"))
	require.ErrorIs(t, err, markdown.ErrNoConverter)
}

func TestMarkdownOwnRegistry(t *testing.T) {
	_, _, err := Markdown{Site: site, Tags: tag.NewRegistry()}.Render([]byte("{% details x %}y{% enddetails %}"))
	require.ErrorIs(t, err, tag.ErrUnknownTag)
}

func TestMarkdownParse(t *testing.T) {
	dir := testDir("/faq")
	dir.Template.New("greeting").Parse("Hi!")

	err := Markdown{Site: site}.Parse(dir, "main", []byte("---\ntitle: FAQ\n---\n{greeting}\n\n{% details See [more](more) %}\n- one\n- two\n{% enddetails %}\n"))
	require.NoError(t, err)
	require.Equal(t, "FAQ", dir.Title)

	got := execute(t, dir)
	require.Contains(t, got, "<p>Hi!</p>")
	require.Contains(t, got, `<details><summary>See <a href="/faq/more">more</a></summary><ul>`)
	require.Contains(t, got, "<li>two</li>")
}

func TestMarkdownRenderKeepsTagOutput(t *testing.T) {
	const body = "\n```\na\n\nb\n```\n"
	src := "{% details Code %}" + body + "{% enddetails %}\n"

	for _, engine := range markdown.Engines() {
		t.Run(engine, func(t *testing.T) {
			conv, err := markdown.New(engine)
			require.NoError(t, err)
			convertedBody, err := conv.Convert(body)
			require.NoError(t, err)

			_, html, err := Markdown{Site: markdown.Converters{markdown.Format: conv}}.Render([]byte(src))
			require.NoError(t, err)
			require.Equal(t, "<details><summary>Code</summary>"+convertedBody+"</details>\n", html)
		})
	}

	_, html, err := Markdown{Site: site}.Render([]byte(src))
	require.NoError(t, err)
	require.Equal(t, "<details><summary>Code</summary><pre><code>a\n\nb\n</code></pre>\n</details>\n", html)
}

func TestMarkdownRenderInlineTag(t *testing.T) {
	tags := tag.NewRegistry()
	require.NoError(t, tags.Register(tag.Definition{
		Name: "year",
		New: func(string, string) (tag.Tag, error) {
			return yearTag{}, nil
		},
	}))

	_, html, err := Markdown{Site: site, Tags: tags}.Render([]byte("It is *now* {% year %}.\n\n{% year %}\n"))
	require.NoError(t, err)
	require.Equal(t, "<p>It is <em>now</em> <b>2024</b>.</p>\n<b>2024</b>\n", html)
}

type yearTag struct{}

func (yearTag) Render(*tag.Context) (string, error) {
	return "<b>2024</b>", nil
}
