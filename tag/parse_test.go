package tag

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wansing/sealtag/markdown"
)

// upper is a block tag which upper-cases its rendered body and prefixes it with the markup.
type upper struct {
	markup string
}

func (u upper) Render(ctx *Context) (string, error) {
	body, err := ctx.Body()
	if err != nil {
		return "", err
	}
	return "[" + u.markup + "]" + strings.ToUpper(body), nil
}

type echo struct {
	markup string
}

func (e echo) Render(*Context) (string, error) {
	return "<" + e.markup + ">", nil
}

type failing struct{}

var errRender = errors.New("render failed")

func (failing) Render(*Context) (string, error) {
	return "", errRender
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{
		Name:  "upper",
		Block: true,
		New: func(_, markup string) (Tag, error) {
			return upper{markup}, nil
		},
	}))
	require.NoError(t, r.Register(Definition{
		Name: "echo",
		New: func(_, markup string) (Tag, error) {
			return echo{markup}, nil
		},
	}))
	require.NoError(t, r.Register(Definition{
		Name: "fail",
		New: func(string, string) (Tag, error) {
			return failing{}, nil
		},
	}))
	require.NoError(t, r.Register(Definition{
		Name: "invalid",
		New: func(string, string) (Tag, error) {
			return nil, errors.New("bad markup")
		},
	}))
	require.NoError(t, r.Register(Comment()))
	return r
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "no markup", src: "plain {text}", want: "plain {text}"},
		{name: "inline", src: "a {% echo b %} c", want: "a <b> c"},
		{name: "block", src: "{% upper x %}abc{% endupper %}", want: "[x]ABC"},
		{name: "empty markup", src: "{% upper %}abc{% endupper %}", want: "[]ABC"},
		{name: "nested", src: "{% upper outer %}a{% upper inner %}b{% echo c %}{% endupper %}{% endupper %}", want: "[outer]A[INNER]B<C>"},
		{name: "multiline markup", src: "{% echo one\ntwo %}", want: "<one\ntwo>"},
		{name: "case insensitive", src: "{% ECHO x %}", want: "<x>"},
		{name: "trim left", src: "a  \n {%- echo b %} c", want: "a<b> c"},
		{name: "trim right", src: "a {% echo b -%} \n c", want: "a <b>c"},
		{name: "raw", src: "{% raw %}{% echo b %}{% endraw %}", want: "{% echo b %}"},
		{name: "comment", src: "a{% comment %}{% echo hidden %}{% endcomment %}b", want: "ab"},
	}

	r := testRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Expand(nil, tt.src)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		tag  string
		err  error
	}{
		{name: "unknown", src: "a\n{% nope %}", line: 2, tag: "nope", err: ErrUnknownTag},
		{name: "unclosed", src: "a\n\n{% upper %}b", line: 3, tag: "upper", err: ErrUnclosed},
		{name: "unexpected end", src: "{% endupper %}", line: 1, tag: "endupper", err: ErrUnexpectedEnd},
		{name: "mismatched end", src: "{% upper %}{% comment %}\n{% endupper %}", line: 2, tag: "endupper", err: ErrUnexpectedEnd},
		{name: "unclosed raw", src: "{% raw %}abc", line: 1, tag: "raw", err: ErrUnclosed},
	}

	r := testRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Parse(tt.src)
			require.ErrorIs(t, err, tt.err)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			require.Equal(t, tt.line, syntaxErr.Line)
			require.Equal(t, tt.tag, syntaxErr.Tag)
		})
	}
}

func TestParseWrapsConstructorErrors(t *testing.T) {
	_, err := testRegistry(t).Parse("x\n{% invalid %}")
	require.EqualError(t, err, "line 2: invalid: bad markup")
}

func TestRenderErrorsPassThrough(t *testing.T) {
	_, err := testRegistry(t).Expand(nil, "{% upper %}{% fail %}{% endupper %}")
	require.Same(t, errRender, err)
}

func TestTemplateRendersRepeatedly(t *testing.T) {
	tmpl, err := testRegistry(t).Parse("{% upper a %}b{% endupper %}")
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		got, err := tmpl.Render(nil)
		require.NoError(t, err)
		require.Equal(t, "[a]B", got)
	}
}

func TestContextFindConverter(t *testing.T) {
	ctx := &Context{}
	_, err := ctx.FindConverter(markdown.Format)
	require.ErrorIs(t, err, markdown.ErrNoConverter)

	conv := markdown.NewCommonmark()
	ctx = &Context{Site: markdown.Converters{markdown.Format: conv}}
	got, err := ctx.FindConverter(markdown.Format)
	require.NoError(t, err)
	require.Same(t, conv, got)
}
