package sealtag

import (
	"html/template"
	"testing"
)

func TestHeading(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: `<h1>Hello</h1>`, want: "Hello"},
		{input: `<p>intro</p><h2 id="x">Sub <em>title</em></h2><h1>Later</h1>`, want: "Sub title"},
		{input: "<h3>\n  Spread\n  out\n</h3>", want: "Spread out"},
		{input: `<h5>Too small</h5><p>none</p>`, want: ""},
		{input: `{{if true}}<h1>In action</h1>{{end}}<h4>Outside</h4>`, want: "Outside"},
		{input: `<h1>Unclosed`, want: ""},
	}
	for _, test := range tests {
		tmpl := template.Must(template.New("main").Parse(test.input))
		if got := Heading(tmpl); got != test.want {
			t.Fatalf("%s: got %q, want %q", test.input, got, test.want)
		}
	}

	if got := Heading(nil); got != "" {
		t.Fatalf("nil template: got %q", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "FAQ", want: "faq"},
		{input: " My Page ", want: "my-page"},
		{input: "a/b", want: "a%2Fb"},
	}
	for _, test := range tests {
		if got := Slugify(test.input); got != test.want {
			t.Fatalf("%s: got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestErrorNoticeHasNoActions(t *testing.T) {
	notice, err := errorNotice("main.md", templateError{`unexpected "{{" in <x>`})
	if err != nil {
		t.Fatal(err)
	}
	tmpl, err := template.New("main").Parse(notice)
	if err != nil {
		t.Fatal(err)
	}
	if len(tmpl.Tree.Root.Nodes) != 1 {
		t.Fatalf("notice was parsed into %d nodes", len(tmpl.Tree.Root.Nodes))
	}
}

type templateError struct{ msg string }

func (e templateError) Error() string { return e.msg }
