package sealtag

import (
	"bytes"
	"html/template"
	"io"
	"net/http"
)

var errExecuteTemplate = template.Must(template.New("").Parse(`<p style="border: solid red 2px; border-radius: 8px; padding: 12px">Error executing template: {{.}}</p>`))

// A Handler responds to an HTTP request. It must return true if execution shall continue, false to stop execution.
type Handler func(reqpath []string, w http.ResponseWriter, r *http.Request) bool

// MakeTemplateHandler returns a Handler which executes the "html" template from dir.Template if reqpath is empty.
// If an error is returned, a template with an error message is executed.
func MakeTemplateHandler(dir *Dir) Handler {
	return func(reqpath []string, w http.ResponseWriter, r *http.Request) bool {
		if len(reqpath) > 0 {
			return true
		}

		if dir.Template != nil {
			var buf bytes.Buffer
			err := dir.Template.ExecuteTemplate(&buf, "html", TemplateData{
				Dir:     dir,
				Request: r,
			})
			if err != nil {
				buf.Reset()
				errExecuteTemplate.Execute(&buf, err)
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			io.Copy(w, &buf)
		}
		return false
	}
}

type TemplateData struct {
	Dir     *Dir
	Request *http.Request
}

// ExecuteTemplate executes the named template from dir.Template (not from data.Dir).
// If an error is returned, a template with an error message is executed.
// Use this function to embed content of a specific Dir, e.g. a blog post preview.
func (data TemplateData) ExecuteTemplate(dir *Dir, name string) template.HTML {
	var buf bytes.Buffer
	err := dir.Template.ExecuteTemplate(&buf, name, TemplateData{
		Dir:     dir,
		Request: data.Request,
	})
	if err != nil {
		buf.Reset()
		errExecuteTemplate.Execute(&buf, err)
	}
	return template.HTML(buf.String())
}

// Title returns the title of data.Dir, which is taken from front matter or else from the first heading of the "main" template.
func (data TemplateData) Title() string {
	if data.Dir == nil {
		return ""
	}
	if data.Dir.Title != "" {
		return data.Dir.Title
	}
	if data.Dir.Template == nil {
		return ""
	}
	return Heading(data.Dir.Template.Lookup("main"))
}
