package sealtag

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/url"
	"path"
	"strings"
)

var errParsingContent = template.Must(template.New("").Parse(`<p style="border: solid red 2px; border-radius: 8px; padding: 12px">Error in {{.File}}: {{.Err}}</p>`))

// A Dir represents a filesystem directory.
type Dir struct {
	Fsys    fs.FS  // allows for testing
	URLPath string // with leading slash
	Title   string // set by content funcs, e.g. from front matter
	// routing
	Subdirs map[string]*Dir // key is the slug of the directory name
	// handling
	Handler  Handler
	Template *template.Template
}

// Load creates a *Dir from the given fsys.
//
// If a content func fails, the error is appended to errs and the template of the file shows an error notice instead.
func Load(config Config, parentTmpl *template.Template, fsys fs.FS, urlpath string, errs *[]Error) (*Dir, error) {
	if parentTmpl == nil {
		parentTmpl = template.New("")
	}

	tmpl, err := parentTmpl.Clone()
	if err != nil {
		return nil, err
	}
	dir := &Dir{
		Fsys:     fsys,
		URLPath:  urlpath,
		Template: tmpl,
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	// files
	var containsContent = false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := path.Ext(entry.Name())
		stem := strings.TrimSuffix(entry.Name(), ext)

		contentFunc, ok := config.Content[ext]
		if !ok {
			continue
		}
		containsContent = true
		filecontent, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, err
		}
		if err := contentFunc(dir, stem, filecontent); err != nil {
			*errs = append(*errs, Error{urlpath, entry.Name() + ": " + err.Error()})
			notice, err := errorNotice(entry.Name(), err)
			if err != nil {
				return nil, err
			}
			if _, err := dir.Template.New(stem).Parse(notice); err != nil {
				return nil, err
			}
		}
	}

	// subdirs
	dir.Subdirs = make(map[string]*Dir)
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == "" || entry.Name() == "." || entry.Name() == ".." || strings.HasPrefix(entry.Name(), ".") { // skip hidden subdirs
			continue
		}

		subfsys, err := fs.Sub(fsys, entry.Name())
		if err != nil {
			return nil, err
		}
		slug := Slugify(entry.Name())
		if _, ok := dir.Subdirs[slug]; ok {
			*errs = append(*errs, Error{urlpath, entry.Name() + ": another directory has the url path " + path.Join(urlpath, slug)})
			continue
		}
		subdir, err := Load(config, tmpl, subfsys, path.Join(urlpath, slug), errs)
		if err != nil {
			return nil, err
		}
		dir.Subdirs[slug] = subdir
	}

	// no template handler without content, because it would probably display duplicate content
	if containsContent {
		dir.Handler = MakeTemplateHandler(dir)
	}

	return dir, nil
}

// errorNotice safely wraps the error into an html string which contains no template actions
func errorNotice(file string, contentErr error) (string, error) {
	var buf bytes.Buffer
	err := errParsingContent.Execute(&buf, struct {
		File string
		Err  string
	}{file, contentErr.Error()})
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(buf.String(), "{", "&#123;"), nil
}

func Slugify(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = url.PathEscape(s) // just in case
	return s
}
