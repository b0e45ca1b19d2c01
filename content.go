package sealtag

// A ContentFunc processes file content, e. g. by populating dir.Template.New(filestem).
//
// Content funcs in package content expand tags first, so an error can also come from a tag.
type ContentFunc func(dir *Dir, filestem string, filecontent []byte) error
