package tag

// Comment is a block tag which renders nothing. Its body is parsed but never rendered.
func Comment() Definition {
	return Definition{
		Name:  "comment",
		Block: true,
		New: func(string, string) (Tag, error) {
			return comment{}, nil
		},
	}
}

type comment struct{}

func (comment) Render(*Context) (string, error) {
	return "", nil
}

func init() {
	Register(Comment())
}
