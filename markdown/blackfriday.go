package markdown

import (
	"github.com/russross/blackfriday/v2"
)

type Blackfriday struct{}

func (Blackfriday) Convert(src string) (string, error) {
	out := blackfriday.Run(
		[]byte(src),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
	)
	return string(out), nil
}
