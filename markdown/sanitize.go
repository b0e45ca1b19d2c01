package markdown

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitized returns a converter which cleans the output of c with bluemonday's UGC policy.
func Sanitized(c Converter) Converter {
	policy := bluemonday.UGCPolicy()
	return ConverterFunc(func(src string) (string, error) {
		out, err := c.Convert(src)
		if err != nil {
			return "", err
		}
		return policy.Sanitize(out), nil
	})
}
