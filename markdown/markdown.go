// Package markdown provides the Markdown converters a site can be configured with.
package markdown

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Format is the key of the Markdown converter in Converters.
const Format = "markdown"

var (
	ErrNoConverter   = errors.New("no converter configured")
	ErrUnknownEngine = errors.New("unknown markdown engine")
)

// A Converter turns Markdown source into HTML.
type Converter interface {
	Convert(src string) (string, error)
}

type ConverterFunc func(src string) (string, error)

func (fn ConverterFunc) Convert(src string) (string, error) {
	return fn(src)
}

// Converters holds one converter per format. It is usually created once per build and shared by all pages.
type Converters map[string]Converter

// FindConverter returns the converter for the given format.
func (c Converters) FindConverter(format string) (Converter, error) {
	conv, ok := c[format]
	if !ok || conv == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoConverter, format)
	}
	return conv, nil
}

var engines = map[string]func() Converter{
	"blackfriday": func() Converter { return Blackfriday{} },
	"commonmark":  func() Converter { return NewCommonmark() },
	"goldmark":    func() Converter { return NewGoldmark() },
	"gomarkdown":  func() Converter { return Gomarkdown{} },
}

// Engines returns the names accepted by New, sorted.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a converter backed by the named engine.
func New(engine string) (Converter, error) {
	mk, ok := engines[strings.ToLower(strings.TrimSpace(engine))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
	return mk(), nil
}
