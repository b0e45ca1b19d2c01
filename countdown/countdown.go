// Package countdown provides the inline "countdown" tag:
//
//	{% countdown 2026-12-24 18:00:00 +0100 %}
//
// Importing the package registers the tag in tag.Default.
package countdown

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/icza/gox/timex"
	"github.com/wansing/sealtag/tag"
)

const (
	Name   = "countdown"
	Layout = "2006-01-02 15:04:05 -0700"
)

var tmpl = template.Must(template.New("").Parse(
	`<span class="countdown" data-end="{{.End.Unix}}">` +
		`<span class="years">{{.Years}}</span> years, ` +
		`<span class="months">{{.Months}}</span> months, ` +
		`<span class="days">{{.Days}}</span> days, ` +
		`<span class="hours">{{.Hours}}</span> hours, ` +
		`<span class="minutes">{{.Minutes}}</span> minutes, ` +
		`<span class="seconds">{{.Seconds}}</span> seconds` +
		`</span>`))

type data struct {
	End     time.Time
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

type Countdown struct {
	End time.Time
	Now func() time.Time
}

func New(_ string, markup string) (tag.Tag, error) {
	if markup == "" {
		return nil, errors.New("missing end time")
	}
	end, err := time.Parse(Layout, markup)
	if err != nil {
		return nil, fmt.Errorf("parsing time: %w", err)
	}
	return &Countdown{
		End: end,
		Now: time.Now,
	}, nil
}

func Definition() tag.Definition {
	return tag.Definition{
		Name: Name,
		New:  New,
	}
}

// Render renders the time left until c.End. If c.End has passed, all values are zero.
func (c *Countdown) Render(*tag.Context) (string, error) {
	d := data{End: c.End}
	if now := c.Now(); now.Before(c.End) {
		d.Years, d.Months, d.Days, d.Hours, d.Minutes, d.Seconds = timex.Diff(now, c.End) // respects leap years
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func init() {
	tag.Register(Definition())
}
