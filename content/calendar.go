package content

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/wansing/sealtag"
)

var calendarTmpl = template.Must(template.New("").Parse(
	`<ul class="calendar">` +
		`{{range .}}<li>` +
		`<time datetime="{{.Start.Format "2006-01-02T15:04:05Z07:00"}}">{{.Start.Format "2006-01-02 15:04"}}</time> ` +
		`{{if .URL}}<a href="{{.URL}}">{{.Summary}}</a>{{else}}{{.Summary}}{{end}}` +
		`</li>{{end}}` +
		`</ul>`))

type Event struct {
	Start   time.Time
	End     time.Time
	Summary string
	URL     string
}

// Calendar lists the upcoming events of an iCalendar file (.ics).
// Recurring events are listed once, with their first occurrence.
type Calendar struct {
	Location *time.Location   // nil means time.Local
	Now      func() time.Time // nil means time.Now
	Limit    int              // 0 means no limit
}

func (c Calendar) Parse(dir *sealtag.Dir, filestem string, filecontent []byte) error {
	events, err := c.Upcoming(filecontent)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := calendarTmpl.Execute(&buf, events); err != nil {
		return err
	}
	// the output is parsed as a template, so event data must not contain actions
	return parseHTML(dir, filestem, strings.ReplaceAll(buf.String(), "{", "&#123;"))
}

// Upcoming returns the events of the calendar which have not ended yet, sorted by start.
func (c Calendar) Upcoming(ics []byte) ([]Event, error) {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	cal, err := ical.NewDecoder(bytes.NewReader(ics)).Decode()
	if err != nil {
		return nil, fmt.Errorf("decoding calendar: %w", err)
	}

	var events []Event
	for _, e := range cal.Events() {
		start, err := e.DateTimeStart(loc)
		if err != nil {
			return nil, fmt.Errorf("event start: %w", err)
		}
		end, err := e.DateTimeEnd(loc)
		if err != nil {
			return nil, fmt.Errorf("event end: %w", err)
		}
		if end.Before(start) {
			end = start
		}
		if !end.After(now()) {
			continue
		}
		event := Event{
			Start: start.In(loc),
			End:   end.In(loc),
		}
		if event.Summary, err = e.Props.Text(ical.PropSummary); err != nil {
			return nil, fmt.Errorf("event summary: %w", err)
		}
		if prop := e.Props.Get(ical.PropURL); prop != nil {
			event.URL = prop.Value
		}
		events = append(events, event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	if c.Limit > 0 && len(events) > c.Limit {
		events = events[:c.Limit]
	}
	return events, nil
}
