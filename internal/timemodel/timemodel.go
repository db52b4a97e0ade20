package timemodel

import (
	"strings"
	"time"
)

// layouts tried in order when resolving a raw timestamp. The first is
// the canonical wire format (ISO-8601 with fractional seconds and
// offset); the rest tolerate serializers that drop the fraction or the
// offset. A timestamp without an offset is taken as UTC.
var layouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

const (
	// Client clocks and serializers round-trip with up to a minute of
	// imprecision, so the all-day boundaries get the same slack.
	allDayTolerance = time.Minute
	allDayMinSpan   = 20 * time.Hour

	// An event without an end counts as one hour long for the
	// duration-based derivations.
	defaultDuration = time.Hour
)

const (
	dateLayout  = "Monday, Jan 2, 2006"
	clockLayout = "3:04 PM"
	allDayLabel = "All Day"
)

// Times is the canonical form of an event's schedule. Start and End
// are UTC instants; the display helpers render them in the viewer's
// location. An unparsable start yields the Unparsed sentinel: the raw
// strings become the labels and the event is excluded from date-based
// filtering, but it is never an error.
type Times struct {
	Start    time.Time
	End      time.Time
	HasEnd   bool
	Unparsed bool
	RawStart string
	RawEnd   string
}

// Resolve canonicalizes raw wire timestamps. It never fails; see
// Times.
func Resolve(rawStart, rawEnd string) Times {
	tm := Times{RawStart: rawStart, RawEnd: rawEnd}

	start, ok := parse(rawStart)
	if !ok {
		tm.Unparsed = true
		return tm
	}
	tm.Start = start

	if end, ok := parse(rawEnd); ok {
		tm.End = end
		tm.HasEnd = true
	}

	return tm
}

// FromInstants builds Times from already-parsed instants, the path
// taken server-side where timestamps come out of the database.
func FromInstants(start time.Time, end *time.Time) Times {
	tm := Times{Start: start.UTC()}
	if end != nil {
		tm.End = end.UTC()
		tm.HasEnd = true
	}
	return tm
}

func parse(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// effectiveEnd is the end used for duration-based derivations.
func (t Times) effectiveEnd() time.Time {
	if t.HasEnd {
		return t.End
	}
	return t.Start.Add(defaultDuration)
}

// AllDay reports whether the event renders as "All Day": the start
// within a minute of local midnight, and either the end within a
// minute of 23:59 or a total span of at least 20 hours.
func (t Times) AllDay(loc *time.Location) bool {
	if t.Unparsed {
		return false
	}
	if !nearMidnight(t.Start.In(loc)) {
		return false
	}
	if nearDayEnd(t.effectiveEnd().In(loc)) {
		return true
	}
	return t.effectiveEnd().Sub(t.Start) >= allDayMinSpan
}

// MultiDay reports whether start and end land on different calendar
// dates in the viewer's location. Without an end there is nothing to
// span.
func (t Times) MultiDay(loc *time.Location) bool {
	if t.Unparsed || !t.HasEnd {
		return false
	}
	return !sameDate(t.Start.In(loc), t.End.In(loc))
}

// DateLabel renders the local calendar date of the start, or a
// "start - end" pair for multi-day events. Unparsed events fall back
// to the raw start string so nothing silently disappears.
func (t Times) DateLabel(loc *time.Location) string {
	if t.Unparsed {
		return t.RawStart
	}
	start := t.Start.In(loc).Format(dateLayout)
	if !t.MultiDay(loc) {
		return start
	}
	return start + " - " + t.End.In(loc).Format(dateLayout)
}

// TimeLabel renders "All Day", a 12-hour "start - end" range when an
// end exists, or a single 12-hour time. Unparsed events fall back to
// the raw start string.
func (t Times) TimeLabel(loc *time.Location) string {
	if t.Unparsed {
		return t.RawStart
	}
	if t.AllDay(loc) {
		return allDayLabel
	}
	start := t.Start.In(loc).Format(clockLayout)
	if !t.HasEnd {
		return start
	}
	return start + " - " + t.End.In(loc).Format(clockLayout)
}

// ListedThrough returns the last instant the event stays listed by the
// future-only filter: the end when present, otherwise the start. The
// filter compares at calendar-day granularity.
func (t Times) ListedThrough() time.Time {
	if t.HasEnd {
		return t.End
	}
	return t.Start
}

// StartOfDay truncates an instant to local midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func secondsIntoDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func nearMidnight(t time.Time) bool {
	sod := secondsIntoDay(t)
	return sod <= 60 || sod >= 24*3600-60
}

func nearDayEnd(t time.Time) bool {
	diff := secondsIntoDay(t) - (23*3600 + 59*60)
	if diff < 0 {
		diff = -diff
	}
	return diff <= 60
}
