// Package feed turns a snapshot of event records into the filtered,
// sorted list the swipeable feed renders. Apply is a pure function of
// (items, query): same inputs, same output, no hidden state.
package feed

import (
	"sort"
	"strings"
	"time"

	"github.com/raksshana/SlugSync/internal/category"
	"github.com/raksshana/SlugSync/internal/timemodel"
)

// Record is an event as it crosses the wire: timestamps are raw
// ISO-8601 strings, tags a comma-joined label string.
type Record struct {
	ID          int64
	Name        string
	Location    string
	Description string
	Host        string
	Tags        string
	StartsAt    string
	EndsAt      string
}

// Item is a Record after canonicalization: resolved times plus the
// derived category, ready for filtering and display.
type Item struct {
	Record
	Times    timemodel.Times
	Category string
	Favorite bool
}

// Resolve canonicalizes a snapshot of records, preserving input order.
// favorites may be nil.
func Resolve(records []Record, favorites map[int64]struct{}) []Item {
	items := make([]Item, 0, len(records))
	for _, r := range records {
		_, fav := favorites[r.ID]
		items = append(items, Item{
			Record:   r,
			Times:    timemodel.Resolve(r.StartsAt, r.EndsAt),
			Category: category.Derive(r.Tags),
			Favorite: fav,
		})
	}
	return items
}

// Query selects and orders a resolved snapshot. The zero value keeps
// every category, matches no text, and shows future events only.
type Query struct {
	Category    string // empty or category.All keeps everything
	Text        string
	IncludePast bool

	// From/To bound the local calendar date of the start, inclusive,
	// and only apply when Ranged is set.
	From, To time.Time
	Ranged   bool

	Now time.Time
	Loc *time.Location
}

// Apply runs the fixed pipeline: category, text, future-only, optional
// date range, then an ascending stable sort by start. Each stage only
// narrows; nothing is reordered before the sort. Events with unparsed
// timestamps stay visible (favor showing over hiding) except inside an
// explicit date range, and always sort last in input order.
func Apply(items []Item, q Query) []Item {
	loc := q.Loc
	if loc == nil {
		loc = time.UTC
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !matchCategory(it, q.Category) {
			continue
		}
		if !matchText(it, q.Text) {
			continue
		}
		if !q.IncludePast && !stillCurrent(it, q.Now, loc) {
			continue
		}
		if q.Ranged && !inRange(it, q.From, q.To, loc) {
			continue
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Times, out[j].Times
		switch {
		case a.Unparsed:
			return false
		case b.Unparsed:
			return true
		default:
			return a.Start.Before(b.Start)
		}
	})

	return out
}

func matchCategory(it Item, selector string) bool {
	return selector == "" || selector == category.All || it.Category == selector
}

func matchText(it Item, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(it.Name), q) ||
		strings.Contains(strings.ToLower(it.Description), q) ||
		strings.Contains(strings.ToLower(it.Location), q)
}

// stillCurrent keeps an event through the whole of its last local
// calendar day. Unparsed events cannot be compared and stay visible.
func stillCurrent(it Item, now time.Time, loc *time.Location) bool {
	t := it.Times
	if t.Unparsed {
		return true
	}
	last := timemodel.StartOfDay(t.ListedThrough(), loc)
	return !last.Before(timemodel.StartOfDay(now, loc))
}

// inRange checks the local calendar date of the start against the
// inclusive [from, to] window. Unparsed events are excluded here: a
// bounded window promises bounded results.
func inRange(it Item, from, to time.Time, loc *time.Location) bool {
	t := it.Times
	if t.Unparsed {
		return false
	}
	day := timemodel.StartOfDay(t.Start, loc)
	return !day.Before(timemodel.StartOfDay(from, loc)) &&
		!day.After(timemodel.StartOfDay(to, loc))
}
