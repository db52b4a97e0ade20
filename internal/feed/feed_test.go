package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func futureQuery() Query {
	return Query{Now: testNow, Loc: time.UTC}
}

func ids(items []Item) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestResolve_DerivesCategoryAndTimes(t *testing.T) {
	records := []Record{
		{ID: 1, Name: "Scrimmage", Tags: "soccer,athletic", StartsAt: "2026-01-10T18:00:00Z"},
		{ID: 2, Name: "Recital", Tags: "music", StartsAt: "2026-01-05T18:00:00Z"},
		{ID: 3, Name: "Mystery", Tags: "", StartsAt: "2026-01-06T18:00:00Z"},
	}

	items := Resolve(records, map[int64]struct{}{2: {}})

	require.Len(t, items, 3)
	assert.Equal(t, "Sports", items[0].Category)
	assert.Equal(t, "Music", items[1].Category)
	assert.Equal(t, "General", items[2].Category)
	assert.False(t, items[0].Favorite)
	assert.True(t, items[1].Favorite)
	assert.False(t, items[0].Times.Unparsed)
}

func TestApply_SortsAscendingByStart(t *testing.T) {
	items := Resolve([]Record{
		{ID: 1, StartsAt: "2026-01-10T18:00:00Z"},
		{ID: 2, StartsAt: "2026-01-05T18:00:00Z"},
	}, nil)

	out := Apply(items, futureQuery())

	assert.Equal(t, []int64{2, 1}, ids(out))
}

func TestApply_SortIsStable(t *testing.T) {
	// Identical starts keep input order.
	items := Resolve([]Record{
		{ID: 1, StartsAt: "2026-01-05T18:00:00Z"},
		{ID: 2, StartsAt: "2026-01-05T18:00:00Z"},
		{ID: 3, StartsAt: "2026-01-05T18:00:00Z"},
	}, nil)

	out := Apply(items, futureQuery())

	assert.Equal(t, []int64{1, 2, 3}, ids(out))
}

func TestApply_CategoryFilter(t *testing.T) {
	items := Resolve([]Record{
		{ID: 1, Tags: "soccer,athletic", StartsAt: "2026-01-10T18:00:00Z"},
		{ID: 2, Tags: "music", StartsAt: "2026-01-05T18:00:00Z"},
	}, nil)

	q := futureQuery()
	q.Category = "Sports"
	out := Apply(items, q)

	assert.Equal(t, []int64{1}, ids(out))
}

func TestApply_CategoryAllKeepsEverything(t *testing.T) {
	items := Resolve([]Record{
		{ID: 1, Tags: "soccer", StartsAt: "2026-01-10T18:00:00Z"},
		{ID: 2, Tags: "music", StartsAt: "2026-01-05T18:00:00Z"},
	}, nil)

	q := futureQuery()
	q.Category = "All"
	out := Apply(items, q)

	assert.Len(t, out, 2)
}

func TestApply_TextFilter(t *testing.T) {
	items := Resolve([]Record{
		{ID: 1, Name: "Open Mic Night", Location: "Stevenson Coffee House", StartsAt: "2026-01-10T18:00:00Z"},
		{ID: 2, Name: "Career Fair", Description: "Bring your resume", StartsAt: "2026-01-05T18:00:00Z"},
		{ID: 3, Name: "Study Jam", StartsAt: "2026-01-06T18:00:00Z"},
	}, nil)

	tests := []struct {
		name string
		text string
		want []int64
	}{
		{"matches name", "open mic", []int64{1}},
		{"matches description", "RESUME", []int64{2}},
		{"matches location", "coffee", []int64{1}},
		{"no match", "kayak", []int64{}},
		{"empty keeps all", "", []int64{2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := futureQuery()
			q.Text = tt.text
			assert.Equal(t, tt.want, ids(Apply(items, q)))
		})
	}
}

func TestApply_FutureOnly(t *testing.T) {
	items := Resolve([]Record{
		{ID: 1, StartsAt: "2025-12-20T18:00:00Z"}, // ended weeks ago
		{ID: 2, StartsAt: "2026-01-01T08:00:00Z"}, // earlier today, still current
		{ID: 3, StartsAt: "2026-01-10T18:00:00Z"},
		{ID: 4, StartsAt: "2025-12-30T10:00:00Z", EndsAt: "2026-01-02T10:00:00Z"}, // runs through tomorrow
	}, nil)

	out := Apply(items, futureQuery())

	assert.Equal(t, []int64{4, 2, 3}, ids(out))
}

func TestApply_IncludePast(t *testing.T) {
	items := Resolve([]Record{
		{ID: 1, StartsAt: "2025-12-20T18:00:00Z"},
		{ID: 2, StartsAt: "2026-01-10T18:00:00Z"},
	}, nil)

	q := futureQuery()
	q.IncludePast = true
	out := Apply(items, q)

	assert.Equal(t, []int64{1, 2}, ids(out))
}

func TestApply_DateRange(t *testing.T) {
	items := Resolve([]Record{
		{ID: 1, StartsAt: "2026-01-05T18:00:00Z"},
		{ID: 2, StartsAt: "2026-01-08T18:00:00Z"},
		{ID: 3, StartsAt: "2026-01-12T18:00:00Z"},
	}, nil)

	q := futureQuery()
	q.From = time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)
	q.To = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	q.Ranged = true
	out := Apply(items, q)

	// Bounds are inclusive on both ends.
	assert.Equal(t, []int64{2, 3}, ids(out))
}

func TestApply_UnparsedVisibleByDefault(t *testing.T) {
	items := Resolve([]Record{
		{ID: 1, StartsAt: "2026-01-10T18:00:00Z"},
		{ID: 2, StartsAt: "not-a-date"},
		{ID: 3, StartsAt: "tbd"},
		{ID: 4, StartsAt: "2026-01-05T18:00:00Z"},
	}, nil)

	out := Apply(items, futureQuery())

	// Unparsed events sort last, keeping input order among themselves.
	assert.Equal(t, []int64{4, 1, 2, 3}, ids(out))
}

func TestApply_UnparsedExcludedFromRange(t *testing.T) {
	items := Resolve([]Record{
		{ID: 1, StartsAt: "2026-01-10T18:00:00Z"},
		{ID: 2, StartsAt: "not-a-date"},
	}, nil)

	q := futureQuery()
	q.From = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	q.To = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	q.Ranged = true
	out := Apply(items, q)

	assert.Equal(t, []int64{1}, ids(out))
}

func TestApply_Idempotent(t *testing.T) {
	items := Resolve([]Record{
		{ID: 1, Tags: "music", StartsAt: "2026-01-10T18:00:00Z"},
		{ID: 2, StartsAt: "not-a-date"},
		{ID: 3, Tags: "soccer", StartsAt: "2026-01-05T18:00:00Z"},
	}, nil)

	q := futureQuery()
	once := Apply(items, q)
	twice := Apply(once, q)

	assert.Equal(t, once, twice)
}

func TestApply_ViewerLocationGranularity(t *testing.T) {
	pacific, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 07:00 UTC on Jan 1 is still Dec 31 in Pacific, so with a Pacific
	// viewer at 23:00 Dec 31 the event is current; a UTC viewer on Jan 1
	// sees it as yesterday.
	items := Resolve([]Record{
		{ID: 1, StartsAt: "2025-12-31T20:00:00Z"},
	}, nil)

	now := time.Date(2026, 1, 1, 7, 0, 0, 0, time.UTC)

	utcOut := Apply(items, Query{Now: now, Loc: time.UTC})
	assert.Empty(t, ids(utcOut))

	pacificOut := Apply(items, Query{Now: now, Loc: pacific})
	assert.Equal(t, []int64{1}, ids(pacificOut))
}
