package timemodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_LayoutVariants(t *testing.T) {
	want := time.Date(2026, 4, 10, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"offset utc", "2026-04-10T18:30:00Z", want},
		{"fractional seconds", "2026-04-10T18:30:00.000000Z", want},
		{"numeric offset", "2026-04-10T11:30:00-07:00", want},
		{"no offset taken as utc", "2026-04-10T18:30:00", want},
		{"no offset fractional", "2026-04-10T18:30:00.123", want.Add(123 * time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := Resolve(tt.raw, "")
			require.False(t, tm.Unparsed)
			assert.True(t, tm.Start.Equal(tt.want), "got %v want %v", tm.Start, tt.want)
			assert.False(t, tm.HasEnd)
		})
	}
}

func TestResolve_Unparsed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not-a-date"},
		{"empty", ""},
		{"date only", "2026-04-10"},
		{"whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := Resolve(tt.raw, "")
			assert.True(t, tm.Unparsed)
			assert.Equal(t, tt.raw, tm.RawStart)
		})
	}
}

func TestResolve_UnparsedLabelsFallBackToRaw(t *testing.T) {
	tm := Resolve("sometime in spring", "")

	assert.Equal(t, "sometime in spring", tm.DateLabel(time.UTC))
	assert.Equal(t, "sometime in spring", tm.TimeLabel(time.UTC))
	assert.False(t, tm.AllDay(time.UTC))
	assert.False(t, tm.MultiDay(time.UTC))
}

func TestResolve_BadEndKeepsStart(t *testing.T) {
	tm := Resolve("2026-04-10T18:30:00Z", "whenever")

	require.False(t, tm.Unparsed)
	assert.False(t, tm.HasEnd)
	assert.Equal(t, "whenever", tm.RawEnd)
}

func TestResolve_RoundTripIdempotent(t *testing.T) {
	first := Resolve("2026-04-10T11:30:00-07:00", "")

	again := Resolve(first.Start.Format(time.RFC3339Nano), "")
	require.False(t, again.Unparsed)
	assert.True(t, first.Start.Equal(again.Start))
}

func TestAllDay(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"midnight to 23:59", "2026-04-10T00:00:00Z", "2026-04-10T23:59:00Z", true},
		{"within tolerance of midnight", "2026-04-10T00:00:45Z", "2026-04-10T23:58:30Z", true},
		{"just before midnight", "2026-04-09T23:59:30Z", "2026-04-10T23:59:00Z", true},
		{"midnight start, long span", "2026-04-10T00:00:00Z", "2026-04-10T21:00:00Z", true},
		{"midnight start, short span", "2026-04-10T00:00:00Z", "2026-04-10T02:00:00Z", false},
		{"midnight start, no end", "2026-04-10T00:00:00Z", "", false},
		{"evening event", "2026-04-10T18:00:00Z", "2026-04-10T20:00:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := Resolve(tt.start, tt.end)
			assert.Equal(t, tt.want, tm.AllDay(time.UTC))
		})
	}
}

func TestAllDay_ViewerLocation(t *testing.T) {
	pacific, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// Local midnight to 23:59 in Pacific, expressed with an offset.
	tm := Resolve("2026-04-10T00:00:00-07:00", "2026-04-10T23:59:00-07:00")

	assert.True(t, tm.AllDay(pacific))
	assert.False(t, tm.AllDay(time.UTC))
}

func TestMultiDay(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"same day", "2026-04-10T09:00:00Z", "2026-04-10T17:00:00Z", false},
		{"crosses midnight", "2026-04-10T22:00:00Z", "2026-04-11T01:00:00Z", true},
		{"three days", "2026-04-10T09:00:00Z", "2026-04-12T17:00:00Z", true},
		{"no end", "2026-04-10T09:00:00Z", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := Resolve(tt.start, tt.end)
			assert.Equal(t, tt.want, tm.MultiDay(time.UTC))
		})
	}
}

func TestDateLabel(t *testing.T) {
	single := Resolve("2026-04-10T18:00:00Z", "")
	assert.Equal(t, "Friday, Apr 10, 2026", single.DateLabel(time.UTC))

	multi := Resolve("2026-04-10T09:00:00Z", "2026-04-12T17:00:00Z")
	assert.Equal(t, "Friday, Apr 10, 2026 - Sunday, Apr 12, 2026", multi.DateLabel(time.UTC))
}

func TestTimeLabel(t *testing.T) {
	single := Resolve("2026-04-10T18:00:00Z", "")
	assert.Equal(t, "6:00 PM", single.TimeLabel(time.UTC))

	ranged := Resolve("2026-04-10T18:00:00Z", "2026-04-10T20:30:00Z")
	assert.Equal(t, "6:00 PM - 8:30 PM", ranged.TimeLabel(time.UTC))

	allDay := Resolve("2026-04-10T00:00:00Z", "2026-04-10T23:59:00Z")
	assert.Equal(t, "All Day", allDay.TimeLabel(time.UTC))
}

func TestTimeLabel_EndBeforeStart(t *testing.T) {
	// Inverted ranges render as given rather than erroring.
	tm := Resolve("2026-04-10T20:00:00Z", "2026-04-10T18:00:00Z")

	require.False(t, tm.Unparsed)
	assert.Equal(t, "8:00 PM - 6:00 PM", tm.TimeLabel(time.UTC))
	assert.False(t, tm.AllDay(time.UTC))
}

func TestListedThrough(t *testing.T) {
	withEnd := Resolve("2026-04-10T09:00:00Z", "2026-04-12T17:00:00Z")
	assert.True(t, withEnd.ListedThrough().Equal(withEnd.End))

	withoutEnd := Resolve("2026-04-10T09:00:00Z", "")
	assert.True(t, withoutEnd.ListedThrough().Equal(withoutEnd.Start))
}

func TestFromInstants(t *testing.T) {
	pacific, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	start := time.Date(2026, 4, 10, 11, 0, 0, 0, pacific)
	end := time.Date(2026, 4, 10, 13, 0, 0, 0, pacific)

	tm := FromInstants(start, &end)

	require.True(t, tm.HasEnd)
	assert.Equal(t, time.UTC, tm.Start.Location())
	assert.True(t, tm.Start.Equal(start))
	assert.Equal(t, "11:00 AM - 1:00 PM", tm.TimeLabel(pacific))
}

func TestStartOfDay(t *testing.T) {
	pacific, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 06:00 UTC on Apr 11 is still Apr 10 in Pacific.
	instant := time.Date(2026, 4, 11, 6, 0, 0, 0, time.UTC)
	got := StartOfDay(instant, pacific)

	assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, pacific), got)
}
