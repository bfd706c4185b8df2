package menu

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func TestResolveWithoutTokenUsesNow(t *testing.T) {
	loc := berlin(t)
	r := NewDateResolver(LocaleFor("de"), loc)
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, loc) // Friday

	got := r.Resolve("", now)

	assert.True(t, now.Equal(got.Date))
	assert.Equal(t, 2026, got.Year)
	assert.Equal(t, 42, got.Week)
	assert.Equal(t, 4, got.Index)
}

func TestResolveWeekdayTokens(t *testing.T) {
	loc := berlin(t)
	r := NewDateResolver(LocaleFor("de"), loc)
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, loc)

	tests := []struct {
		token string
		day   int
		index int
	}{
		{"Montag", 12, 0},
		{"montag", 12, 0},
		{"Mo.", 12, 0},
		{"mo", 12, 0},
		{"Mittwoch", 14, 2},
		{"wednesday", 14, 2},
		{"Thu", 15, 3},
		{"Freitag", 16, 4},
		{"Sonntag", 18, 6},
		{"1", 12, 0},
		{"0", 18, 6},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := r.Resolve(tt.token, now)
			assert.Equal(t, tt.day, got.Date.Day())
			assert.Equal(t, tt.index, got.Index)
			assert.Equal(t, 42, got.Week)
		})
	}
}

func TestResolveUnknownTokenFallsBackToNow(t *testing.T) {
	loc := berlin(t)
	r := NewDateResolver(LocaleFor("de"), loc)
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, loc)

	for _, token := range []string{"gestern", "7", "-1", "Mon-Fri"} {
		got := r.Resolve(token, now)
		assert.True(t, now.Equal(got.Date), token)
	}
}

func TestResolveUsesISOWeekYear(t *testing.T) {
	loc := berlin(t)
	r := NewDateResolver(LocaleFor("de"), loc)

	got := r.Resolve("", time.Date(2024, time.December, 31, 12, 0, 0, 0, loc))
	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, 1, got.Week)
	assert.Equal(t, 1, got.Index)
}

func TestResolveConvertsToConfiguredZone(t *testing.T) {
	loc := berlin(t)
	r := NewDateResolver(LocaleFor("de"), loc)

	// 23:30 UTC on Sunday is already Monday in Berlin
	got := r.Resolve("", time.Date(2026, time.October, 18, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Monday, got.Date.Weekday())
	assert.Equal(t, 43, got.Week)
}

func TestFormatDate(t *testing.T) {
	loc := berlin(t)
	date := time.Date(2026, time.October, 16, 10, 0, 0, 0, loc)

	assert.Equal(t, "Freitag, Oktober 16. 2026", NewDateResolver(LocaleFor("de"), loc).FormatDate(date))
	assert.Equal(t, "Friday, October 16. 2026", NewDateResolver(LocaleFor("en"), loc).FormatDate(date))
}
