package menu

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
)

// Weeks start on Monday, matching both the German calendar and the order of
// days in the meal plan feed.
const firstWeekday = time.Monday

// LocaleFor returns the translator for a locale name, German when unknown.
func LocaleFor(name string) locales.Translator {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "en", "en_us", "en-us", "english":
		return en.New()
	default:
		return de.New()
	}
}

// ResolvedDate is the day a request asks for.
type ResolvedDate struct {
	Date time.Time
	Year int
	Week int
	// Index is the offset from the first day of the week.
	Index int
}

type DateResolver struct {
	locale   locales.Translator
	fallback locales.Translator
	loc      *time.Location
}

func NewDateResolver(locale locales.Translator, loc *time.Location) *DateResolver {
	if locale == nil {
		locale = de.New()
	}
	if loc == nil {
		loc = time.Local
	}
	return &DateResolver{locale: locale, fallback: en.New(), loc: loc}
}

// Resolve maps an optional weekday token onto the week containing now.
// Unrecognized tokens resolve to now.
func (r *DateResolver) Resolve(token string, now time.Time) ResolvedDate {
	now = now.In(r.loc)
	date := now
	if weekday, ok := r.ParseWeekday(token); ok {
		date = now.AddDate(0, 0, weekdayIndex(weekday)-weekdayIndex(now.Weekday()))
	}
	// The feed files weeks under the ISO week-year, so the last days of
	// December can belong to next year's week 1 (2024-12-31 is 2025/01).
	year, week := date.ISOWeek()
	return ResolvedDate{
		Date:  date,
		Year:  year,
		Week:  week,
		Index: weekdayIndex(date.Weekday()),
	}
}

// ParseWeekday understands the wide, abbreviated and short names of the
// configured locale and of English, and the numbers 0 (Sunday) to 6.
func (r *DateResolver) ParseWeekday(token string) (time.Weekday, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 || n > 6 {
			return 0, false
		}
		return time.Weekday(n), true
	}
	token = strings.TrimSuffix(token, ".")
	for _, t := range []locales.Translator{r.locale, r.fallback} {
		for _, names := range [][]string{t.WeekdaysWide(), t.WeekdaysAbbreviated(), t.WeekdaysShort()} {
			for i, name := range names {
				if strings.EqualFold(token, strings.TrimSuffix(name, ".")) {
					return time.Weekday(i), true
				}
			}
		}
	}
	return 0, false
}

// FormatDate renders e.g. "Freitag, Oktober 16. 2026".
func (r *DateResolver) FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %s %d. %d", r.locale.WeekdayWide(t.Weekday()), r.locale.MonthWide(t.Month()), t.Day(), t.Year())
}

func weekdayIndex(d time.Weekday) int {
	return (int(d) - int(firstWeekday) + 7) % 7
}

//   This project serves the daily menu of the TUM canteens as fixed-width text for terminals and scripts.
//   Mensa API Copyright (C) 2025 OpenSourceDUTH
//       This program is free software: you can redistribute it and/or modify
//       it under the terms of the GNU General Public License as published by
//       the Free Software Foundation, either version 3 of the License, or
//       (at your option) any later version.

//       This program is distributed in the hope that it will be useful,
//       but WITHOUT ANY WARRANTY; without even the implied warranty of
//       MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//       GNU General Public License for more details.

//       You should have received a copy of the GNU General Public License
//       along with this program.  If not, see <https://www.gnu.org/licenses/>.
