package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"mensa/internal/style"
)

const (
	DefaultLocation = "mensa-arcisstr"
	NoMenuMessage   = "Kein Menü!\n"
)

// Config holds the rendering settings for every request.
type Config struct {
	DefaultLocation string
	LineWidth       int
	Dates           *DateResolver
	// Now is replaced in tests.
	Now func() time.Time
}

// Request is a parsed menu request. Empty fields fall back to defaults.
type Request struct {
	Location string
	Day      string
}

// ParsePath reads "/{location}/{day}", "/{day}" or "/".
func ParsePath(path string) Request {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) == 2 {
		return Request{Location: parts[0], Day: parts[1]}
	}
	return Request{Day: parts[0]}
}

// Result is a rendered day, ready to be styled.
type Result struct {
	Resolved ResolvedDate
	Menu     RenderedMenu
	Segments []style.Segment
}

type Renderer struct {
	cfg    Config
	feeds  WeekFetcher
	logger *zap.Logger
}

func NewRenderer(cfg Config, feeds WeekFetcher, logger *zap.Logger) *Renderer {
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = DefaultLocation
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = DefaultLineWidth
	}
	if cfg.Dates == nil {
		cfg.Dates = NewDateResolver(nil, nil)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{cfg: cfg, feeds: feeds, logger: logger}
}

// Render resolves the request, fetches the week and lays out the day. The
// only error it returns is a feed failure.
func (r *Renderer) Render(ctx context.Context, req Request) (*Result, error) {
	location := req.Location
	if location == "" {
		location = r.cfg.DefaultLocation
	}
	resolved := r.cfg.Dates.Resolve(req.Day, r.cfg.Now())

	week, err := r.feeds.FetchWeek(ctx, location, resolved.Year, resolved.Week)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Menü %s für %s:", location, r.cfg.Dates.FormatDate(resolved.Date))
	result := &Result{
		Resolved: resolved,
		Menu: RenderedMenu{
			Location: location,
			Date:     resolved.Date.Format("2006-01-02"),
			Title:    title,
			Week:     resolved.Week,
			Year:     resolved.Year,
			Dishes:   []RenderedDish{},
		},
		Segments: []style.Segment{
			{Text: title + "\n", Tag: style.Title},
			{Text: "\n", Tag: style.Plain},
		},
	}

	dishes := SelectDay(week.Plan, resolved.Index)
	if len(dishes) == 0 {
		result.Segments = append(result.Segments, style.Segment{Text: NoMenuMessage, Tag: style.Alert})
		return result, nil
	}

	labels := NewLabelIndex(week.Labels)
	for i, dish := range dishes {
		if i > 0 {
			result.Segments = append(result.Segments, Separator(r.cfg.LineWidth))
		}
		rendered, segments := r.renderDish(dish, labels)
		result.Menu.Dishes = append(result.Menu.Dishes, rendered)
		result.Segments = append(result.Segments, segments...)
	}
	return result, nil
}

func (r *Renderer) renderDish(dish Dish, labels LabelIndex) (RenderedDish, []style.Segment) {
	price := FormatPrice(dish.Prices.Students)
	abbrs, missing := labels.Resolve(dish.Labels)
	if len(missing) > 0 {
		r.logger.Debug("unknown label codes", zap.String("dish", dish.Name), zap.Strings("codes", missing))
	}

	segments := LayoutDish(dish.Name, price, strings.Join(abbrs, " "), r.cfg.LineWidth)
	return RenderedDish{
		Name:   dish.Name,
		Price:  price,
		Labels: abbrs,
		Lines:  strings.Split(strings.TrimSuffix(style.Text(segments), "\n"), "\n"),
	}, segments
}

// SelectDay returns the dishes of the day at index, or nil when the plan has
// no such day.
func SelectDay(plan MealPlan, index int) []Dish {
	if index < 0 || index >= len(plan.Days) {
		return nil
	}
	return plan.Days[index].Dishes
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
