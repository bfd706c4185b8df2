package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultBaseURL = "https://tum-dev.github.io/eat-api"

const (
	FeedMealPlan = "meal plan"
	FeedLabels   = "labels"
)

// FeedLocator builds the URLs of the two upstream feeds.
type FeedLocator struct {
	BaseURL string
}

func (l FeedLocator) base() string {
	base := strings.TrimRight(strings.TrimSpace(l.BaseURL), "/")
	if base == "" {
		return DefaultBaseURL
	}
	return base
}

// MealPlanURL points at the week document, e.g. .../mensa-arcisstr/2026/42.json.
// Week numbers are zero-padded ("2026/03.json") because that is how the feed
// names its files; an unpadded "2026/3.json" is not published.
func (l FeedLocator) MealPlanURL(location string, year, week int) string {
	return fmt.Sprintf("%s/%s/%d/%02d.json", l.base(), url.PathEscape(location), year, week)
}

// LabelsURL points at the label dictionary shared by all canteens.
func (l FeedLocator) LabelsURL() string {
	return l.base() + "/enums/labels.json"
}

// FeedError reports a feed that could not be fetched or decoded.
type FeedError struct {
	Feed       string
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("%s feed %s: %s", e.Feed, e.URL, e.Reason())
}

func (e *FeedError) Unwrap() error { return e.Err }

// Reason is the short upstream explanation, e.g. "Not Found".
func (e *FeedError) Reason() string {
	if e.StatusCode != 0 {
		return e.Status
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// WeekFetcher loads the meal plan and labels for a week.
type WeekFetcher interface {
	FetchWeek(ctx context.Context, location string, year, week int) (*Week, error)
}

// Repository reads the upstream feeds over HTTP. Nothing is cached.
type Repository struct {
	locator FeedLocator
	client  *http.Client
	logger  *zap.Logger
}

// NewRepository creates a new feed repository
func NewRepository(locator FeedLocator, client *http.Client, logger *zap.Logger) *Repository {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{locator: locator, client: client, logger: logger}
}

// FetchWeek fetches both feeds concurrently. The first failure cancels the
// other request and is returned.
func (r *Repository) FetchWeek(ctx context.Context, location string, year, week int) (*Week, error) {
	var result Week
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.getJSON(ctx, FeedMealPlan, r.locator.MealPlanURL(location, year, week), &result.Plan)
	})
	g.Go(func() error {
		return r.getJSON(ctx, FeedLabels, r.locator.LabelsURL(), &result.Labels)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Repository) getJSON(ctx context.Context, feed, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &FeedError{Feed: feed, URL: u, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			r.logger.Warn("feed request failed", zap.String("feed", feed), zap.String("url", u), zap.Error(err))
		}
		return &FeedError{Feed: feed, URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		r.logger.Warn("feed returned error status",
			zap.String("feed", feed),
			zap.String("url", u),
			zap.Int("status", resp.StatusCode),
		)
		return &FeedError{Feed: feed, URL: u, StatusCode: resp.StatusCode, Status: statusText(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &FeedError{Feed: feed, URL: u, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// statusText strips the code from resp.Status, "404 Not Found" -> "Not Found".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	if text == "" {
		text = strconv.Itoa(resp.StatusCode)
	}
	return text
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
