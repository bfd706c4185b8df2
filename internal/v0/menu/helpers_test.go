package menu

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// fakeFeeds serves a meal plan and the label dictionary like the upstream
// static site does.
type fakeFeeds struct {
	plan        MealPlan
	labels      []LabelEntry
	planStatus  int
	labelStatus int

	mu    sync.Mutex
	paths []string
}

func (f *fakeFeeds) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.paths = append(f.paths, r.URL.Path)
	f.mu.Unlock()

	write := func(status int, v any) {
		if status != 0 && status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	if r.URL.Path == "/enums/labels.json" {
		write(f.labelStatus, f.labels)
		return
	}
	write(f.planStatus, f.plan)
}

func (f *fakeFeeds) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

func newFakeFeeds(t *testing.T, f *fakeFeeds) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)
	return ts
}

// weekWith puts dishes on the day at index and leaves the rest empty.
func weekWith(index int, dishes ...Dish) MealPlan {
	plan := MealPlan{Number: 42, Year: 2026, Version: "2.1"}
	for i := 0; i < 5; i++ {
		day := Day{Date: time.Date(2026, time.October, 12+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")}
		if i == index {
			day.Dishes = dishes
		}
		plan.Days = append(plan.Days, day)
	}
	return plan
}

var linsensuppe = Dish{
	Name:   "Linsensuppe",
	Prices: PriceList{Students: Price{BasePrice: 1.9, Unit: "Stück"}},
	Labels: []string{"VEGN"},
}
