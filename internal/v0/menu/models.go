package menu

// MealPlan is one published week of a canteen.
type MealPlan struct {
	Number  int    `json:"number"`
	Year    int    `json:"year"`
	Days    []Day  `json:"days"`
	Version string `json:"version"`
}

type Day struct {
	Date   string `json:"date"`
	Dishes []Dish `json:"dishes"`
}

type Dish struct {
	Name   string    `json:"name"`
	Prices PriceList `json:"prices"`
	Labels []string  `json:"labels"`
}

type PriceList struct {
	Students Price `json:"students"`
	Staff    Price `json:"staff"`
	Guests   Price `json:"guests"`
}

type Price struct {
	BasePrice    float64 `json:"base_price"`
	PricePerUnit float64 `json:"price_per_unit"`
	Unit         string  `json:"unit"`
}

type LabelText struct {
	DE string `json:"DE"`
	EN string `json:"EN"`
}

type LabelEntry struct {
	EnumName     string    `json:"enum_name"`
	Text         LabelText `json:"text"`
	Abbreviation string    `json:"abbreviation"`
}

// Week is everything fetched for one request.
type Week struct {
	Plan   MealPlan
	Labels []LabelEntry
}

// RenderedDish is the JSON view of a single laid out dish.
type RenderedDish struct {
	Name   string   `json:"name"`
	Price  string   `json:"price"`
	Labels []string `json:"labels"`
	Lines  []string `json:"lines"`
}

// RenderedMenu is the JSON view of a day.
type RenderedMenu struct {
	Location string         `json:"location"`
	Date     string         `json:"date"`
	Title    string         `json:"title"`
	Week     int            `json:"week"`
	Year     int            `json:"year"`
	Dishes   []RenderedDish `json:"dishes"`
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
