package menu

// LabelIndex maps a label code such as "VEGAN" to its short display form.
type LabelIndex map[string]string

// NewLabelIndex builds the index. A repeated code keeps the last entry.
func NewLabelIndex(entries []LabelEntry) LabelIndex {
	idx := make(LabelIndex, len(entries))
	for _, e := range entries {
		idx[e.EnumName] = e.Abbreviation
	}
	return idx
}

func (idx LabelIndex) Lookup(code string) (string, bool) {
	abbr, ok := idx[code]
	return abbr, ok
}

// Resolve maps codes to abbreviations in order. Unknown codes are left out
// of abbrs and reported in missing.
func (idx LabelIndex) Resolve(codes []string) (abbrs []string, missing []string) {
	abbrs = make([]string, 0, len(codes))
	for _, code := range codes {
		abbr, ok := idx.Lookup(code)
		if !ok {
			missing = append(missing, code)
			continue
		}
		abbrs = append(abbrs, abbr)
	}
	return abbrs, missing
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
