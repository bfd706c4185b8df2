package menu

import "strconv"

// FormatPrice renders a price tier. A base price wins, a per-unit price is
// appended when both are set, and otherwise the per-unit form is used even
// when it is zero.
func FormatPrice(p Price) string {
	hasBase := p.BasePrice != 0
	hasUnit := p.PricePerUnit != 0

	switch {
	case hasBase && hasUnit:
		return formatAmount(p.BasePrice) + "€ + " + formatAmount(p.PricePerUnit) + "€/" + p.Unit
	case hasBase:
		return formatAmount(p.BasePrice) + "€"
	default:
		return formatAmount(p.PricePerUnit) + "€/" + p.Unit
	}
}

// formatAmount prints the shortest representation of v, so 3.80 becomes "3.8".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
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
