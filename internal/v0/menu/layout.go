package menu

import (
	"strings"
	"unicode/utf8"

	"mensa/internal/style"
)

// DefaultLineWidth is the width of a rendered line in columns.
const DefaultLineWidth = 80

// SplitName decides where a dish name breaks so that head, padding and price
// fit on one line of the given width. Lengths are counted in runes. tail is
// empty when the name fits.
func SplitName(name, price string, width int) (head, tail string, pad int) {
	nameLen := utf8.RuneCountInString(name)
	priceLen := utf8.RuneCountInString(price)

	pad = max(1, width-(nameLen+priceLen))
	if nameLen+priceLen+1 <= width {
		return name, "", pad
	}

	// A price wider than the line leaves no room for the name at all.
	avail := max(0, width-(priceLen+1))
	runes := []rune(name)
	return string(runes[:avail]), string(runes[avail:]), pad
}

// LayoutDish lays out one dish block: name head, padding and price on the
// first line, the wrapped name tail (if any) and the label text below.
func LayoutDish(name, price, labels string, width int) []style.Segment {
	head, tail, pad := SplitName(name, price, width)
	if tail != "" {
		tail += "\n"
	}
	return []style.Segment{
		{Text: head, Tag: style.Name},
		{Text: strings.Repeat(" ", pad), Tag: style.Plain},
		{Text: price, Tag: style.Price},
		{Text: "\n", Tag: style.Plain},
		{Text: tail, Tag: style.Name},
		{Text: labels, Tag: style.Plain},
		{Text: "\n", Tag: style.Plain},
	}
}

// Separator is the rule drawn between two dishes.
func Separator(width int) style.Segment {
	return style.Segment{Text: strings.Repeat("─", max(0, width-1)) + "┘\n", Tag: style.Rule}
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
