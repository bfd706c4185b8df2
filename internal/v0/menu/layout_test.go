package menu

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mensa/internal/style"
)

func TestSplitNameFits(t *testing.T) {
	head, tail, pad := SplitName("Linsensuppe", "1.9€", 80)
	assert.Equal(t, "Linsensuppe", head)
	assert.Empty(t, tail)
	assert.Equal(t, 65, pad)
}

func TestSplitNameWraps(t *testing.T) {
	name := strings.Repeat("a", 90)
	price := "12.5€"

	head, tail, pad := SplitName(name, price, 80)

	avail := 80 - (utf8.RuneCountInString(price) + 1)
	assert.Equal(t, avail, len(head))
	assert.Equal(t, len(name)-avail, len(tail))
	assert.NotEmpty(t, tail)
	assert.Equal(t, 1, pad)
	assert.Equal(t, 80, len(head)+pad+utf8.RuneCountInString(price))
}

func TestSplitNameExactlyFullLineWraps(t *testing.T) {
	// name+price == width leaves no room for the single space
	head, tail, pad := SplitName(strings.Repeat("b", 76), "1.9€", 80)
	assert.Equal(t, 75, len(head))
	assert.Equal(t, "b", tail)
	assert.Equal(t, 1, pad)
}

func TestSplitNamePriceWiderThanLine(t *testing.T) {
	head, tail, pad := SplitName("Suppe", strings.Repeat("9", 20), 10)
	assert.Empty(t, head)
	assert.Equal(t, "Suppe", tail)
	assert.Equal(t, 1, pad)
}

func TestSplitNameCountsRunes(t *testing.T) {
	name := strings.Repeat("ü", 10)
	head, tail, pad := SplitName(name, "1€", 20)
	assert.Equal(t, name, head)
	assert.Empty(t, tail)
	assert.Equal(t, 8, pad)

	head, tail, _ = SplitName(name, "1€", 10)
	assert.Equal(t, strings.Repeat("ü", 7), head)
	assert.Equal(t, strings.Repeat("ü", 3), tail)
}

func TestLayoutDishSingleLine(t *testing.T) {
	segments := LayoutDish("Linsensuppe", "1.9€", "veg", 80)
	out := style.Text(segments)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Linsensuppe"+strings.Repeat(" ", 65)+"1.9€", lines[0])
	assert.GreaterOrEqual(t, utf8.RuneCountInString(lines[0]), 80)
	assert.Equal(t, "veg", lines[1])
	assert.Empty(t, lines[2])

	assert.Equal(t, style.Segment{Text: "Linsensuppe", Tag: style.Name}, segments[0])
	assert.Equal(t, style.Segment{Text: "1.9€", Tag: style.Price}, segments[2])
}

func TestLayoutDishWrapped(t *testing.T) {
	name := strings.Repeat("x", 78) + "Ende"
	out := style.Text(LayoutDish(name, "2€", "", 40))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Repeat("x", 37)+" 2€", lines[0])
	assert.Equal(t, strings.Repeat("x", 41)+"Ende", lines[1])
	assert.Empty(t, lines[2], "empty label line")
}

func TestSeparator(t *testing.T) {
	sep := Separator(80)
	assert.Equal(t, style.Rule, sep.Tag)
	assert.Equal(t, strings.Repeat("─", 79)+"┘\n", sep.Text)
}
