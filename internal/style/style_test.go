package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainRendererKeepsText(t *testing.T) {
	segments := []Segment{{"Linsensuppe", Name}, {" ", Plain}, {"1.9€", Price}, {"\n", Plain}}
	assert.Equal(t, "Linsensuppe 1.9€\n", Render(PlainRenderer{}, segments))
	assert.Equal(t, "Linsensuppe 1.9€\n", Text(segments))
}

func TestANSIWrapsStyledSegments(t *testing.T) {
	out := NewANSI().Apply(Price, "1.9€")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "1.9€")
	assert.NotEqual(t, "1.9€", out)
}

func TestANSIKeepsNewlinesOutsideEscapes(t *testing.T) {
	out := NewANSI().Apply(Name, "head\ntail\n")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 2, strings.Count(out, "\n"))
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "\x1b["), line)
	}
}

func TestANSILeavesPlainAndEmptyAlone(t *testing.T) {
	a := NewANSI()
	assert.Equal(t, "   ", a.Apply(Plain, "   "))
	assert.Equal(t, "", a.Apply(Name, ""))
}

func TestFor(t *testing.T) {
	assert.IsType(t, PlainRenderer{}, For(false))
	assert.IsType(t, &ANSI{}, For(true))
}
