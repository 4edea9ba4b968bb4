package astrogeom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Asteroidea-tn/astrotiles/pkg/astrogeom"
)

func TestArea(t *testing.T) {
	tests := []struct {
		name string
		a, b astrogeom.Point
		want int64
	}{
		{"inclusive cells", astrogeom.Point{X: 0, Y: 0}, astrogeom.Point{X: 3, Y: 4}, 20},
		{"single row", astrogeom.Point{X: 2, Y: 5}, astrogeom.Point{X: 9, Y: 5}, 8},
		{"same point", astrogeom.Point{X: 1, Y: 1}, astrogeom.Point{X: 1, Y: 1}, 1},
		{"negative coordinates", astrogeom.Point{X: -2, Y: -1}, astrogeom.Point{X: 1, Y: 1}, 12},
		{"large values do not overflow", astrogeom.Point{X: 0, Y: 0}, astrogeom.Point{X: 99999, Y: 99999}, 10000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, astrogeom.Area(tt.a, tt.b))
			assert.Equal(t, tt.want, astrogeom.Area(tt.b, tt.a), "area must be symmetric")
			assert.Equal(t, tt.want, astrogeom.Rect{Start: tt.a, End: tt.b}.Area())
		})
	}
}

func TestCheckedArea(t *testing.T) {
	// 2^32 columns by 2^31-1 rows is the widest box that still fits.
	area, ok := astrogeom.CheckedArea(
		astrogeom.Point{X: math.MinInt32, Y: 0},
		astrogeom.Point{X: math.MaxInt32, Y: math.MaxInt32 - 1},
	)
	assert.True(t, ok)
	assert.Equal(t, int64(1<<32)*int64(math.MaxInt32), area)

	_, ok = astrogeom.CheckedArea(
		astrogeom.Point{X: math.MinInt32, Y: 0},
		astrogeom.Point{X: math.MaxInt32, Y: math.MaxInt32},
	)
	assert.False(t, ok, "2^32 * 2^31 cells overflow int64")

	_, ok = astrogeom.CheckedArea(
		astrogeom.Point{X: math.MinInt32, Y: math.MinInt32},
		astrogeom.Point{X: math.MaxInt32, Y: math.MaxInt32},
	)
	assert.False(t, ok)
}

func TestBoundingBox(t *testing.T) {
	box := astrogeom.BoundingBox(
		astrogeom.Point{X: 7, Y: 1},
		astrogeom.Point{X: 2, Y: 5},
		astrogeom.Point{X: 11, Y: 3},
	)
	assert.Equal(t, astrogeom.Rect{
		Start: astrogeom.Point{X: 2, Y: 1},
		End:   astrogeom.Point{X: 11, Y: 5},
	}, box)

	single := astrogeom.BoundingBox(astrogeom.Point{X: 4, Y: 4})
	assert.Equal(t, astrogeom.Point{X: 4, Y: 4}, single.Start)
	assert.Equal(t, astrogeom.Point{X: 4, Y: 4}, single.End)
}

func TestRectNormalize(t *testing.T) {
	r := astrogeom.Rect{Start: astrogeom.Point{X: 5, Y: 0}, End: astrogeom.Point{X: 1, Y: 3}}
	n := r.Normalize()
	assert.Equal(t, astrogeom.Point{X: 1, Y: 0}, n.Start)
	assert.Equal(t, astrogeom.Point{X: 5, Y: 3}, n.End)
	assert.Equal(t, r.Area(), n.Area())
}

func TestRectContains(t *testing.T) {
	r := astrogeom.Rect{Start: astrogeom.Point{X: 1, Y: 1}, End: astrogeom.Point{X: 3, Y: 2}}

	assert.True(t, r.Contains(astrogeom.Point{X: 1, Y: 1}), "lower corner is inside")
	assert.True(t, r.Contains(astrogeom.Point{X: 3, Y: 2}), "upper corner is inside")
	assert.True(t, r.Contains(astrogeom.Point{X: 2, Y: 2}))
	assert.False(t, r.Contains(astrogeom.Point{X: 0, Y: 1}))
	assert.False(t, r.Contains(astrogeom.Point{X: 2, Y: 3}))

	// An inverted band (e.g. rows y+1..y-1 between adjacent rows) holds nothing.
	empty := astrogeom.Rect{Start: astrogeom.Point{X: 1, Y: 3}, End: astrogeom.Point{X: 5, Y: 2}}
	assert.False(t, empty.Contains(astrogeom.Point{X: 2, Y: 2}))
	assert.False(t, empty.Contains(astrogeom.Point{X: 2, Y: 3}))
}

func TestIntervals(t *testing.T) {
	assert.True(t, astrogeom.InInterval(3, 3, 3))
	assert.False(t, astrogeom.InInterval(4, 3, 3))

	assert.True(t, astrogeom.Straddles(0, 5, 1, 4))
	assert.False(t, astrogeom.Straddles(1, 5, 1, 4), "touching the low end is not straddling")
	assert.False(t, astrogeom.Straddles(0, 4, 1, 4), "touching the high end is not straddling")
}
