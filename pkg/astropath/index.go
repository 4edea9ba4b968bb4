package astropath

import (
	"fmt"
	"slices"

	"github.com/Asteroidea-tn/astrotiles/pkg/astrogeom"
)

// RowIndex maps a y coordinate to the sorted x coordinates of the points on that row.
type RowIndex map[int][]int

// ColumnIndex maps an x coordinate to the sorted y coordinates of the points on that column.
type ColumnIndex map[int][]int

// NewRowIndex indexes points by row.
func NewRowIndex(points []astrogeom.Point) RowIndex {
	return RowIndex(buildAxisIndex(points, func(p astrogeom.Point) (int, int) { return p.Y, p.X }))
}

// NewColumnIndex indexes points by column.
func NewColumnIndex(points []astrogeom.Point) ColumnIndex {
	return ColumnIndex(buildAxisIndex(points, func(p astrogeom.Point) (int, int) { return p.X, p.Y }))
}

// Row returns the x coordinates on row y.
func (idx RowIndex) Row(y int) ([]int, error) {
	xs, ok := idx[y]
	if !ok {
		return nil, fmt.Errorf("row y=%d: %w", y, ErrUnknownGridLine)
	}
	return xs, nil
}

// Column returns the y coordinates on column x.
func (idx ColumnIndex) Column(x int) ([]int, error) {
	ys, ok := idx[x]
	if !ok {
		return nil, fmt.Errorf("column x=%d: %w", x, ErrUnknownGridLine)
	}
	return ys, nil
}

func buildAxisIndex(points []astrogeom.Point, split func(astrogeom.Point) (key, value int)) map[int][]int {
	index := make(map[int][]int)
	for _, p := range points {
		key, value := split(p)
		index[key] = append(index[key], value)
	}
	for key, values := range index {
		slices.Sort(values)
		index[key] = slices.Compact(values)
	}
	return index
}

// pointSet holds the points already expanded by one bypass search.
type pointSet map[astrogeom.Point]struct{}

func (s pointSet) insert(p astrogeom.Point) {
	s[p] = struct{}{}
}

func (s pointSet) contains(p astrogeom.Point) bool {
	_, ok := s[p]
	return ok
}
