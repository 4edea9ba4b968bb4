package astrogeom

import (
	"fmt"
	"math"
	"math/bits"
)

// Point is a lattice point.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Rect is an axis-aligned box given by two opposite corners.
// Contains treats Start as the inclusive lower corner and End as the inclusive upper one,
// so an inverted Rect contains nothing. Use Normalize or BoundingBox to order the corners.
type Rect struct {
	Start Point `yaml:"start"`
	End   Point `yaml:"end"`
}

// Area returns the number of lattice cells covered by the box.
func (r Rect) Area() int64 {
	return Area(r.Start, r.End)
}

// Normalize returns the same box with Start as the min corner and End as the max corner.
func (r Rect) Normalize() Rect {
	return BoundingBox(r.Start, r.End)
}

// Contains checks if p lies within the box, bounds included.
func (r Rect) Contains(p Point) bool {
	return InInterval(p.X, r.Start.X, r.End.X) && InInterval(p.Y, r.Start.Y, r.End.Y)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v .. %v]", r.Start, r.End)
}

// Area returns the inclusive cell count of the box with opposite corners a and b.
// The result wraps when it does not fit an int64; see CheckedArea.
func Area(a, b Point) int64 {
	area, _ := CheckedArea(a, b)
	return area
}

// CheckedArea is Area with ok set to false when the cell count exceeds math.MaxInt64.
func CheckedArea(a, b Point) (area int64, ok bool) {
	width := uint64(abs(a.X-b.X)) + 1
	height := uint64(abs(a.Y-b.Y)) + 1
	hi, lo := bits.Mul64(width, height)
	return int64(lo), hi == 0 && lo <= math.MaxInt64
}

// BoundingBox returns the smallest box holding all the given points.
func BoundingBox(first Point, rest ...Point) Rect {
	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y

	for _, p := range rest {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	return Rect{
		Start: Point{X: minX, Y: minY},
		End:   Point{X: maxX, Y: maxY},
	}
}

// InInterval reports whether lo <= v <= hi.
func InInterval(v, lo, hi int) bool {
	return lo <= v && v <= hi
}

// Straddles reports whether the span [from, to] reaches past both ends of [lo, hi].
func Straddles(from, to, lo, hi int) bool {
	return from < lo && to > hi
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
