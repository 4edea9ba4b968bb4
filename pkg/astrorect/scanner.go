package astrorect

import (
	"errors"
	"fmt"

	"github.com/Asteroidea-tn/astrotiles/pkg/astrogeom"
)

// ErrAreaOverflow is returned when a pair spans more cells than an int64 holds.
var ErrAreaOverflow = errors.New("rectangle area overflows int64")

// Admissibility decides whether the rectangle spanned by a and b may count
// towards the maximum. Implementations must not depend on call order: the
// scanner skips the check for pairs that cannot beat the running maximum.
type Admissibility interface {
	Admit(a, b astrogeom.Point) (bool, error)
}

// AdmitFunc adapts a plain function to Admissibility.
type AdmitFunc func(a, b astrogeom.Point) (bool, error)

// Admit calls f(a, b).
func (f AdmitFunc) Admit(a, b astrogeom.Point) (bool, error) {
	return f(a, b)
}

// AdmitAll accepts every pair.
var AdmitAll Admissibility = AdmitFunc(func(_, _ astrogeom.Point) (bool, error) {
	return true, nil
})

// Result is the best rectangle found by Scan. Rect keeps the two input points
// in scan order; Bounds is the same box with its min and max corners.
type Result struct {
	Area   int64          `yaml:"area"`
	Rect   astrogeom.Rect `yaml:"corners"`
	Bounds astrogeom.Rect `yaml:"bounds"`
	Found  bool           `yaml:"found"`
}

// FindBiggest returns the largest admissible area, or 0 when no pair qualifies.
func FindBiggest(points []astrogeom.Point, admit Admissibility) (int64, error) {
	res, err := Scan(points, admit)
	if err != nil {
		return 0, err
	}
	return res.Area, nil
}

// Scan visits every unordered pair of distinct points once and keeps the
// admissible pair with the biggest area. A nil admit accepts every pair.
// An error from admit, or a pair whose area overflows, stops the scan.
func Scan(points []astrogeom.Point, admit Admissibility) (Result, error) {
	if admit == nil {
		admit = AdmitAll
	}

	var best Result
	processed := make(map[astrogeom.Point]struct{}, len(points))

	for _, a := range points {
		for _, b := range points {
			if a == b {
				continue
			}
			if _, done := processed[b]; done {
				continue
			}

			area, ok := astrogeom.CheckedArea(a, b)
			if !ok {
				return Result{}, fmt.Errorf("%v / %v: %w", a, b, ErrAreaOverflow)
			}
			if area <= best.Area {
				continue
			}

			ok, err := admit.Admit(a, b)
			if err != nil {
				return Result{}, fmt.Errorf("admit %v / %v: %w", a, b, err)
			}
			if ok {
				rect := astrogeom.Rect{Start: a, End: b}
				best = Result{
					Area:   area,
					Rect:   rect,
					Bounds: rect.Normalize(),
					Found:  true,
				}
			}
		}
		processed[a] = struct{}{}
	}

	return best, nil
}
