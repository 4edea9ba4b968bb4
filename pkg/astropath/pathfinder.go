package astropath

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/Asteroidea-tn/astrotiles/pkg/astrogeom"
)

var (
	// ErrUnknownGridLine is returned for a point whose row or column holds no indexed point.
	ErrUnknownGridLine = errors.New("no grid line through point")
	// ErrDiagonalSegment is returned when a step is neither horizontal nor vertical.
	ErrDiagonalSegment = errors.New("segment is neither horizontal nor vertical")
)

// Stats counts the work done by a PathFinder.
type Stats struct {
	Queries   int `yaml:"queries"`
	Attempts  int `yaml:"bypass_attempts"`
	Reachable int `yaml:"reachable"`
}

// PathFinder decides whether two corner points are joined by a path along the
// grid lines of a point set that goes around the rectangle they span.
//
// A PathFinder is reused across queries and is not safe for concurrent use.
type PathFinder struct {
	rows    RowIndex
	columns ColumnIndex

	// overwritten at the start of each bypass attempt
	forbidden astrogeom.Rect
	explored  pointSet

	stats Stats
}

// New indexes the rows and columns of points.
func New(points []astrogeom.Point) *PathFinder {
	pf := &PathFinder{
		rows:     NewRowIndex(points),
		columns:  NewColumnIndex(points),
		explored: make(pointSet),
	}
	log.Debug().
		Int("points", len(points)).
		Int("rows", len(pf.rows)).
		Int("columns", len(pf.columns)).
		Msg("Grid lines indexed")
	return pf
}

// Admit implements astrorect.Admissibility.
func (pf *PathFinder) Admit(a, b astrogeom.Point) (bool, error) {
	return pf.Reachable(a, b)
}

// Stats returns the counters accumulated so far.
func (pf *PathFinder) Stats() Stats {
	return pf.stats
}

// Reachable reports whether end can be reached from start both by passing
// left of the rectangle they span and by passing right of it.
// The right-hand attempt is skipped once the left-hand one fails.
func (pf *PathFinder) Reachable(start, end astrogeom.Point) (bool, error) {
	pf.stats.Queries++
	box := astrogeom.BoundingBox(start, end)

	//  ●─────────┐ start
	//  │*******************→
	//  │*******************→
	//  └─────────● end
	pf.forbidden = astrogeom.Rect{
		Start: astrogeom.Point{X: box.Start.X + 1, Y: box.Start.Y + 1},
		End:   astrogeom.Point{X: math.MaxInt, Y: box.End.Y - 1},
	}
	ok, err := pf.bypass(start, end)
	if err != nil || !ok {
		return false, err
	}

	//        ●─────────┐ start
	//  ←***************│
	//  ←***************│
	//        └─────────● end
	pf.forbidden = astrogeom.Rect{
		Start: astrogeom.Point{X: math.MinInt, Y: box.Start.Y + 1},
		End:   astrogeom.Point{X: box.End.X - 1, Y: box.End.Y - 1},
	}
	ok, err = pf.bypass(start, end)
	if err != nil || !ok {
		return false, err
	}

	pf.stats.Reachable++
	return true, nil
}

func (pf *PathFinder) bypass(start, end astrogeom.Point) (bool, error) {
	pf.stats.Attempts++
	clear(pf.explored)
	return pf.searchRow(start, end)
}

// searchRow tries every crossing on the row of p, continuing along its column.
func (pf *PathFinder) searchRow(p, end astrogeom.Point) (bool, error) {
	if pf.explored.contains(p) {
		return false, nil
	}

	xs, err := pf.rows.Row(p.Y)
	if err != nil {
		return false, err
	}

	if end.Y == p.Y {
		blocked, err := pf.blocked(p, end)
		if err != nil {
			return false, err
		}
		if !blocked && astrogeom.InInterval(end.X, xs[0], xs[len(xs)-1]) {
			return true, nil
		}
	}

	for _, x := range xs {
		next := astrogeom.Point{X: x, Y: p.Y}
		blocked, err := pf.blocked(p, next)
		if err != nil {
			return false, err
		}
		if blocked {
			continue
		}
		found, err := pf.searchColumn(next, end)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}

// searchColumn tries every crossing on the column of p, continuing along its row.
// Only column steps mark points as explored.
func (pf *PathFinder) searchColumn(p, end astrogeom.Point) (bool, error) {
	if pf.explored.contains(p) {
		return false, nil
	}

	ys, err := pf.columns.Column(p.X)
	if err != nil {
		return false, err
	}

	if end.X == p.X {
		blocked, err := pf.blocked(p, end)
		if err != nil {
			return false, err
		}
		if !blocked && astrogeom.InInterval(end.Y, ys[0], ys[len(ys)-1]) {
			return true, nil
		}
	}
	pf.explored.insert(p)

	for _, y := range ys {
		next := astrogeom.Point{X: p.X, Y: y}
		blocked, err := pf.blocked(p, next)
		if err != nil {
			return false, err
		}
		if blocked {
			continue
		}
		found, err := pf.searchRow(next, end)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}

// blocked reports whether the axis-aligned segment a-b ends inside the
// forbidden region or crosses it from one side to the other.
func (pf *PathFinder) blocked(a, b astrogeom.Point) (bool, error) {
	seg := astrogeom.BoundingBox(a, b)
	lo, hi := seg.Start, seg.End
	f := pf.forbidden

	if f.Contains(lo) || f.Contains(hi) {
		return true, nil
	}

	switch {
	case lo.Y == hi.Y:
		return astrogeom.Straddles(lo.X, hi.X, f.Start.X, f.End.X) &&
			astrogeom.InInterval(lo.Y, f.Start.Y, f.End.Y), nil
	case lo.X == hi.X:
		return astrogeom.Straddles(lo.Y, hi.Y, f.Start.Y, f.End.Y) &&
			astrogeom.InInterval(lo.X, f.Start.X, f.End.X), nil
	default:
		return false, fmt.Errorf("%v to %v: %w", a, b, ErrDiagonalSegment)
	}
}
