package astrotiles

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/Asteroidea-tn/astrotiles/pkg/astrogeom"
	"github.com/Asteroidea-tn/astrotiles/pkg/astropath"
	"github.com/Asteroidea-tn/astrotiles/pkg/astrorect"
)

// Report holds the answers for both rule variants.
type Report struct {
	Points       int              `yaml:"points"`
	Biggest      astrorect.Result `yaml:"biggest"`
	RedGreen     astrorect.Result `yaml:"biggest_red_green"`
	Reachability astropath.Stats  `yaml:"reachability"`
}

// BiggestRectangle returns the largest area spanned by any two points.
func BiggestRectangle(points []astrogeom.Point) (int64, error) {
	return astrorect.FindBiggest(points, astrorect.AdmitAll)
}

// BiggestRedGreenRectangle returns the largest area whose corners can reach
// each other around both sides of the rectangle.
func BiggestRedGreenRectangle(points []astrogeom.Point) (int64, error) {
	return astrorect.FindBiggest(points, astropath.New(points))
}

// Solve runs both scans over points.
func Solve(points []astrogeom.Point) (Report, error) {
	report := Report{Points: len(points)}

	started := time.Now()
	biggest, err := astrorect.Scan(points, astrorect.AdmitAll)
	if err != nil {
		return Report{}, fmt.Errorf("unconstrained scan: %w", err)
	}
	report.Biggest = biggest
	log.Info().
		Int64("area", biggest.Area).
		Stringer("bounds", biggest.Bounds).
		Dur("took", time.Since(started)).
		Msg("Unconstrained scan done")

	started = time.Now()
	pf := astropath.New(points)
	redGreen, err := astrorect.Scan(points, pf)
	if err != nil {
		return Report{}, fmt.Errorf("red and green scan: %w", err)
	}
	report.RedGreen = redGreen
	report.Reachability = pf.Stats()
	log.Info().
		Int64("area", redGreen.Area).
		Stringer("bounds", redGreen.Bounds).
		Int("queries", report.Reachability.Queries).
		Int("attempts", report.Reachability.Attempts).
		Dur("took", time.Since(started)).
		Msg("Red and green scan done")

	return report, nil
}

// WriteText prints the two result lines.
func (r Report) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Biggest rectangle: %d\nBiggest rectangle with red and green tiles: %d\n",
		r.Biggest.Area, r.RedGreen.Area)
	return err
}

// WriteYAML encodes the whole report.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
