package astropoints

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Asteroidea-tn/astrotiles/pkg/astrogeom"
)

var (
	// ErrMalformedRecord marks a line that is not two comma separated 32-bit integers.
	ErrMalformedRecord = errors.New("malformed point record")
)

// Load reads the point file at path.
func Load(path string) ([]astrogeom.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open point file: %w", err)
	}
	defer file.Close()

	points, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("points", len(points)).Msg("Point file loaded")
	return points, nil
}

// Parse reads one "x,y" record per line, skipping empty lines.
// Points are returned in input order.
func Parse(r io.Reader) ([]astrogeom.Point, error) {
	scanner := bufio.NewScanner(r)

	var points []astrogeom.Point
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		point, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read points: %w", err)
	}

	return points, nil
}

func parseRecord(line string) (astrogeom.Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return astrogeom.Point{}, fmt.Errorf("%w: want 2 fields, got %d in %q", ErrMalformedRecord, len(fields), line)
	}

	// Coordinates are 32-bit so areas and the +/-1 region bounds stay within int64.
	x, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return astrogeom.Point{}, fmt.Errorf("%w: x: %w", ErrMalformedRecord, err)
	}
	y, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return astrogeom.Point{}, fmt.Errorf("%w: y: %w", ErrMalformedRecord, err)
	}

	return astrogeom.Point{X: int(x), Y: int(y)}, nil
}
