// Package tsplib reads TSPLIB instance files with 2-D Euclidean node
// coordinates (EDGE_WEIGHT_TYPE EUC_2D).
//
// Only the parts a coordinate-based solver needs are understood: the
// header (NAME, COMMENT, TYPE, DIMENSION, EDGE_WEIGHT_TYPE)
// and NODE_COORD_SECTION, whose lines are "index x y". Lines with fewer than
// three fields are skipped, and reading stops at EOF.
package tsplib

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tsplab/tsp"
)

var (
	// ErrUnsupportedEdgeWeightType is returned for anything but EUC_2D.
	ErrUnsupportedEdgeWeightType = errors.New("tsplib: unsupported edge weight type")

	// ErrDimensionMismatch is returned when DIMENSION disagrees with the
	// number of coordinates read.
	ErrDimensionMismatch = errors.New("tsplib: dimension mismatch")

	// ErrMalformed is returned for unparsable header values or coordinates.
	ErrMalformed = errors.New("tsplib: malformed input")
)

// EUC2D is the only supported EDGE_WEIGHT_TYPE.
const EUC2D = "EUC_2D"

// Instance is a parsed coordinate file.
type Instance struct {
	Name           string
	Comment        string
	Type           string
	EdgeWeightType string

	// Dimension is the declared city count, 0 when the header omits it.
	Dimension int

	// Coords keep file order; city i is Coords[i].
	Coords []tsp.Coordinate
}

// Len returns the number of cities read.
func (in *Instance) Len() int { return len(in.Coords) }

// ParseFile opens path and parses it.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return in, nil
}

// Parse reads an instance from r.
func Parse(r io.Reader) (*Instance, error) {
	in := &Instance{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inSection := false
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "EOF") {
			break
		}
		if strings.HasPrefix(line, "NODE_COORD_SECTION") {
			inSection = true
			continue
		}
		if inSection {
			fields := strings.Fields(line)
			if len(fields) < 3 {
				continue
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			if errX != nil || errY != nil {
				return nil, errors.Wrapf(ErrMalformed, "line %d: coordinate %q", lineNo, line)
			}
			in.Coords = append(in.Coords, tsp.Coordinate{X: x, Y: y})
			continue
		}
		if err := in.setHeader(line, lineNo); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "tsplib: read failed")
	}

	if in.Dimension > 0 && in.Dimension != len(in.Coords) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "DIMENSION %d, read %d coordinates", in.Dimension, len(in.Coords))
	}

	return in, nil
}

// setHeader records one "KEY : VALUE" header line. Unknown keys and
// other sections are ignored.
func (in *Instance) setHeader(line string, lineNo int) error {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return nil
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	switch key {
	case "NAME":
		in.Name = value
	case "COMMENT":
		if in.Comment != "" {
			in.Comment += "\n"
		}
		in.Comment += value
	case "TYPE":
		in.Type = value
	case "DIMENSION":
		d, err := strconv.Atoi(value)
		if err != nil || d < 0 {
			return errors.Wrapf(ErrMalformed, "line %d: DIMENSION %q", lineNo, value)
		}
		in.Dimension = d
	case "EDGE_WEIGHT_TYPE":
		if !strings.EqualFold(value, EUC2D) {
			return errors.Wrapf(ErrUnsupportedEdgeWeightType, "line %d: %s", lineNo, value)
		}
		in.EdgeWeightType = EUC2D
	}

	return nil
}
