package tsplib_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsplab/tsp"
	"github.com/katalvlaran/tsplab/tsplib"
)

const square = `NAME : square4
COMMENT : unit square
COMMENT : second line
TYPE : TSP
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 0 1
3 1 1
4 1.0e0 0
EOF
5 9 9
`

func TestParse_Square(t *testing.T) {
	in, err := tsplib.Parse(strings.NewReader(square))
	require.NoError(t, err)

	assert.Equal(t, "square4", in.Name)
	assert.Equal(t, "unit square\nsecond line", in.Comment)
	assert.Equal(t, "TSP", in.Type)
	assert.Equal(t, tsplib.EUC2D, in.EdgeWeightType)
	assert.Equal(t, 4, in.Dimension)
	require.Equal(t, 4, in.Len())
	assert.Equal(t, []tsp.Coordinate{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}, in.Coords)
}

func TestParse_SkipsShortLinesAndNoEOF(t *testing.T) {
	src := "NAME: loose\nNODE_COORD_SECTION\n1 2 3\n\n2 4\n3 5 6 extra\n"
	in, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "loose", in.Name)
	assert.Zero(t, in.Dimension)
	assert.Equal(t, []tsp.Coordinate{{X: 2, Y: 3}, {X: 5, Y: 6}}, in.Coords)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"bad coordinate", "NODE_COORD_SECTION\n1 x 3\n", tsplib.ErrMalformed},
		{"bad dimension", "DIMENSION : four\n", tsplib.ErrMalformed},
		{"dimension mismatch", "DIMENSION : 3\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n", tsplib.ErrDimensionMismatch},
		{"explicit weights", "EDGE_WEIGHT_TYPE : EXPLICIT\n", tsplib.ErrUnsupportedEdgeWeightType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square4.tsp")
	require.NoError(t, os.WriteFile(path, []byte(square), 0o644))

	in, err := tsplib.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, in.Len())

	_, err = tsplib.ParseFile(filepath.Join(dir, "missing.tsp"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
