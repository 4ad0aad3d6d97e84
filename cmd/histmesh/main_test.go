package main

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/histmesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPoints(t *testing.T) {
	input := `
# a square
0 0
10 0

10 10
  0   10
`
	points, err := readPoints(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []histmesh.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, points)

	_, err = readPoints(strings.NewReader("0 0\n1 2 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = readPoints(strings.NewReader("0 zero\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "y")
}

func TestParseQueries(t *testing.T) {
	points, err := parseQueries([]string{"1,2", " 3.5 , -4 "})
	require.NoError(t, err)
	assert.Equal(t, []histmesh.Point{{X: 1, Y: 2}, {X: 3.5, Y: -4}}, points)

	_, err = parseQueries([]string{"1;2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `query "1;2"`)
}

func TestWriteGeoJSON(t *testing.T) {
	mesh, err := histmesh.Triangulate([]histmesh.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mesh.geojson")
	require.NoError(t, writeGeoJSON(mesh, path))
	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)
	assert.Contains(t, string(data), `"boundary"`)
}
