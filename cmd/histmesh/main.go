package main

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/histmesh"
	"github.com/osuushi/histmesh/advanced"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the triangulation. Input on stdin should be newline separated points
// in the form "x y". Blank lines and lines starting with # are ignored. The
// interior triangles are printed, followed by the triangle containing each
// --query point.
var (
	app = kingpin.New("histmesh", "Delaunay triangulation with history DAG point location.")

	seed             = app.Flag("seed", "Seed for the insertion order shuffle.").Default("0").Int64()
	nondeterministic = app.Flag("nondeterministic", "Seed the insertion order shuffle from the clock.").Bool()
	noLegalize       = app.Flag("no-legalize", "Skip Delaunay edge flips.").Bool()
	epsilon          = app.Flag("epsilon", "Use tolerant predicates with this epsilon instead of exact ones.").Float64()
	trace            = app.Flag("trace", "Trace every split and flip to stderr.").Bool()
	validate         = app.Flag("validate", "Check mesh invariants after building.").Bool()
	queries          = app.Flag("query", "Point to locate, as \"x,y\". Repeatable.").Short('q').Strings()
	pngPath          = app.Flag("png", "Render the mesh to this PNG file.").String()
	geojsonPath      = app.Flag("geojson", "Write the interior triangles and outline to this GeoJSON file.").String()
	scale            = app.Flag("scale", "Pixels per unit when rendering.").Default("10").Float64()
	showImage        = app.Flag("imgcat", "Print the rendered mesh to the terminal (iTerm only).").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if *showImage && !term.IsTerminal(int(os.Stdout.Fd())) {
		app.Fatalf("--imgcat needs stdout to be a terminal")
	}

	points, err := readPoints(os.Stdin)
	app.FatalIfError(err, "reading points")
	fmt.Printf("Read %d points\n", len(points))

	marks, err := parseQueries(*queries)
	app.FatalIfError(err, "parsing queries")

	mesh, err := histmesh.Triangulate(points, options()...)
	app.FatalIfError(err, "triangulating")

	if *validate {
		app.FatalIfError(mesh.Validate(), "validating")
	}

	for _, id := range mesh.InteriorTriangles() {
		t := mesh.Triangle(id)
		fmt.Printf("%g %g %g %g %g %g\n", t.A().X, t.A().Y, t.B().X, t.B().Y, t.C().X, t.C().Y)
	}

	for _, q := range marks {
		id, err := mesh.Locate(q)
		if err != nil {
			fmt.Printf("%v: %v\n", q, err)
			continue
		}
		fmt.Printf("%v: %s\n", q, mesh.Describe(id))
	}

	if *geojsonPath != "" {
		app.FatalIfError(writeGeoJSON(mesh, *geojsonPath), "exporting")
	}

	style := advanced.DrawStyle{Scale: *scale, Marks: marks}
	if *pngPath != "" {
		app.FatalIfError(mesh.SavePNG(*pngPath, style), "rendering")
	}
	if *showImage {
		app.FatalIfError(mesh.DebugDraw(style), "rendering")
	}
}

func options() []histmesh.Option {
	opts := []histmesh.Option{histmesh.WithSeed(*seed)}
	if *nondeterministic {
		opts = append(opts, histmesh.WithNondeterministic())
	}
	if *noLegalize {
		opts = append(opts, histmesh.WithoutLegalization())
	}
	if *epsilon > 0 {
		opts = append(opts, histmesh.WithPredicates(advanced.TolerantPredicates{Epsilon: *epsilon}))
	}
	if *trace {
		opts = append(opts, histmesh.WithTrace(os.Stderr))
	}
	return opts
}

func writeGeoJSON(mesh *histmesh.Mesh, path string) error {
	fc, err := mesh.FeatureCollection()
	if err != nil {
		return err
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding")
	}
	return errors.Wrapf(ioutil.WriteFile(path, data, 0644), "writing %s", path)
}

func readPoints(in io.Reader) ([]histmesh.Point, error) {
	var points []histmesh.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parseQueries(queries []string) ([]histmesh.Point, error) {
	var points []histmesh.Point
	for _, q := range queries {
		point, err := parsePoint(strings.Split(q, ","))
		if err != nil {
			return nil, errors.Wrapf(err, "query %q", q)
		}
		points = append(points, point)
	}
	return points, nil
}

func parsePoint(parts []string) (histmesh.Point, error) {
	if len(parts) != 2 {
		return histmesh.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(parts))
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return histmesh.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return histmesh.Point{}, errors.Wrap(err, "y")
	}
	return histmesh.Point{X: x, Y: y}, nil
}
