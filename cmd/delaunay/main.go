package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Triangulate a stream of points and report the mesh. Text input should be
// newline separated points in the form "x y"; blank lines and lines starting
// with "#" are skipped. SVG input takes circle centers and polygon vertices in
// document order.
//
// The first three points form the seed triangle. Later points should fall
// inside it.

var (
	app          = kingpin.New("delaunay", "Incremental Delaunay triangulation of a point stream.")
	input        = app.Flag("input", "Point file, or - for stdin.").Short('i').Default("-").String()
	inputFormat  = app.Flag("input-format", "Format of the input.").Default("text").Enum("text", "svg")
	outputFormat = app.Flag("output-format", "Format of the mesh report on stdout.").Short('o').Default("text").Enum("text", "yaml")
	pngPath      = app.Flag("png", "Write a render of the final mesh to this path.").String()
	stepsDir     = app.Flag("steps", "Write a render of every cavity to this directory.").String()
	scale        = app.Flag("scale", "Pixels per unit in renders.").Default("500").Float64()
	showImgcat   = app.Flag("imgcat", "Print the final render in the terminal (iTerm only).").Bool()
	epsilon      = app.Flag("epsilon", "Collinearity threshold for the circumcircle test.").Default(strconv.FormatFloat(advanced.DefaultEpsilon, 'g', -1, 64)).Float64()
	verbose      = app.Flag("verbose", "Log every insertion.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fail(err)
		}
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("error: %v", err)))
	os.Exit(1)
}

func run(logger *zap.Logger) error {
	in, err := openInput(*input)
	if err != nil {
		return err
	}
	defer in.Close()

	var points []advanced.Point
	switch *inputFormat {
	case "svg":
		points, err = advanced.ParsePointsSVG(in)
	default:
		points, err = readPoints(in)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, aurora.Green(fmt.Sprintf("Read %d points", len(points))))

	tr := advanced.NewTriangulator(advanced.WithLogger(logger), advanced.WithEpsilon(*epsilon))
	if *stepsDir != "" {
		if err := os.MkdirAll(*stepsDir, 0755); err != nil {
			return errors.Wrap(err, "creating steps directory")
		}
	}
	for _, p := range points {
		step, err := tr.Insert(p)
		if err != nil {
			return errors.Wrapf(err, "inserting point %d", tr.PointCount())
		}
		if *stepsDir != "" && step.State == advanced.StateTriangulated {
			path := filepath.Join(*stepsDir, fmt.Sprintf("step-%04d.png", step.Index))
			c, err := advanced.Draw(tr.Snapshot(), &step, advanced.DrawOptions{Scale: *scale})
			if err != nil {
				return errors.Wrapf(err, "drawing step %d", step.Index)
			}
			if err := c.SavePNG(path); err != nil {
				return errors.Wrapf(err, "writing %s", path)
			}
		}
	}

	snapshot := tr.Snapshot()
	if err := report(os.Stdout, snapshot, *outputFormat); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, aurora.Green(fmt.Sprintf("%d triangles (%s)", len(snapshot.Triangles), tr.State())))

	if *pngPath != "" || *showImgcat {
		path := *pngPath
		if path == "" {
			path = filepath.Join(os.TempDir(), "delaunay.png")
		}
		c, err := advanced.Draw(snapshot, nil, advanced.DrawOptions{Scale: *scale})
		if err != nil {
			return errors.Wrap(err, "drawing mesh")
		}
		if err := c.SavePNG(path); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
		if *showImgcat {
			imgcat.CatFile(path, os.Stdout)
		}
	}
	return nil
}

func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	return f, nil
}

func report(w io.Writer, snapshot advanced.Snapshot, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snapshot); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, snapshot.String())
		return err
	}
}

func readPoints(in io.Reader) ([]advanced.Point, error) {
	var points []advanced.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y %q", parts[1])
	}
	for _, v := range []float64{x, y} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return advanced.Point{}, errors.Errorf("coordinates must be finite, got %q", line)
		}
	}
	return advanced.Point{X: x, Y: y}, nil
}
