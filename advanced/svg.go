package advanced

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read points out of an SVG document. This is not a full SVG reader: it takes
// the center of every <circle> and every vertex of every <polygon> or
// <polyline>, in document order, and ignores transforms.
func ParsePointsSVG(r io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Point
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle":
			x, err := parseSVGNumber(el.Attributes["cx"])
			if err != nil {
				return errors.Wrap(err, "circle cx")
			}
			y, err := parseSVGNumber(el.Attributes["cy"])
			if err != nil {
				return errors.Wrap(err, "circle cy")
			}
			points = append(points, Point{x, y})
		case "polygon", "polyline":
			vertices, err := parseSVGPointList(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "%s points", el.Name)
			}
			points = append(points, vertices...)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return points, nil
}

// Parses "x1,y1 x2,y2 ..."
func parseSVGPointList(s string) ([]Point, error) {
	var points []Point
	for _, pair := range strings.Fields(s) {
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid point %q", pair)
		}
		x, err := parseSVGNumber(parts[0])
		if err != nil {
			return nil, err
		}
		y, err := parseSVGNumber(parts[1])
		if err != nil {
			return nil, err
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}

func parseSVGNumber(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("missing value")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	return v, nil
}
