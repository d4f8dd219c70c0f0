// Package pointio reads and writes point sets.
//
// The text format is one point per line, "x y", separated by any whitespace.
// Blank lines and lines starting with '#' are ignored.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/hull/internal"
	"github.com/pkg/errors"
)

func ReadText(in io.Reader) ([]internal.Point, error) {
	var points []internal.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
		}
		point, err := parsePoint(fields[0], fields[1])
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

func WriteText(out io.Writer, points []internal.Point) error {
	w := bufio.NewWriter(out)
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%s %s\n", formatCoord(p.X), formatCoord(p.Y)); err != nil {
			return errors.Wrap(err, "writing points")
		}
	}
	return errors.Wrap(w.Flush(), "writing points")
}

// ReadSVG collects the vertices of every polygon and polyline, and the centers
// of every circle, in an SVG document. Transforms are not applied.
func ReadSVG(in io.Reader) ([]internal.Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []internal.Point
	for _, tag := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(tag) {
			// Both "x,y x,y" and "x y x y" are valid
			fields := strings.FieldsFunc(el.Attributes["points"], func(r rune) bool {
				return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
			})
			if len(fields)%2 != 0 {
				return nil, errors.Errorf("%s has an odd number of coordinates", tag)
			}
			for i := 0; i < len(fields); i += 2 {
				point, err := parsePoint(fields[i], fields[i+1])
				if err != nil {
					return nil, errors.Wrap(err, tag)
				}
				points = append(points, point)
			}
		}
	}
	for _, el := range root.FindAll("circle") {
		point, err := parsePoint(el.Attributes["cx"], el.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle")
		}
		points = append(points, point)
	}
	return points, nil
}

func parsePoint(xs, ys string) (internal.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid x value %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid y value %q", ys)
	}
	return internal.Point{X: x, Y: y}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
