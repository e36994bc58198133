package circles

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCircle is returned when a circle has a negative radius or non-finite values.
var ErrInvalidCircle = errors.New("invalid circle")

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\r'
}

func skipSeparators(b []byte, i int) int {
	for i < len(b) && isSeparator(b[i]) {
		i++
	}
	return i
}

// ParseCircles parses circles from text with one circle per line given as its center x and y coordinates followed by its radius. Values are separated by whitespace and/or commas, text after a # is a comment, and blank lines are skipped. Errors are of type *parse.Error and hold the line and column.
func ParseCircles(r io.Reader) ([]Circle, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	circles := []Circle{}
	for start := 0; start < len(b); {
		end := bytes.IndexByte(b[start:], '\n')
		if end == -1 {
			end = len(b)
		} else {
			end += start
		}
		line := b[:end]
		if comment := bytes.IndexByte(line[start:], '#'); comment != -1 {
			line = line[:start+comment]
		}

		var vals [3]float64
		i := skipSeparators(line, start)
		for k := 0; k < 3 && i < len(line); k++ {
			f, n := strconv.ParseFloat(line[i:])
			if n == 0 {
				return nil, parse.NewError(bytes.NewReader(b), i, "bad number")
			}
			vals[k] = f
			i = skipSeparators(line, i+n)
			if k < 2 && i == len(line) {
				return nil, parse.NewError(bytes.NewReader(b), i, "expected x, y and radius")
			}
		}
		if i < len(line) {
			return nil, parse.NewError(bytes.NewReader(b), i, "unexpected value after radius")
		}
		if skipSeparators(line, start) < len(line) {
			c := Circle{Point{vals[0], vals[1]}, vals[2]}
			if !c.Valid() {
				return nil, parse.NewError(bytes.NewReader(b), start, "%v: %v", ErrInvalidCircle, c)
			}
			circles = append(circles, c)
		}
		start = end + 1
	}
	return circles, nil
}

type circleYAML struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

type circlesYAML struct {
	Circles []circleYAML `yaml:"circles"`
}

// ParseCirclesYAML parses circles from a YAML document of the form
//
//	circles:
//	  - {x: 0, y: 0, r: 1}
//	  - {x: 1, y: 1, r: 1}
func ParseCirclesYAML(r io.Reader) ([]Circle, error) {
	doc := circlesYAML{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("yaml: %w", err)
	}

	circles := make([]Circle, 0, len(doc.Circles))
	for i, item := range doc.Circles {
		c := Circle{Point{item.X, item.Y}, item.R}
		if !c.Valid() {
			return nil, fmt.Errorf("circle %d: %w: %v", i, ErrInvalidCircle, c)
		}
		circles = append(circles, c)
	}
	return circles, nil
}

// ParseCirclesGeoJSON parses circles from a GeoJSON feature collection of points with a numeric radius property.
func ParseCirclesGeoJSON(b []byte) ([]Circle, error) {
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}

	circles := make([]Circle, 0, len(fc.Features))
	for i, f := range fc.Features {
		center, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("feature %d: expected point geometry, got %v", i, geometryType(f.Geometry))
		}
		radius, ok := f.Properties["radius"].(float64)
		if !ok {
			return nil, fmt.Errorf("feature %d: expected numeric radius property", i)
		}

		c := Circle{Point{center.X(), center.Y()}, radius}
		if !c.Valid() {
			return nil, fmt.Errorf("feature %d: %w: %v", i, ErrInvalidCircle, c)
		}
		circles = append(circles, c)
	}
	return circles, nil
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "none"
	}
	return g.GeoJSONType()
}
