package gridmenu

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

const (
	coordinateWidth = 8 // characters kept per normalised coordinate
	columnX         = "x"
	columnY         = "y"
)

// formatCoordinate renders v as a plain decimal string cut to
// coordinateWidth characters. The integer part is never cut. A minus sign
// takes one of the characters, so negative values (points dragged off the
// surface) keep one decimal fewer.
func formatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s) <= coordinateWidth {
		return s
	}
	s = s[:max(coordinateWidth, dot)]
	return strings.TrimSuffix(s, ".")
}

// ExportCoordinates writes points as CSV with an "x,y" header, one row per
// point, each coordinate divided by the matching surface dimension. The
// result does not depend on the surface size it was produced on.
func ExportCoordinates(points []Vec2, width, height float64) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{columnX, columnY})
	for _, p := range points {
		_ = w.Write([]string{
			formatCoordinate(p.X / width),
			formatCoordinate(p.Y / height),
		})
	}
	w.Flush()
	return b.String()
}

// ImportCoordinates parses text produced by ExportCoordinates (or edited by
// hand) and scales each record by width and height, in file order. Columns
// are found by header name; extra columns are ignored. A missing header,
// missing field or non-numeric value fails with ErrTypeParse.
func ImportCoordinates(text string, width, height float64) ([]Vec2, error) {
	if !validDimensions(width, height) {
		return nil, invalidDimension(width, height)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("coordinate text is empty").WithType(ErrTypeParse)
	}
	if err != nil {
		return nil, errors.New("reading coordinate header failed").WithType(ErrTypeParse).Wrap(err)
	}

	xi, yi := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case columnX:
			xi = i
		case columnY:
			yi = i
		}
	}
	if xi < 0 || yi < 0 {
		return nil, errors.New("coordinate header must name x and y columns").WithType(ErrTypeParse).
			WithTag("header", strings.Join(header, ","))
	}

	points := []Vec2{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.New("reading coordinate row failed").WithType(ErrTypeParse).Wrap(err)
		}
		line, _ := r.FieldPos(0)

		if len(rec) <= max(xi, yi) {
			return nil, errors.New("coordinate row is missing a field").WithType(ErrTypeParse).
				WithTag("line", line)
		}
		x, err := parseCoordinate(rec[xi], columnX, line)
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(rec[yi], columnY, line)
		if err != nil {
			return nil, err
		}
		points = append(points, Vec2{X: x * width, Y: y * height})
	}
	return points, nil
}

// parseCoordinate parses one normalised field. NaN and infinities are
// rejected along with non-numeric text.
func parseCoordinate(field, column string, line int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(column+" is not a finite number").WithType(ErrTypeParse).
			WithTag("line", line).
			WithTag("value", field)
	}
	return v, nil
}
