package figure

import (
	"errors"
	"image/color"
	"reflect"
	"testing"

	"shapepad/internal/geom"
)

func red() color.NRGBA  { return color.NRGBA{R: 255, A: 255} }
func blue() color.NRGBA { return color.NRGBA{B: 255, A: 255} }

func style() Style {
	return Style{Outline: red(), Fill: blue(), Filled: true, StrokeWidth: 4}
}

func TestHexColorRoundTrip(t *testing.T) {
	tests := []struct {
		c   color.NRGBA
		hex string
	}{
		{color.NRGBA{A: 255}, "#000000"},
		{color.NRGBA{R: 255, G: 255, B: 255, A: 255}, "#ffffff"},
		{color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}, "#1a2b3c"},
	}
	for _, tt := range tests {
		if got := HexColor(tt.c); got != tt.hex {
			t.Errorf("HexColor(%v) = %q, want %q", tt.c, got, tt.hex)
		}
		back, err := ParseHexColor(tt.hex)
		if err != nil {
			t.Fatalf("ParseHexColor(%q): %v", tt.hex, err)
		}
		if back != tt.c {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.hex, back, tt.c)
		}
	}
}

func TestParseHexColorRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "#fff", "123456", "#12345g", "#1234567"} {
		if _, err := ParseHexColor(s); !errors.Is(err, ErrParse) {
			t.Errorf("ParseHexColor(%q) = %v, want ErrParse", s, err)
		}
	}
}

func TestCircleRecordExample(t *testing.T) {
	fs := NewFigures()
	f, err := fs.AddCircle(100, 100, 50, style())
	if err != nil {
		t.Fatal(err)
	}
	rec := f.Record()
	if rec.Type != TypeCircle {
		t.Errorf("type = %q", rec.Type)
	}
	if !reflect.DeepEqual(rec.Params, []float64{100, 100, 50}) {
		t.Errorf("params = %v", rec.Params)
	}
	if rec.OutlineColor != "#ff0000" || rec.FillColor != "#0000ff" {
		t.Errorf("colors = %q / %q", rec.OutlineColor, rec.FillColor)
	}
	if !rec.Filled || rec.StrokeWidth != 4 {
		t.Errorf("filled=%v strokeWidth=%d", rec.Filled, rec.StrokeWidth)
	}
}

func TestRectangleRecordNormalizedCorners(t *testing.T) {
	// A drag from (40, 25) to (10, 20) lands as min corner + abs size.
	fs := NewFigures()
	f, err := fs.AddRectangle(10, 20, 30, 5, style())
	if err != nil {
		t.Fatal(err)
	}
	rec := f.Record()
	if rec.Type != TypeRectangle {
		t.Errorf("type = %q", rec.Type)
	}
	if !reflect.DeepEqual(rec.Params, []float64{10, 20, 30, 5}) {
		t.Errorf("params = %v", rec.Params)
	}
}

func TestPathClosureIdempotent(t *testing.T) {
	open := []geom.Point{geom.Pt(0, 0), geom.Pt(50, 0), geom.Pt(50, 50), geom.Pt(0, 50)}
	closed := append(append([]geom.Point{}, open...), geom.Pt(0, 0))

	fs := NewFigures()
	a, _ := fs.AddPath(open, style())
	b, _ := fs.AddPath(closed, style())

	ra, rb := a.Record(), b.Record()
	if !reflect.DeepEqual(ra.Params, rb.Params) {
		t.Errorf("open and user-closed paths serialize differently:\n%v\n%v", ra.Params, rb.Params)
	}
	if !reflect.DeepEqual(ra.Params, a.Record().Params) {
		t.Error("serializing twice changed params")
	}
}

func TestRecordRoundTripAgreement(t *testing.T) {
	fs := NewFigures()
	circle, _ := fs.AddCircle(120, 80, 40, style())
	rect, _ := fs.AddRectangle(10, 10, 100, 50, style())
	path, _ := fs.AddPath([]geom.Point{geom.Pt(0, 0), geom.Pt(50, 0), geom.Pt(50, 50), geom.Pt(0, 50)}, style())

	samples := []geom.Point{
		geom.Pt(120, 80), geom.Pt(120, 118), geom.Pt(200, 200),
		geom.Pt(15, 15), geom.Pt(111, 15),
		geom.Pt(25, 25), geom.Pt(60, 25), geom.Pt(-1, -1),
	}
	for _, orig := range []*Figure{circle, rect, path} {
		back, err := FromRecord(orig.Record())
		if err != nil {
			t.Fatalf("%v: %v", orig.Shape.Kind, err)
		}
		if back.Style != orig.Style {
			t.Errorf("%v: style changed: %+v vs %+v", orig.Shape.Kind, back.Style, orig.Style)
		}
		for _, p := range samples {
			if back.Contains(p) != orig.Contains(p) {
				t.Errorf("%v: containment disagrees at %v", orig.Shape.Kind, p)
			}
		}
	}
}

func TestFromRecordRejectsBadRecords(t *testing.T) {
	good := func() Record {
		return Record{Type: TypeCircle, Params: []float64{1, 2, 3},
			OutlineColor: "#000000", FillColor: "#ffffff", StrokeWidth: 2}
	}

	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"unknown type", func(r *Record) { r.Type = "TRIANGLE" }},
		{"circle arity", func(r *Record) { r.Params = []float64{1, 2} }},
		{"bad outline color", func(r *Record) { r.OutlineColor = "black" }},
		{"bad fill color", func(r *Record) { r.FillColor = "#zzzzzz" }},
		{"negative radius", func(r *Record) { r.Params = []float64{1, 2, -3} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := good()
			tt.mutate(&rec)
			if _, err := FromRecord(rec); !errors.Is(err, ErrParse) {
				t.Errorf("got %v, want ErrParse", err)
			}
		})
	}

	for _, params := range [][]float64{{1, 2}, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		rec := good()
		rec.Type = TypePath
		rec.Params = params
		if _, err := FromRecord(rec); !errors.Is(err, ErrParse) {
			t.Errorf("path params %v: got %v, want ErrParse", params, err)
		}
	}
}
