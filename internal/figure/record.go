package figure

import (
	"errors"
	"fmt"

	"shapepad/internal/geom"
)

// ErrParse marks a record that could not be decoded: unknown type tag,
// wrong parameter arity, or a malformed color. Parse failures are
// isolated per record and never abort a whole document.
var ErrParse = errors.New("figure: parse error")

// Shape type tags used in the persisted document.
const (
	TypeCircle    = "CIRCLE"
	TypeRectangle = "RECTANGLE"
	TypePath      = "PATH"
)

// Record is the flat, type-tagged form a figure takes in the JSON
// document. It exists only at the save/load boundary.
type Record struct {
	Type         string    `json:"type"`
	Params       []float64 `json:"params"`
	OutlineColor string    `json:"outlineColor"`
	FillColor    string    `json:"fillColor"`
	Filled       bool      `json:"filled"`
	StrokeWidth  int       `json:"strokeWidth"`
}

// Record converts the figure to its serialized form.
//
// Circles store [cx cy r], rectangles [x y w h], paths the flattened
// vertex list [x0 y0 ... xn yn]. Paths are forced closed before the
// vertices are extracted: a trailing vertex that repeats the first one
// is dropped, so a path the user closed explicitly and one that merely
// ends at its start serialize identically. The closure trim can take a
// degenerate path below the two-vertex floor FromRecord enforces;
// such a record does not round-trip, which is why the editor refuses
// to commit paths that collapse under the trim.
func (f *Figure) Record() Record {
	var typ string
	var params []float64

	switch f.Shape.Kind {
	case geom.KindCircle:
		typ = TypeCircle
		params = []float64{f.Shape.Center.X, f.Shape.Center.Y, f.Shape.Radius}
	case geom.KindRect:
		typ = TypeRectangle
		r := f.Shape.Rect
		params = []float64{r.X, r.Y, r.W, r.H}
	case geom.KindPath:
		typ = TypePath
		verts := f.Shape.Verts
		if len(verts) > 1 && verts[len(verts)-1] == verts[0] {
			verts = verts[:len(verts)-1]
		}
		params = make([]float64, 0, 2*len(verts))
		for _, v := range verts {
			params = append(params, v.X, v.Y)
		}
	}

	return Record{
		Type:         typ,
		Params:       params,
		OutlineColor: HexColor(f.Style.Outline),
		FillColor:    HexColor(f.Style.Fill),
		Filled:       f.Style.Filled,
		StrokeWidth:  f.Style.StrokeWidth,
	}
}

// FromRecord rebuilds a figure from its serialized form. The returned
// figure gets a fresh ID; identity is not persisted.
func FromRecord(rec Record) (*Figure, error) {
	outline, err := ParseHexColor(rec.OutlineColor)
	if err != nil {
		return nil, err
	}
	fill, err := ParseHexColor(rec.FillColor)
	if err != nil {
		return nil, err
	}
	style := Style{
		Outline:     outline,
		Fill:        fill,
		Filled:      rec.Filled,
		StrokeWidth: rec.StrokeWidth,
	}

	var shape geom.Shape
	switch rec.Type {
	case TypeCircle:
		if len(rec.Params) != 3 {
			return nil, fmt.Errorf("%w: circle wants 3 params, got %d", ErrParse, len(rec.Params))
		}
		shape, err = geom.NewCircle(geom.Pt(rec.Params[0], rec.Params[1]), rec.Params[2])
	case TypeRectangle:
		if len(rec.Params) != 4 {
			return nil, fmt.Errorf("%w: rectangle wants 4 params, got %d", ErrParse, len(rec.Params))
		}
		shape, err = geom.NewRect(rec.Params[0], rec.Params[1], rec.Params[2], rec.Params[3])
	case TypePath:
		if len(rec.Params) < 4 || len(rec.Params)%2 != 0 {
			return nil, fmt.Errorf("%w: path wants an even param count of at least 4, got %d", ErrParse, len(rec.Params))
		}
		verts := make([]geom.Point, 0, len(rec.Params)/2)
		for i := 0; i < len(rec.Params); i += 2 {
			verts = append(verts, geom.Pt(rec.Params[i], rec.Params[i+1]))
		}
		shape, err = geom.NewPath(verts)
	default:
		return nil, fmt.Errorf("%w: unknown shape type %q", ErrParse, rec.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return New(shape, style), nil
}
