package figure

import (
	"github.com/google/uuid"

	"shapepad/internal/geom"
)

// Figure pairs a geometry with its paint style and selection state.
// Figures are created through the Figures collection and mutated in
// place by the editor: transforms replace the geometry wholesale, so
// repeated small transforms accumulate floating-point drift over the
// figure's lifetime.
type Figure struct {
	// ID names the figure in log output for its lifetime. It is
	// session-scoped and not persisted; reloading a document mints
	// fresh IDs.
	ID       string
	Shape    geom.Shape
	Style    Style
	Selected bool
}

// New wraps a shape and style in a fresh, unselected figure.
func New(shape geom.Shape, style Style) *Figure {
	return &Figure{
		ID:    uuid.NewString(),
		Shape: shape,
		Style: style,
	}
}

// SetSelected sets the selection flag.
func (f *Figure) SetSelected(selected bool) {
	f.Selected = selected
}

// ApplyStyle replaces the figure's style with s.
func (f *Figure) ApplyStyle(s Style) {
	f.Style = s
}

// Contains reports whether p lies inside the figure's geometry.
func (f *Figure) Contains(p geom.Point) bool {
	return f.Shape.Contains(p)
}

// Bounds returns the figure's axis-aligned bounding box.
func (f *Figure) Bounds() geom.Rect {
	return f.Shape.Bounds()
}
