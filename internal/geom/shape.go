package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned by the shape constructors when a
// negative radius or extent slips past the caller's normalization.
var ErrInvalidGeometry = errors.New("geom: invalid geometry")

// Kind tags the three shape variants.
type Kind int

const (
	KindCircle Kind = iota
	KindRect
	KindPath
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRect:
		return "rectangle"
	case KindPath:
		return "path"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Shape is a closed sum of the three geometry variants. Only the
// fields belonging to the Kind are meaningful. Every transform returns
// a new Shape of the same Kind; the tag never changes.
type Shape struct {
	Kind Kind

	// Circle.
	Center Point
	Radius float64

	// Rectangle.
	Rect Rect

	// Path vertices, in click order. The polygon is logically closed:
	// the last vertex connects back to the first for both fill and
	// hit-testing.
	Verts []Point
}

// NewCircle builds a circle shape. The radius must be non-negative.
func NewCircle(center Point, radius float64) (Shape, error) {
	if radius < 0 {
		return Shape{}, fmt.Errorf("%w: circle radius %g", ErrInvalidGeometry, radius)
	}
	return Shape{Kind: KindCircle, Center: center, Radius: radius}, nil
}

// NewRect builds an axis-aligned rectangle shape. Width and height
// must be non-negative; callers normalize drag deltas to the min
// corner and absolute size before constructing.
func NewRect(x, y, w, h float64) (Shape, error) {
	if w < 0 || h < 0 {
		return Shape{}, fmt.Errorf("%w: rectangle size %gx%g", ErrInvalidGeometry, w, h)
	}
	return Shape{Kind: KindRect, Rect: Rect{X: x, Y: y, W: w, H: h}}, nil
}

// NewPath builds a path shape from at least one vertex. The vertex
// slice is copied.
func NewPath(verts []Point) (Shape, error) {
	if len(verts) == 0 {
		return Shape{}, fmt.Errorf("%w: empty path", ErrInvalidGeometry)
	}
	vs := make([]Point, len(verts))
	copy(vs, verts)
	return Shape{Kind: KindPath, Verts: vs}, nil
}

// Contains reports whether p lies inside the shape's fill region.
// Paths use the even-odd rule over the implicitly closed polygon, so
// the overlap regions of a self-intersecting path count as outside.
func (s Shape) Contains(p Point) bool {
	switch s.Kind {
	case KindCircle:
		return s.Center.Distance(p) <= s.Radius
	case KindRect:
		return s.Rect.Contains(p)
	case KindPath:
		return polygonContains(s.Verts, p)
	}
	return false
}

// polygonContains runs an even-odd ray crossing test against the
// closed polygon described by verts.
func polygonContains(verts []Point, p Point) bool {
	if len(verts) < 3 {
		return false
	}
	inside := false
	j := len(verts) - 1
	for i := 0; i < len(verts); i++ {
		a, b := verts[i], verts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Bounds returns the minimal axis-aligned rectangle enclosing the
// shape.
func (s Shape) Bounds() Rect {
	switch s.Kind {
	case KindCircle:
		return Rect{
			X: s.Center.X - s.Radius,
			Y: s.Center.Y - s.Radius,
			W: 2 * s.Radius,
			H: 2 * s.Radius,
		}
	case KindRect:
		return s.Rect
	case KindPath:
		minP, maxP := s.Verts[0], s.Verts[0]
		for _, v := range s.Verts[1:] {
			if v.X < minP.X {
				minP.X = v.X
			}
			if v.Y < minP.Y {
				minP.Y = v.Y
			}
			if v.X > maxP.X {
				maxP.X = v.X
			}
			if v.Y > maxP.Y {
				maxP.Y = v.Y
			}
		}
		return Rect{X: minP.X, Y: minP.Y, W: maxP.X - minP.X, H: maxP.Y - minP.Y}
	}
	return Rect{}
}

// Translate returns the shape shifted by (dx, dy).
func (s Shape) Translate(dx, dy float64) Shape {
	return s.transform(Translate(dx, dy))
}

// RotateAround returns the shape rotated by the given angle in degrees
// about pivot c. Positive angles rotate clockwise on screen. Circles
// and rectangles keep their extent: their center travels around the
// pivot. A rectangle stays axis-aligned because its stored form cannot
// carry an orientation, so rotating it about its own center is an
// identity.
func (s Shape) RotateAround(c Point, degrees float64) Shape {
	m := RotationAbout(c, degrees)
	switch s.Kind {
	case KindCircle:
		out := s
		out.Center = m.TransformPoint(s.Center)
		return out
	case KindRect:
		out := s
		nc := m.TransformPoint(s.Rect.Center())
		out.Rect = Rect{X: nc.X - s.Rect.W/2, Y: nc.Y - s.Rect.H/2, W: s.Rect.W, H: s.Rect.H}
		return out
	default:
		return s.transform(m)
	}
}

// ScaleAround returns the shape scaled uniformly by factor k about
// pivot c. Factors above 1 enlarge, below 1 shrink.
func (s Shape) ScaleAround(c Point, k float64) Shape {
	return s.transform(ScalingAbout(c, k))
}

// transform bakes a similarity matrix into the shape's defining
// parameters. The variant tag is preserved: circles map center plus
// radius, rectangles map their two diagonal corners and renormalize,
// paths map every vertex.
func (s Shape) transform(m Matrix) Shape {
	out := s
	switch s.Kind {
	case KindCircle:
		out.Center = m.TransformPoint(s.Center)
		out.Radius = s.Radius * m.scaleFactor()
	case KindRect:
		a := m.TransformPoint(Point{X: s.Rect.X, Y: s.Rect.Y})
		b := m.TransformPoint(Point{X: s.Rect.X + s.Rect.W, Y: s.Rect.Y + s.Rect.H})
		out.Rect = rectFromCorners(a, b)
	case KindPath:
		vs := make([]Point, len(s.Verts))
		for i, v := range s.Verts {
			vs[i] = m.TransformPoint(v)
		}
		out.Verts = vs
	}
	return out
}

func rectFromCorners(a, b Point) Rect {
	x, y := a.X, a.Y
	if b.X < x {
		x = b.X
	}
	if b.Y < y {
		y = b.Y
	}
	w := a.X - b.X
	if w < 0 {
		w = -w
	}
	h := a.Y - b.Y
	if h < 0 {
		h = -h
	}
	return Rect{X: x, Y: y, W: w, H: h}
}
