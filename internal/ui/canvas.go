package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"shapepad/internal/editor"
	"shapepad/internal/figure"
	"shapepad/internal/geom"
)

var (
	previewColor   = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	highlightColor = color.NRGBA{R: 255, A: 255}
)

// Canvas is the drawing surface. It forwards pointer and key events to
// the controller and paints the figure collection in z-order on every
// refresh.
type Canvas struct {
	widget.BaseWidget
	ctl *editor.Controller

	// OnEditStyle is called on a right-click; the app wires it to the
	// per-shape style dialog.
	OnEditStyle func()
}

var _ fyne.Widget = (*Canvas)(nil)
var _ fyne.Draggable = (*Canvas)(nil)
var _ fyne.Scrollable = (*Canvas)(nil)
var _ fyne.Focusable = (*Canvas)(nil)
var _ desktop.Mouseable = (*Canvas)(nil)
var _ desktop.Hoverable = (*Canvas)(nil)

func NewCanvas(ctl *editor.Controller) *Canvas {
	c := &Canvas{ctl: ctl}
	c.ExtendBaseWidget(c)
	return c
}

func eventPoint(pos fyne.Position) geom.Point {
	return geom.Pt(float64(pos.X), float64(pos.Y))
}

func (c *Canvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonSecondary {
		if c.OnEditStyle != nil {
			c.OnEditStyle()
		}
		return
	}
	if e.Button == desktop.MouseButtonPrimary {
		c.ctl.PointerDown(eventPoint(e.Position))
		c.Refresh()
	}
}

func (c *Canvas) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		c.ctl.PointerUp()
		c.Refresh()
	}
}

func (c *Canvas) Dragged(e *fyne.DragEvent) {
	c.ctl.PointerMove(eventPoint(e.Position))
	c.Refresh()
}

func (c *Canvas) DragEnd() {
	c.ctl.PointerUp()
}

// Scrolled maps each wheel notch to one scale step on the selection.
func (c *Canvas) Scrolled(e *fyne.ScrollEvent) {
	switch {
	case e.Scrolled.DY > 0:
		c.ctl.ScaleSelected(editor.ScaleStepUp)
	case e.Scrolled.DY < 0:
		c.ctl.ScaleSelected(editor.ScaleStepDown)
	}
	c.Refresh()
}

func (c *Canvas) TypedKey(e *fyne.KeyEvent) {
	switch e.Name {
	case fyne.KeyEscape:
		c.ctl.Cancel()
	case fyne.KeyDelete, fyne.KeyBackspace:
		c.ctl.DeleteSelected()
	case fyne.KeyReturn, fyne.KeyEnter:
		c.ctl.CommitPath()
	case fyne.KeyR:
		c.ctl.RotateSelected(editor.RotateStep)
	case fyne.KeyE:
		c.ctl.RotateSelected(-editor.RotateStep)
	default:
		return
	}
	c.Refresh()
}

func (c *Canvas) TypedRune(rune)                 {}
func (c *Canvas) FocusGained()                   {}
func (c *Canvas) FocusLost()                     {}
func (c *Canvas) MouseIn(*desktop.MouseEvent)    {}
func (c *Canvas) MouseMoved(*desktop.MouseEvent) {}
func (c *Canvas) MouseOut()                      {}

func (c *Canvas) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasRenderer{canvas: c}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type canvasRenderer struct {
	canvas     *Canvas
	background *canvas.Rectangle
}

// Objects rebuilds the paint list: background, every figure in
// z-order, then the staged path preview on top.
func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}
	for _, f := range r.canvas.ctl.Figures().All() {
		objects = append(objects, paintFigure(f)...)
	}
	objects = append(objects, paintPreview(r.canvas.ctl)...)
	return objects
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *canvasRenderer) Refresh() {
	canvas.Refresh(r.canvas)
}

func (r *canvasRenderer) Destroy() {}

// paintFigure renders one figure plus, when selected, its red
// bounding-box highlight.
func paintFigure(f *figure.Figure) []fyne.CanvasObject {
	st := f.Style
	var fill color.Color = color.Transparent
	if st.Filled {
		fill = st.Fill
	}

	var objects []fyne.CanvasObject
	switch f.Shape.Kind {
	case geom.KindCircle:
		obj := canvas.NewCircle(fill)
		obj.StrokeColor = st.Outline
		obj.StrokeWidth = float32(st.StrokeWidth)
		b := f.Bounds()
		obj.Position1 = fyne.NewPos(float32(b.X), float32(b.Y))
		obj.Position2 = fyne.NewPos(float32(b.X+b.W), float32(b.Y+b.H))
		objects = append(objects, obj)
	case geom.KindRect:
		obj := canvas.NewRectangle(fill)
		obj.StrokeColor = st.Outline
		obj.StrokeWidth = float32(st.StrokeWidth)
		rc := f.Shape.Rect
		obj.Move(fyne.NewPos(float32(rc.X), float32(rc.Y)))
		obj.Resize(fyne.NewSize(float32(rc.W), float32(rc.H)))
		objects = append(objects, obj)
	case geom.KindPath:
		// Closed outline drawn segment by segment. Polygon fill is not
		// a fyne primitive, so filled paths render as outlines too.
		objects = append(objects, pathSegments(f.Shape.Verts, st.Outline, float32(st.StrokeWidth), true)...)
	}

	if f.Selected {
		b := f.Bounds()
		box := canvas.NewRectangle(color.Transparent)
		box.StrokeColor = highlightColor
		box.StrokeWidth = 1
		box.Move(fyne.NewPos(float32(b.X), float32(b.Y)))
		box.Resize(fyne.NewSize(float32(b.W), float32(b.H)))
		objects = append(objects, box)
	}
	return objects
}

// paintPreview renders the in-progress path in gray while the path
// tool is staging.
func paintPreview(ctl *editor.Controller) []fyne.CanvasObject {
	if ctl.Tool() != editor.ToolPath {
		return nil
	}
	staged := ctl.StagedPath()
	w := float32(ctl.Style().StrokeWidth)
	return pathSegments(staged, previewColor, w, false)
}

func pathSegments(verts []geom.Point, col color.Color, width float32, closed bool) []fyne.CanvasObject {
	if len(verts) < 2 {
		return nil
	}
	var objects []fyne.CanvasObject
	n := len(verts)
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		seg := canvas.NewLine(col)
		seg.StrokeWidth = width
		seg.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
		seg.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
		objects = append(objects, seg)
	}
	return objects
}
