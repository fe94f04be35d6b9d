package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"shapepad/internal/editor"
	"shapepad/internal/figure"
	"shapepad/internal/geom"
)

func newTestCanvas(t *testing.T) (*Canvas, *editor.Controller) {
	t.Helper()
	test.NewApp()
	ctl := editor.New(figure.NewFigures())
	return NewCanvas(ctl), ctl
}

func TestRendererPaintsFiguresInZOrder(t *testing.T) {
	cv, ctl := newTestCanvas(t)
	fs := ctl.Figures()

	sel, _ := fs.AddCircle(100, 100, 40, figure.DefaultStyle())
	sel.SetSelected(true)
	fs.AddRectangle(10, 10, 50, 30, figure.DefaultStyle())
	fs.AddPath([]geom.Point{geom.Pt(0, 0), geom.Pt(40, 0), geom.Pt(20, 40)}, figure.DefaultStyle())

	objects := cv.CreateRenderer().Objects()
	// Background, circle plus its selection box, rectangle, and the
	// closed triangle outline (three segments).
	want := 1 + 2 + 1 + 3
	if len(objects) != want {
		t.Fatalf("painted %d objects, want %d", len(objects), want)
	}
}

func TestRendererPaintsStagedPathPreview(t *testing.T) {
	cv, ctl := newTestCanvas(t)
	ctl.SetTool(editor.ToolPath)
	ctl.PointerDown(geom.Pt(0, 0))
	ctl.PointerDown(geom.Pt(30, 0))
	ctl.PointerDown(geom.Pt(30, 30))

	objects := cv.CreateRenderer().Objects()
	// Background plus two open preview segments.
	if len(objects) != 3 {
		t.Fatalf("painted %d objects, want 3", len(objects))
	}
}

func TestDeleteKeyRemovesSelection(t *testing.T) {
	cv, ctl := newTestCanvas(t)
	f, _ := ctl.Figures().AddCircle(50, 50, 20, figure.DefaultStyle())
	f.SetSelected(true)

	cv.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
	if ctl.Figures().Len() != 0 {
		t.Error("selected figure survived the delete key")
	}
}

func TestEnterKeyCommitsPath(t *testing.T) {
	cv, ctl := newTestCanvas(t)
	ctl.SetTool(editor.ToolPath)
	ctl.PointerDown(geom.Pt(0, 0))
	ctl.PointerDown(geom.Pt(10, 0))
	ctl.PointerDown(geom.Pt(10, 10))

	cv.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	if ctl.Figures().Len() != 1 {
		t.Fatal("enter did not commit the staged path")
	}
	if ctl.Tool() != editor.ToolNone {
		t.Error("tool still armed after commit")
	}
}

func TestEscapeKeyCancelsTool(t *testing.T) {
	cv, ctl := newTestCanvas(t)
	ctl.SetTool(editor.ToolCircle)
	ctl.PointerDown(geom.Pt(5, 5))

	cv.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if ctl.Tool() != editor.ToolNone {
		t.Error("escape did not disarm the tool")
	}
}

func TestScrollScalesSelection(t *testing.T) {
	cv, ctl := newTestCanvas(t)
	f, _ := ctl.Figures().AddCircle(100, 100, 50, figure.DefaultStyle())
	f.SetSelected(true)

	cv.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 1}})
	if f.Shape.Radius <= 50 {
		t.Errorf("radius = %g after scroll up", f.Shape.Radius)
	}
	cv.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -1}})
	if r := f.Shape.Radius; r < 49.999 || r > 50.001 {
		t.Errorf("radius = %g after scroll back", r)
	}
}

func TestColorSwatchTapped(t *testing.T) {
	test.NewApp()
	var got color.NRGBA
	sw := newColorSwatch(color.NRGBA{R: 255, A: 255}, func(c color.NRGBA) { got = c })
	test.Tap(sw)
	if got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("tapped color = %v", got)
	}
}
