// Package editor turns pointer and key events into selection changes,
// staged shapes, and transforms over a figure collection. It has no
// display dependencies, so the whole interaction model is unit
// testable.
package editor

import (
	"image/color"
	"log"
	"math"

	"shapepad/internal/figure"
	"shapepad/internal/geom"
)

// Tool identifies the armed drawing tool.
type Tool int

const (
	ToolNone Tool = iota
	ToolCircle
	ToolRectangle
	ToolPath
)

// Interaction defaults: one rotate key press turns 15 degrees, one
// wheel notch scales by 1.1 (or its reciprocal going the other way).
const (
	RotateStep    = 15.0
	ScaleStepUp   = 1.1
	ScaleStepDown = 1 / 1.1
)

// Controller owns the tool state machine and the selection state.
// Everything that was ambient canvas state in a naive editor (last
// click point, cycle index, drag anchor) lives here explicitly.
type Controller struct {
	figures *figure.Figures

	tool        Tool
	outline     color.NRGBA
	fill        color.NRGBA
	filled      bool
	strokeWidth int

	// Two-click staging for circle/rectangle.
	firstClick *geom.Point
	// Multi-click staging for path.
	pathVerts []geom.Point

	// Same-point selection cycling.
	lastClick  *geom.Point
	cycleIndex int

	// Active drag session.
	dragged    *figure.Figure
	dragAnchor geom.Point
}

// New builds a controller over fs with the default style armed and no
// tool selected.
func New(fs *figure.Figures) *Controller {
	st := figure.DefaultStyle()
	return &Controller{
		figures:     fs,
		outline:     st.Outline,
		fill:        st.Fill,
		filled:      st.Filled,
		strokeWidth: st.StrokeWidth,
	}
}

// Figures returns the collection the controller drives.
func (c *Controller) Figures() *figure.Figures {
	return c.figures
}

// Tool returns the armed tool.
func (c *Controller) Tool() Tool {
	return c.tool
}

// SetTool arms a drawing tool. Any staged geometry is discarded and
// the selection is cleared, matching a fresh start with the new tool.
func (c *Controller) SetTool(t Tool) {
	c.tool = t
	c.firstClick = nil
	c.pathVerts = nil
	c.figures.DeselectAll()
}

// SetOutlineColor sets the outline color for subsequently drawn shapes.
func (c *Controller) SetOutlineColor(col color.NRGBA) { c.outline = col }

// SetFillColor sets the fill color for subsequently drawn shapes.
func (c *Controller) SetFillColor(col color.NRGBA) { c.fill = col }

// SetFillEnabled sets whether subsequently drawn shapes are filled.
func (c *Controller) SetFillEnabled(filled bool) { c.filled = filled }

// SetStrokeWidth sets the stroke width for subsequently drawn shapes.
func (c *Controller) SetStrokeWidth(w int) { c.strokeWidth = w }

// Style returns the style new shapes are created with.
func (c *Controller) Style() figure.Style {
	return figure.Style{
		Outline:     c.outline,
		Fill:        c.fill,
		Filled:      c.filled,
		StrokeWidth: c.strokeWidth,
	}
}

// StagedPath returns the in-progress path vertices for preview
// painting. The slice is a copy.
func (c *Controller) StagedPath() []geom.Point {
	out := make([]geom.Point, len(c.pathVerts))
	copy(out, c.pathVerts)
	return out
}

// PointerDown handles a primary-button press at p.
//
// With a tool armed the click goes to shape staging. Otherwise it
// resolves the selection: a repeat click at exactly the previous point
// cycles through the stack of figures under it from topmost to
// bottommost, a click at a new point selects the topmost hit. When the
// topmost figure under p ends up selected, a drag session starts with
// p as its anchor.
func (c *Controller) PointerDown(p geom.Point) {
	if c.tool != ToolNone {
		c.stageClick(p)
		return
	}

	hit := false
	if c.lastClick != nil && *c.lastClick == p {
		// Re-derive the hit stack fresh on every repeat click so
		// additions and deletions since the last click are seen.
		hits := c.hitsAt(p)
		if len(hits) > 0 {
			c.cycleIndex = (c.cycleIndex + 1) % len(hits)
			c.figures.DeselectAll()
			hits[c.cycleIndex].SetSelected(true)
			hit = true
		}
	} else {
		last := p
		c.lastClick = &last
		c.cycleIndex = 0
		all := c.figures.All()
		for i := len(all) - 1; i >= 0; i-- {
			if all[i].Contains(p) {
				c.figures.DeselectAll()
				all[i].SetSelected(true)
				hit = true
				break
			}
		}
	}

	if !hit {
		c.figures.DeselectAll()
	}

	all := c.figures.All()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Selected && all[i].Contains(p) {
			c.dragged = all[i]
			c.dragAnchor = p
			break
		}
	}
}

// PointerMove handles pointer motion while the button is held. Each
// move translates the dragged figure by the delta from the previous
// anchor; the anchor then advances, so a drag composes many small
// translates rather than one cumulative delta.
func (c *Controller) PointerMove(p geom.Point) {
	if c.dragged == nil {
		return
	}
	d := p.Sub(c.dragAnchor)
	c.dragged.Shape = c.dragged.Shape.Translate(d.X, d.Y)
	c.dragAnchor = p
}

// PointerUp ends any drag session.
func (c *Controller) PointerUp() {
	c.dragged = nil
}

// hitsAt collects the figures containing p from topmost to bottommost.
func (c *Controller) hitsAt(p geom.Point) []*figure.Figure {
	var hits []*figure.Figure
	all := c.figures.All()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Contains(p) {
			hits = append(hits, all[i])
		}
	}
	return hits
}

// stageClick advances the armed tool's staging with a click at p.
func (c *Controller) stageClick(p geom.Point) {
	switch c.tool {
	case ToolCircle:
		if c.firstClick == nil {
			first := p
			c.firstClick = &first
			return
		}
		radius := math.Trunc(c.firstClick.Distance(p))
		if f, err := c.figures.AddCircle(c.firstClick.X, c.firstClick.Y, radius, c.Style()); err != nil {
			log.Printf("add circle: %v", err)
		} else {
			log.Printf("added circle %s", f.ID)
		}
		c.firstClick = nil
		c.tool = ToolNone
	case ToolRectangle:
		if c.firstClick == nil {
			first := p
			c.firstClick = &first
			return
		}
		x := math.Min(c.firstClick.X, p.X)
		y := math.Min(c.firstClick.Y, p.Y)
		w := math.Abs(p.X - c.firstClick.X)
		h := math.Abs(p.Y - c.firstClick.Y)
		if f, err := c.figures.AddRectangle(x, y, w, h, c.Style()); err != nil {
			log.Printf("add rectangle: %v", err)
		} else {
			log.Printf("added rectangle %s", f.ID)
		}
		c.firstClick = nil
		c.tool = ToolNone
	case ToolPath:
		c.pathVerts = append(c.pathVerts, p)
	}
}

// CommitPath closes the staged path and adds it to the collection.
// It does nothing unless the path tool is armed and at least one
// vertex has been staged. A path that collapses below two vertices
// once a trailing repeat of the start point is dropped is discarded:
// the document format cannot represent it, so committing it would
// create a figure that never reloads.
func (c *Controller) CommitPath() {
	if c.tool != ToolPath || len(c.pathVerts) == 0 {
		return
	}
	verts := c.pathVerts
	c.pathVerts = nil
	c.tool = ToolNone

	if len(verts) > 1 && verts[len(verts)-1] == verts[0] {
		verts = verts[:len(verts)-1]
	}
	if len(verts) < 2 {
		log.Printf("discarding degenerate path with %d distinct vertices", len(verts))
		return
	}
	if f, err := c.figures.AddPath(verts, c.Style()); err != nil {
		log.Printf("add path: %v", err)
	} else {
		log.Printf("added path %s", f.ID)
	}
}

// Cancel discards any staged geometry and disarms the tool, whatever
// state the staging was in.
func (c *Controller) Cancel() {
	c.SetTool(ToolNone)
}

// RotateSelected rotates every selected figure by the given angle in
// degrees, each about its own bounding-box center.
func (c *Controller) RotateSelected(degrees float64) {
	for _, f := range c.figures.All() {
		if f.Selected {
			f.Shape = f.Shape.RotateAround(f.Bounds().Center(), degrees)
		}
	}
}

// ScaleSelected scales every selected figure by factor, each about its
// own bounding-box center.
func (c *Controller) ScaleSelected(factor float64) {
	for _, f := range c.figures.All() {
		if f.Selected {
			f.Shape = f.Shape.ScaleAround(f.Bounds().Center(), factor)
		}
	}
}

// DeleteSelected removes every selected figure.
func (c *Controller) DeleteSelected() {
	for _, f := range c.figures.All() {
		if f.Selected {
			log.Printf("deleting %s %s", f.Shape.Kind, f.ID)
		}
	}
	c.figures.DeleteSelected()
}

// EditSelectedStyle runs the style editor protocol on the first
// selected figure: edit receives the figure's current style and
// returns the replacement plus true to confirm, or false to cancel.
// The replacement is applied wholesale on confirmation. It reports
// whether a figure was edited.
func (c *Controller) EditSelectedStyle(edit func(figure.Style) (figure.Style, bool)) bool {
	for _, f := range c.figures.All() {
		if f.Selected {
			if updated, ok := edit(f.Style); ok {
				f.ApplyStyle(updated)
				return true
			}
			return false
		}
	}
	return false
}
