package figure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"shapepad/internal/geom"
)

// Figures is the ordered registry of figures on the canvas. Insertion
// order is z-order: later figures draw on top and win hit-testing.
// It is the single source of truth for the renderer and the codec.
type Figures struct {
	items []*Figure
}

// NewFigures returns an empty collection.
func NewFigures() *Figures {
	return &Figures{}
}

// AddCircle appends a circle figure and returns it.
func (fs *Figures) AddCircle(cx, cy, radius float64, style Style) (*Figure, error) {
	shape, err := geom.NewCircle(geom.Pt(cx, cy), radius)
	if err != nil {
		return nil, err
	}
	f := New(shape, style)
	fs.items = append(fs.items, f)
	return f, nil
}

// AddRectangle appends a rectangle figure and returns it. Callers
// normalize reversed drag corners to the min corner and absolute size
// first; negative extents are rejected.
func (fs *Figures) AddRectangle(x, y, w, h float64, style Style) (*Figure, error) {
	shape, err := geom.NewRect(x, y, w, h)
	if err != nil {
		return nil, err
	}
	f := New(shape, style)
	fs.items = append(fs.items, f)
	return f, nil
}

// AddPath appends a path figure and returns it.
func (fs *Figures) AddPath(verts []geom.Point, style Style) (*Figure, error) {
	shape, err := geom.NewPath(verts)
	if err != nil {
		return nil, err
	}
	f := New(shape, style)
	fs.items = append(fs.items, f)
	return f, nil
}

// All returns the figures in z-order. The slice is shared; callers
// must not reorder it.
func (fs *Figures) All() []*Figure {
	return fs.items
}

// Len returns the number of figures.
func (fs *Figures) Len() int {
	return len(fs.items)
}

// DeleteSelected removes every selected figure, keeping the survivors
// in their original relative order.
func (fs *Figures) DeleteSelected() {
	kept := fs.items[:0]
	for _, f := range fs.items {
		if !f.Selected {
			kept = append(kept, f)
		}
	}
	for i := len(kept); i < len(fs.items); i++ {
		fs.items[i] = nil
	}
	fs.items = kept
}

// DeselectAll clears the selection flag on every figure.
func (fs *Figures) DeselectAll() {
	for _, f := range fs.items {
		f.Selected = false
	}
}

// Clear removes every figure.
func (fs *Figures) Clear() {
	fs.items = nil
}

// Save writes the collection as a pretty-printed JSON array of
// records, one element per figure in z-order.
func (fs *Figures) Save(w io.Writer) error {
	records := make([]Record, 0, len(fs.items))
	for _, f := range fs.items {
		records = append(records, f.Record())
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// Load replaces the collection with the document read from r.
//
// The document is parsed into a scratch list first and only swapped in
// on success, so a failure never leaves the previous collection
// half-clobbered. A malformed individual record is skipped without
// discarding its siblings; the skips are reported through the returned
// error while the valid figures still load.
func (fs *Figures) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: document: %v", ErrParse, err)
	}

	loaded := make([]*Figure, 0, len(raw))
	var skipped []error
	for i, msg := range raw {
		var rec Record
		if err := json.Unmarshal(msg, &rec); err != nil {
			skipped = append(skipped, fmt.Errorf("%w: record %d: %v", ErrParse, i, err))
			continue
		}
		f, err := FromRecord(rec)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		loaded = append(loaded, f)
	}

	fs.items = loaded
	return errors.Join(skipped...)
}
