package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"shapepad/internal/editor"
	"shapepad/internal/figure"
)

// --- Custom Widget for Color Swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar assembles the tool buttons, the outline color swatches,
// the fill toggle and the stroke width picker, all forwarding into the
// controller. refresh repaints the canvas after state changes that
// affect it.
func NewToolbar(ctl *editor.Controller, refresh func()) fyne.CanvasObject {
	toolButtons := container.NewHBox(
		widget.NewButton("Circle", func() {
			ctl.SetTool(editor.ToolCircle)
			refresh()
		}),
		widget.NewButton("Rectangle", func() {
			ctl.SetTool(editor.ToolRectangle)
			refresh()
		}),
		widget.NewButton("Path", func() {
			ctl.SetTool(editor.ToolPath)
			refresh()
		}),
	)

	// --- Color Palette ---
	onColorTapped := func(c color.NRGBA) {
		ctl.SetOutlineColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.NRGBA{A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped),
	)

	fillCheck := widget.NewCheck("Fill", func(on bool) {
		ctl.SetFillEnabled(on)
	})

	// --- Stroke Width ---
	widths := make([]string, len(figure.StrokeWidths))
	for i, w := range figure.StrokeWidths {
		widths[i] = strconv.Itoa(w)
	}
	widthSelect := widget.NewSelect(widths, func(chosen string) {
		if w, err := strconv.Atoi(chosen); err == nil {
			ctl.SetStrokeWidth(w)
		}
	})
	widthSelect.SetSelected(strconv.Itoa(ctl.Style().StrokeWidth))

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		toolButtons,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		fillCheck,
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		widthSelect,
		layout.NewSpacer(),
	)
}
