package ui

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"shapepad/internal/editor"
	"shapepad/internal/figure"
)

const aboutText = "Shapepad\nSimple editor to draw and manipulate shapes."

const helpText = "Instructions:\n" +
	"- Pick a tool (Circle, Rectangle, Path) and click on the canvas.\n" +
	"- Circle/Rectangle: two clicks. Path: click vertices, Enter to finish.\n" +
	"- With no tool armed, click shapes to select; repeat clicks on the\n" +
	"  same spot cycle through overlapping shapes.\n" +
	"- Drag a selected shape to move it. R/E rotate it, the mouse wheel\n" +
	"  scales it, Delete removes it, Escape cancels the tool.\n" +
	"- Right-click to edit the selected shape's style."

// BuildMainMenu wires File, Tools, Settings and Info menus to the
// controller. docDir, when set, is where the file dialogs start.
func BuildMainMenu(a fyne.App, win fyne.Window, ctl *editor.Controller, refresh func(), docDir string) *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New", func() {
			dialog.ShowConfirm("New Canvas",
				"Are you sure you want to create a new canvas? Unsaved changes will be lost.",
				func(ok bool) {
					if ok {
						ctl.Figures().Clear()
						refresh()
					}
				}, win)
		}),
		fyne.NewMenuItem("Open", func() { showOpenDialog(win, ctl, refresh, docDir) }),
		fyne.NewMenuItem("Save", func() { showSaveDialog(win, ctl, docDir) }),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Circle", func() { ctl.SetTool(editor.ToolCircle); refresh() }),
		fyne.NewMenuItem("Rectangle", func() { ctl.SetTool(editor.ToolRectangle); refresh() }),
		fyne.NewMenuItem("Path", func() { ctl.SetTool(editor.ToolPath); refresh() }),
	)

	widthItems := make([]*fyne.MenuItem, len(figure.StrokeWidths))
	for i, w := range figure.StrokeWidths {
		width := w
		widthItems[i] = fyne.NewMenuItem(strconv.Itoa(width), func() {
			ctl.SetStrokeWidth(width)
		})
	}
	strokeItem := fyne.NewMenuItem("Stroke Width", nil)
	strokeItem.ChildMenu = fyne.NewMenu("", widthItems...)

	settingsMenu := fyne.NewMenu("Settings",
		fyne.NewMenuItem("Select Outline Color", func() {
			dialog.ShowColorPicker("Choose Outline Color", "", func(c color.Color) {
				ctl.SetOutlineColor(figure.NRGBAOf(c))
			}, win)
		}),
		fyne.NewMenuItem("Select Fill Color", func() {
			dialog.ShowColorPicker("Choose Fill Color", "", func(c color.Color) {
				ctl.SetFillColor(figure.NRGBAOf(c))
			}, win)
		}),
		strokeItem,
	)

	infoMenu := fyne.NewMenu("Info",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About", aboutText, win)
		}),
		fyne.NewMenuItem("Help", func() {
			dialog.ShowInformation("Help", helpText, win)
		}),
		fyne.NewMenuItem("Exit", func() {
			dialog.ShowConfirm("Exit", "Are you sure you want to exit?", func(ok bool) {
				if ok {
					a.Quit()
				}
			}, win)
		}),
	)

	return fyne.NewMainMenu(infoMenu, fileMenu, toolsMenu, settingsMenu)
}

func showOpenDialog(win fyne.Window, ctl *editor.Controller, refresh func(), docDir string) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer func() {
			if cerr := reader.Close(); cerr != nil {
				log.Printf("close %s: %v", reader.URI(), cerr)
			}
		}()

		if err := ctl.Figures().Load(reader); err != nil {
			// Skipped records still leave the valid ones loaded; a
			// document-level failure left the old collection alone.
			dialog.ShowError(fmt.Errorf("load %s: %w", reader.URI().Name(), err), win)
		}
		refresh()
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	setStartLocation(d, docDir)
	d.Show()
}

func showSaveDialog(win fyne.Window, ctl *editor.Controller, docDir string) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		writer, err = withJSONExt(writer)
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		defer func() {
			if cerr := writer.Close(); cerr != nil {
				log.Printf("close %s: %v", writer.URI(), cerr)
			}
		}()

		if err := ctl.Figures().Save(writer); err != nil {
			dialog.ShowError(fmt.Errorf("save %s: %w", writer.URI().Name(), err), win)
			return
		}
		log.Printf("saved %d shapes to %s", ctl.Figures().Len(), writer.URI())
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.SetFileName(defaultDocumentName)
	setStartLocation(d, docDir)
	d.Show()
}

const defaultDocumentName = "drawing.json"

// needsJSONExt reports whether a chosen save name lacks the .json
// suffix, case-insensitively.
func needsJSONExt(name string) bool {
	return !strings.EqualFold(filepath.Ext(name), ".json")
}

// withJSONExt appends .json to the save target when the user typed a
// name without it. The file dialog uses the entry text verbatim, so
// the writer it hands over has to be swapped for one at the suffixed
// path.
func withJSONExt(writer fyne.URIWriteCloser) (fyne.URIWriteCloser, error) {
	if !needsJSONExt(writer.URI().Name()) {
		return writer, nil
	}
	path := writer.URI().Path() + ".json"
	if err := writer.Close(); err != nil {
		log.Printf("close %s: %v", writer.URI(), err)
	}
	// The dialog already created the extensionless file when it opened
	// the writer; drop it so only the suffixed document remains.
	if err := storage.Delete(writer.URI()); err != nil {
		log.Printf("remove %s: %v", writer.URI(), err)
	}
	return storage.Writer(storage.NewFileURI(path))
}

func setStartLocation(d *dialog.FileDialog, dir string) {
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		log.Printf("document dir %s: %v", dir, err)
		return
	}
	d.SetLocation(lister)
}

// ShowStyleEditor opens the per-shape style dialog for the first
// selected figure. The dialog edits a copy; the controller applies it
// all-or-nothing on confirmation.
func ShowStyleEditor(win fyne.Window, ctl *editor.Controller, refresh func()) {
	var current figure.Style
	found := false
	for _, f := range ctl.Figures().All() {
		if f.Selected {
			current = f.Style
			found = true
			break
		}
	}
	if !found {
		return
	}

	pending := current
	fillCheck := widget.NewCheck("Fill shape", func(on bool) {
		pending.Filled = on
	})
	fillCheck.SetChecked(current.Filled)

	fillBtn := widget.NewButton("Select fill color", func() {
		dialog.ShowColorPicker("Choose Fill Color", "", func(c color.Color) {
			pending.Fill = figure.NRGBAOf(c)
		}, win)
	})
	outlineBtn := widget.NewButton("Select outline color", func() {
		dialog.ShowColorPicker("Choose Outline Color", "", func(c color.Color) {
			pending.Outline = figure.NRGBAOf(c)
		}, win)
	})

	widths := make([]string, len(figure.StrokeWidths))
	for i, w := range figure.StrokeWidths {
		widths[i] = strconv.Itoa(w)
	}
	widthSelect := widget.NewSelect(widths, func(chosen string) {
		if w, err := strconv.Atoi(chosen); err == nil {
			pending.StrokeWidth = w
		}
	})
	widthSelect.SetSelected(strconv.Itoa(current.StrokeWidth))

	content := container.NewVBox(fillCheck, fillBtn, outlineBtn, widthSelect)
	dialog.ShowCustomConfirm("Shape Options", "OK", "Cancel", content, func(ok bool) {
		ctl.EditSelectedStyle(func(figure.Style) (figure.Style, bool) {
			return pending, ok
		})
		refresh()
	}, win)
}
