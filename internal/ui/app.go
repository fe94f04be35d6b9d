package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"shapepad/internal/config"
	"shapepad/internal/editor"
	"shapepad/internal/figure"
)

// RunApp builds the window, seeds the controller from the config and
// enters the event loop. A ticker drives a periodic repaint; it only
// reads collection state, and fyne.Do puts it back on the event
// thread.
func RunApp(cfg *config.Config) {
	a := app.New()
	win := a.NewWindow("Shapepad")
	win.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	ctl := editor.New(figure.NewFigures())
	applyConfig(ctl, cfg)

	cv := NewCanvas(ctl)
	refresh := cv.Refresh
	cv.OnEditStyle = func() { ShowStyleEditor(win, ctl, refresh) }

	win.SetMainMenu(BuildMainMenu(a, win, ctl, refresh, cfg.DocumentDir))
	win.SetContent(container.NewBorder(NewToolbar(ctl, refresh), nil, nil, nil, cv))
	win.Canvas().Focus(cv)

	hz := cfg.RedrawHz
	if hz <= 0 {
		hz = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(hz))
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fyne.Do(cv.Refresh)
			}
		}
	}()
	win.SetOnClosed(func() {
		ticker.Stop()
		close(done)
	})

	win.ShowAndRun()
}

func applyConfig(ctl *editor.Controller, cfg *config.Config) {
	if c, err := figure.ParseHexColor(cfg.OutlineColor); err == nil {
		ctl.SetOutlineColor(c)
	} else {
		log.Printf("config outline color: %v", err)
	}
	if c, err := figure.ParseHexColor(cfg.FillColor); err == nil {
		ctl.SetFillColor(c)
	} else {
		log.Printf("config fill color: %v", err)
	}
	if cfg.StrokeWidth > 0 {
		ctl.SetStrokeWidth(cfg.StrokeWidth)
	}
}
