package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gotetra/internal/config"
	"github.com/philipparndt/gotetra/internal/logging"
	"github.com/philipparndt/gotetra/pkg/scene"
	"github.com/philipparndt/gotetra/pkg/viewer"
	"github.com/philipparndt/gotetra/pkg/watcher"
	"github.com/philipparndt/gotetra/version"
)

type App struct {
	window   fyne.Window
	logger   *slog.Logger
	scene    *scene.Scene
	view     *viewer.View
	renderer *viewer.Renderer
	raster   *canvas.Raster

	headingSlider *widget.Slider
	pitchSlider   *widget.Slider
	angleLabel    *widget.Label
	outlineCheck  *widget.Check
}

func main() {
	logger := logging.New(os.Stderr, os.Getenv("GOTETRA_DEBUG") != "")

	// Optional view config as the only argument
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	a := app.New()
	w := a.NewWindow("gotetra " + version.GetVersion())

	appInstance := &App{
		window:   w,
		logger:   logger,
		scene:    scene.Tetrahedron(),
		view:     viewer.NewView(),
		renderer: viewer.NewRenderer(cfg.RenderOptions()),
	}
	appInstance.setupMainUI()
	appInstance.applyConfig(cfg)

	if configPath != "" {
		stop, err := appInstance.watchConfig(configPath)
		if err != nil {
			logger.Warn("config reload disabled", "error", err)
		} else {
			defer stop()
		}
	}

	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.raster = canvas.NewRaster(func(w, h int) image.Image {
		start := time.Now()
		fb := a.renderer.RenderView(w, h, a.view, a.scene)
		a.logger.Debug("frame rendered", "width", w, "height", h, "elapsed", time.Since(start))
		return fb.Image()
	})
	a.raster.SetMinSize(fyne.NewSize(200, 200))

	a.angleLabel = widget.NewLabel("")

	// Heading slider along the bottom, pitch slider on the right, as degrees
	a.headingSlider = widget.NewSlider(-180, 180)
	a.headingSlider.Step = 1
	a.headingSlider.OnChanged = func(value float64) {
		_, pitch := a.view.Degrees()
		a.view.SetDegrees(value, pitch)
		a.redraw()
	}

	a.pitchSlider = widget.NewSlider(-90, 90)
	a.pitchSlider.Step = 1
	a.pitchSlider.Orientation = widget.Vertical
	a.pitchSlider.OnChanged = func(value float64) {
		heading, _ := a.view.Degrees()
		a.view.SetDegrees(heading, value)
		a.redraw()
	}

	a.outlineCheck = widget.NewCheck("Show Outlines", func(checked bool) {
		opts := a.renderer.Options()
		opts.Wireframe = checked
		a.renderer.SetOptions(opts)
		a.redraw()
	})

	resetButton := widget.NewButton("Reset View", func() {
		a.view.Reset()
		a.syncSliders()
		a.redraw()
	})

	area := newRotationView(a.raster, func(deltaHeading, deltaPitch float64) {
		a.view.Rotate(deltaHeading, deltaPitch)
		a.syncSliders()
		a.redraw()
	})

	bottom := container.NewBorder(nil, nil, container.NewHBox(a.outlineCheck, resetButton), a.angleLabel, a.headingSlider)

	content := container.NewBorder(
		nil,           // top
		bottom,        // bottom
		nil,           // left
		a.pitchSlider, // right
		area,          // center
	)

	a.window.SetContent(content)
}

// applyConfig moves the view, sliders and decoration to the given config
func (a *App) applyConfig(cfg config.Config) {
	a.view.SetDegrees(cfg.HeadingDeg, cfg.PitchDeg)
	a.renderer.SetOptions(cfg.RenderOptions())
	a.outlineCheck.SetChecked(cfg.Wireframe)
	a.syncSliders()
	a.redraw()
}

// syncSliders moves the sliders to the view without feedback loops
func (a *App) syncSliders() {
	heading, pitch := a.view.Degrees()
	onHeading, onPitch := a.headingSlider.OnChanged, a.pitchSlider.OnChanged
	a.headingSlider.OnChanged, a.pitchSlider.OnChanged = nil, nil
	a.headingSlider.SetValue(heading)
	a.pitchSlider.SetValue(pitch)
	a.headingSlider.OnChanged, a.pitchSlider.OnChanged = onHeading, onPitch
}

func (a *App) redraw() {
	heading, pitch := a.view.Degrees()
	a.angleLabel.SetText(fmt.Sprintf("heading %4.0f°  pitch %3.0f°", heading, pitch))
	a.raster.Refresh()
}

// watchConfig reloads the view whenever the config file is saved
func (a *App) watchConfig(path string) (func(), error) {
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, a.logger)
	if err != nil {
		return nil, err
	}
	if err := fw.Watch(path, func(changed string) {
		cfg, err := config.Load(changed)
		if err != nil {
			a.logger.Warn("ignoring config change", "error", err)
			return
		}
		a.logger.Info("config reloaded", "path", changed)
		fyne.Do(func() { a.applyConfig(cfg) })
	}); err != nil {
		fw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	fw.Start(ctx)
	return func() {
		cancel()
		fw.Close()
	}, nil
}
