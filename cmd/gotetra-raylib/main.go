package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gotetra/internal/config"
	"github.com/philipparndt/gotetra/internal/logging"
	"github.com/philipparndt/gotetra/pkg/scene"
	"github.com/philipparndt/gotetra/pkg/viewer"
	"github.com/philipparndt/gotetra/pkg/watcher"
	"github.com/spf13/cobra"
)

// keyRotationSpeed is how fast the arrow keys turn the view, in radians per second
const keyRotationSpeed = math.Pi / 2

// dragSensitivity converts dragged pixels into radians
const dragSensitivity = 0.01

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gotetra-raylib [config]",
	Short: "Interactive software-rendered tetrahedron viewer",
	Long: `Opens a window that shows the software-rendered tetrahedron.
Drag with the left mouse button or use the arrow keys to rotate,
W toggles outlines, R resets the view. An optional YAML config is
reloaded whenever it is saved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := ""
		if len(args) == 1 {
			configPath = args[0]
		}
		return run(configPath, logging.New(os.Stderr, verbose))
	},
	SilenceUsage: true,
}

type App struct {
	logger   *slog.Logger
	scene    *scene.Scene
	view     *viewer.View
	renderer *viewer.Renderer
	texture  rl.Texture2D
	pixels   []color.RGBA
	frameDur time.Duration
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, logger *slog.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	reloads := make(chan config.Config, 1)
	if configPath != "" {
		fw, err := watchConfig(configPath, logger, reloads)
		if err != nil {
			logger.Warn("config reload disabled", "error", err)
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			defer fw.Close()
			fw.Start(ctx)
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "gotetra")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := &App{
		logger:   logger,
		scene:    scene.Tetrahedron(),
		view:     viewer.NewView(),
		renderer: viewer.NewRenderer(cfg.RenderOptions()),
	}
	app.applyConfig(cfg)
	defer app.unloadTexture()

	for !rl.WindowShouldClose() {
		select {
		case cfg := <-reloads:
			app.applyConfig(cfg)
			logger.Info("config reloaded", "path", configPath)
		default:
		}

		app.handleInput()
		app.updateFrame()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if app.texture.ID != 0 {
			rl.DrawTexture(app.texture, 0, 0, rl.White)
		}
		app.drawUI()
		rl.EndDrawing()
	}
	return nil
}

func (app *App) applyConfig(cfg config.Config) {
	app.view.SetDegrees(cfg.HeadingDeg, cfg.PitchDeg)
	app.renderer.SetOptions(cfg.RenderOptions())
}

func (app *App) handleInput() {
	dt := float64(rl.GetFrameTime())
	step := keyRotationSpeed * dt

	if rl.IsKeyDown(rl.KeyLeft) {
		app.view.Rotate(-step, 0)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		app.view.Rotate(step, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		app.view.Rotate(0, step)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		app.view.Rotate(0, -step)
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		app.view.Rotate(float64(delta.X)*dragSensitivity, float64(-delta.Y)*dragSensitivity)
	}

	if rl.IsKeyPressed(rl.KeyR) {
		app.view.Reset()
	}
	if rl.IsKeyPressed(rl.KeyW) {
		opts := app.renderer.Options()
		opts.Wireframe = !opts.Wireframe
		app.renderer.SetOptions(opts)
	}
}

// updateFrame renders into the framebuffer and uploads it to the texture,
// recreating the texture when the window size changed
func (app *App) updateFrame() {
	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()

	start := time.Now()
	fb := app.renderer.RenderView(width, height, app.view, app.scene)
	app.frameDur = time.Since(start)
	if fb.Empty() {
		return
	}

	if app.texture.ID == 0 || int(app.texture.Width) != width || int(app.texture.Height) != height {
		app.unloadTexture()
		img := rl.GenImageColor(width, height, rl.Black)
		app.texture = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		app.logger.Debug("texture resized", "width", width, "height", height)
	}

	app.pixels = toColors(app.pixels, fb.Image())
	rl.UpdateTexture(app.texture, app.pixels)
}

func (app *App) unloadTexture() {
	if app.texture.ID != 0 {
		rl.UnloadTexture(app.texture)
		app.texture = rl.Texture2D{}
	}
}

func (app *App) drawUI() {
	heading, pitch := app.view.Degrees()
	rl.DrawText(fmt.Sprintf("heading %4.0f  pitch %3.0f", heading, pitch), 10, 10, 20, rl.RayWhite)

	outlines := "off"
	if app.renderer.Options().Wireframe {
		outlines = "on"
	}
	rl.DrawText(fmt.Sprintf("outlines %s  [W]  reset [R]", outlines), 10, 34, 16, rl.LightGray)
	rl.DrawText(fmt.Sprintf("raster %.2f ms  FPS %d", float64(app.frameDur.Microseconds())/1000, rl.GetFPS()),
		10, int32(rl.GetScreenHeight())-26, 16, rl.Lime)
}

// watchConfig delivers every successfully parsed config change on out,
// keeping only the newest one if the loop has not picked up the last
func watchConfig(path string, logger *slog.Logger, out chan config.Config) (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, logger)
	if err != nil {
		return nil, err
	}
	err = fw.Watch(path, func(changed string) {
		cfg, err := config.Load(changed)
		if err != nil {
			logger.Warn("ignoring config change", "error", err)
			return
		}
		select {
		case <-out:
		default:
		}
		out <- cfg
	})
	if err != nil {
		fw.Close()
		return nil, err
	}
	return fw, nil
}
