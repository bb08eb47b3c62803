package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gotetra/internal/config"
	"github.com/philipparndt/gotetra/pkg/scene"
	"github.com/philipparndt/gotetra/pkg/viewer"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrUnsupportedFormat is returned for output formats other than png and bmp
var ErrUnsupportedFormat = errors.New("unsupported image format")

var renderFlags struct {
	output     string
	format     string
	configPath string
	caption    string
	width      int
	height     int
	scale      int
	heading    float64
	pitch      float64
	wireframe  bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a frame to an image file",
	Long: `Render the tetrahedron for one heading/pitch pair and write it as PNG or BMP.
Values from --config are used first; flags given on the command line override them.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderFlags.output, "output", "o", "frame.png", "output file, or - for stdout")
	f.StringVar(&renderFlags.format, "format", "", "png or bmp (default: from the output extension)")
	f.StringVarP(&renderFlags.configPath, "config", "c", "", "YAML view config")
	f.StringVar(&renderFlags.caption, "caption", "", "text drawn in the top-left corner")
	f.IntVar(&renderFlags.width, "width", 400, "frame width in pixels")
	f.IntVar(&renderFlags.height, "height", 400, "frame height in pixels")
	f.IntVar(&renderFlags.scale, "scale", 1, "integer upscaling factor for the written image")
	f.Float64Var(&renderFlags.heading, "heading", 0, "heading angle in degrees")
	f.Float64Var(&renderFlags.pitch, "pitch", 0, "pitch angle in degrees (-90 to 90)")
	f.BoolVar(&renderFlags.wireframe, "wireframe", false, "draw triangle outlines on top")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if renderFlags.configPath != "" {
		loaded, err := config.Load(renderFlags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyRenderFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := resolveFormat(renderFlags.format, renderFlags.output)
	if err != nil {
		return err
	}

	slog.Debug("rendering frame",
		"width", cfg.Width, "height", cfg.Height,
		"heading", cfg.HeadingDeg, "pitch", cfg.PitchDeg, "scale", cfg.Scale)

	img := renderImage(cfg, scene.Tetrahedron(), renderFlags.caption)

	if renderFlags.output == "-" {
		return writeImage(cmd.OutOrStdout(), img, format)
	}

	file, err := os.Create(renderFlags.output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeImage(file, img, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	bounds := img.Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d %s to %s\n", bounds.Dx(), bounds.Dy(), format, renderFlags.output)
	return nil
}

// applyRenderFlags copies explicitly set flags over the config values
func applyRenderFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = renderFlags.width
	}
	if flags.Changed("height") {
		cfg.Height = renderFlags.height
	}
	if flags.Changed("scale") {
		cfg.Scale = renderFlags.scale
	}
	if flags.Changed("heading") {
		cfg.HeadingDeg = renderFlags.heading
	}
	if flags.Changed("pitch") {
		cfg.PitchDeg = renderFlags.pitch
	}
	if flags.Changed("wireframe") {
		cfg.Wireframe = renderFlags.wireframe
	}
}

// resolveFormat picks the encoder from the explicit format or the file extension
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "" {
			format = "png"
		}
	}
	switch strings.ToLower(format) {
	case "png":
		return "png", nil
	case "bmp":
		return "bmp", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// renderImage renders one frame and applies upscaling and the caption
func renderImage(cfg config.Config, s *scene.Scene, caption string) image.Image {
	renderer := viewer.NewRenderer(cfg.RenderOptions())
	fb := renderer.Render(cfg.Width, cfg.Height, cfg.HeadingRadians(), cfg.PitchRadians(), s)

	out := fb.Image()
	if cfg.Scale > 1 {
		src := fb.Image()
		out = image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx()*cfg.Scale, src.Bounds().Dy()*cfg.Scale))
		draw.NearestNeighbor.Scale(out, out.Bounds(), src, src.Bounds(), draw.Src, nil)
	}

	if caption != "" {
		drawCaption(out, caption, captionColor(cfg.BackgroundColor()))
	}
	return out
}

// drawCaption writes text with the built-in 7x13 bitmap face
func drawCaption(img *image.RGBA, text string, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(4, 4+face.Ascent),
	}
	d.DrawString(text)
}

// captionColor picks black or white, whichever stands out on bg
func captionColor(bg color.RGBA) color.RGBA {
	luma := 299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)
	if luma > 128*1000 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

func writeImage(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}
