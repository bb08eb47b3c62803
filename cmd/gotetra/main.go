package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gotetra/internal/logging"
	"github.com/philipparndt/gotetra/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gotetra",
	Short: "Software renderer for a rotating, flat-shaded tetrahedron",
	Long: `gotetra renders colored triangles with a small software rasterizer:
a heading/pitch rotation, a depth buffer and gamma-aware flat shading.
Frames can be written to PNG or BMP, and the scene can be inspected.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(logging.New(os.Stderr, verbose))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
