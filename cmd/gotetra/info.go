package main

import (
	"fmt"
	"math"
	"os"

	"github.com/philipparndt/gotetra/pkg/analysis"
	"github.com/philipparndt/gotetra/pkg/scene"
	"github.com/spf13/cobra"
)

var (
	infoHeading float64
	infoPitch   float64
	infoEdges   int
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about the scene",
	Long:  "Show triangle count, dimensions, surface area and edge statistics, plus how each triangle is shaded for the given view.",
	Args:  cobra.NoArgs,
	Run:   runInfo,
}

func init() {
	infoCmd.Flags().Float64Var(&infoHeading, "heading", 0, "heading angle in degrees")
	infoCmd.Flags().Float64Var(&infoPitch, "pitch", 0, "pitch angle in degrees (-90 to 90)")
	infoCmd.Flags().IntVar(&infoEdges, "edges", 0, "list the N longest edges")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	if infoPitch < -90 || infoPitch > 90 {
		fmt.Fprintf(os.Stderr, "Error: pitch %v outside [-90, 90]\n", infoPitch)
		os.Exit(1)
	}

	s := scene.Tetrahedron()
	result := analysis.AnalyzeScene(s, infoHeading*math.Pi/180, infoPitch*math.Pi/180)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Scene Information")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "Name: %s\n\n", s.Name)

	fmt.Fprintln(out, "Scene Statistics:")
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n\n", result.AvgEdgeLength)

	fmt.Fprintf(out, "Shading (heading %.1f°, pitch %.1f°):\n", infoHeading, infoPitch)
	for _, tri := range result.Triangles {
		fmt.Fprintf(out, "  #%d %s -> %s  facing %.4f", tri.Index, tri.Color, tri.Shaded, tri.Facing)
		if tri.Degenerate {
			fmt.Fprint(out, "  (degenerate)")
		}
		fmt.Fprintln(out)
	}

	if infoEdges > 0 {
		fmt.Fprintf(out, "\nLongest Edges:\n")
		for i, edge := range analysis.FindLongestEdges(result, infoEdges) {
			fmt.Fprintf(out, "  %d. %.6f units  %s -> %s (triangle #%d)\n",
				i+1, edge.Length, analysis.FormatVector(edge.Start), analysis.FormatVector(edge.End), edge.TriangleID)
		}
	}
}
