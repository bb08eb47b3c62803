package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gotetra/pkg/geometry"
	"github.com/philipparndt/gotetra/pkg/scene"
	"github.com/philipparndt/gotetra/pkg/shade"
	"github.com/philipparndt/gotetra/pkg/viewer"
)

// EdgeInfo contains information about an edge in the scene
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float64
	TriangleID int
}

// TriangleInfo describes how one triangle appears under a given view
type TriangleInfo struct {
	Index      int
	Color      shade.RGB
	Shaded     shade.RGB
	Area       float64
	Facing     float64
	Degenerate bool
}

// Result contains various measurements of a scene
type Result struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
	Triangles     []TriangleInfo
}

// AnalyzeScene measures the scene and reports each triangle's facing factor
// and shaded color after rotating by heading then pitch
func AnalyzeScene(s *scene.Scene, heading, pitch float64) *Result {
	result := &Result{
		BoundingBox:   s.BoundingBox(),
		SurfaceArea:   s.SurfaceArea(),
		TriangleCount: s.TriangleCount(),
		AllEdges:      make([]EdgeInfo, 0, 3*s.TriangleCount()),
		Triangles:     make([]TriangleInfo, 0, s.TriangleCount()),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, triangle := range s.Triangles {
		edges := []struct {
			start, end geometry.Vector3
		}{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		}

		for _, edge := range edges {
			length := edge.start.Distance(edge.end)
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      edge.start,
				End:        edge.end,
				Length:     length,
				TriangleID: i,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	viewSpace := s.Transform(geometry.ViewRotation(heading, pitch))
	for i, triangle := range viewSpace.Triangles {
		g := triangle.Geometry()
		facing := viewer.FacingFactor(g)
		result.Triangles = append(result.Triangles, TriangleInfo{
			Index:      i,
			Color:      triangle.Color,
			Shaded:     shade.Shade(triangle.Color, facing),
			Area:       g.Area(),
			Facing:     facing,
			Degenerate: g.Degenerate(),
		})
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindLongestEdges returns the N longest edges in the scene
func FindLongestEdges(result *Result, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count < 0 {
		count = 0
	}
	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
