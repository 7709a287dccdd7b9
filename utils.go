package main

import (
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/spark/render"
	"github.com/oliverbestmann/spark/view"
)

// DrawSnapshot paints the background and, while running, the spark line.
func DrawSnapshot(target *ebiten.Image, snap view.Snapshot) {
	target.Fill(snap.Style.Background.Color())

	if !snap.Running {
		return
	}

	segment := snap.Frame.Segment

	var path vector.Path
	path.MoveTo(float32(segment.Start.X), float32(segment.Start.Y))
	path.LineTo(float32(segment.End.X), float32(segment.End.Y))

	vop := &vector.StrokeOptions{
		Width:   float32(snap.Style.Width),
		LineCap: vector.LineCapSquare,
	}

	StrokePath(target, path, render.Brush(snap), vop)
}

// StrokePath tessellates the stroke of a path and colors every vertex with
// the brush. A linear gradient is affine, so interpolating between the
// vertices reproduces it inside the stroke.
func StrokePath(target *ebiten.Image, path vector.Path, brush gg.Brush, vop *vector.StrokeOptions) {
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, vop)
	if len(indices) == 0 {
		return
	}

	ApplyBrushToVertices(vertices, brush)

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	target.DrawTriangles(vertices, indices, whiteImage, op)
}

// ApplyBrushToVertices samples the brush at every vertex position.
func ApplyBrushToVertices(vertices []ebiten.Vertex, brush gg.Brush) {
	for idx := range vertices {
		vertex := &vertices[idx]

		c := brush.ColorAt(float64(vertex.DstX), float64(vertex.DstY))

		vertex.SrcX, vertex.SrcY = 1, 1
		vertex.ColorR = float32(c.R)
		vertex.ColorG = float32(c.G)
		vertex.ColorB = float32(c.B)
		vertex.ColorA = float32(c.A)
	}
}
