// Package render paints spark snapshots with the gg software rasterizer.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/oliverbestmann/spark/view"
)

// Brush returns the paint for the spark line of a snapshot: a linear gradient
// along the band of a sloped line, the solid spark color otherwise. Outside of
// the band the gradient is padded with its edge colors.
func Brush(snap view.Snapshot) gg.Brush {
	frame := snap.Frame
	if !frame.HasBand {
		return gg.Solid(snap.Style.Color)
	}

	band := frame.Band

	return gg.NewLinearGradientBrush(band.Start.X, band.Start.Y, band.End.X, band.End.Y).
		AddColorStop(0, snap.Style.GradientStart).
		AddColorStop(1, snap.Style.GradientEnd).
		SetExtend(gg.ExtendPad)
}

// Draw clears dc to the background color and strokes the spark line of a
// running snapshot.
func Draw(dc *gg.Context, snap view.Snapshot) error {
	dc.ClearWithColor(snap.Style.Background)

	if !snap.Running {
		return nil
	}

	segment := snap.Frame.Segment

	dc.SetStrokeBrush(Brush(snap))
	dc.SetLineWidth(snap.Style.Width)
	dc.SetLineCap(gg.LineCapSquare)
	dc.DrawLine(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)

	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke spark line: %w", err)
	}

	return nil
}

// Exporter writes numbered PNG frames into a directory.
type Exporter struct {
	Dir string

	dc    *gg.Context
	count int
}

// Export rasterizes the snapshot and writes it as the next frame. The
// drawing context is recreated if the surface size changes.
func (e *Exporter) Export(snap view.Snapshot) (string, error) {
	width, height := int(snap.Size.X), int(snap.Size.Y)
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("cannot export a %dx%d surface", width, height)
	}

	if e.dc == nil || e.dc.Width() != width || e.dc.Height() != height {
		if e.dc != nil {
			_ = e.dc.Close()
		}

		e.dc = gg.NewContext(width, height)
	}

	if err := Draw(e.dc, snap); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(e.Dir, fmt.Sprintf("frame-%04d.png", e.count))
	if err := e.dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	view.Logger().Sugar().Debugf("exported frame %d to %s", e.count, path)

	e.count += 1

	return path, nil
}

// Count returns the number of frames written so far.
func (e *Exporter) Count() int {
	return e.count
}

func (e *Exporter) Close() error {
	if e.dc == nil {
		return nil
	}

	err := e.dc.Close()
	e.dc = nil

	return err
}
