package render

import (
	"time"

	"github.com/oliverbestmann/spark/config"
	"github.com/oliverbestmann/spark/view"
)

// ExportFrames steps a view by dt between frames and writes every frame.
func ExportFrames(cfg config.Config, width, height, frames int, dt time.Duration, dir string) ([]string, error) {
	v, err := view.New(cfg, nil)
	if err != nil {
		return nil, err
	}

	v.OnSurfaceSize(float64(width), float64(height))
	v.Start()

	exporter := &Exporter{Dir: dir}
	defer exporter.Close()

	var paths []string

	for idx := range frames {
		if idx > 0 {
			v.Update(dt)
		}

		path, err := exporter.Export(v.Snapshot())
		if err != nil {
			return paths, err
		}

		paths = append(paths, path)
	}

	return paths, nil
}
