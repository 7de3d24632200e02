// Command sculpttool runs a headless terrain sculpt job: it builds a flat
// terrain, applies the strokes described in a YAML job file through the
// configured viewport camera, and writes the requested GLB/STL/PNG outputs.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/soypat/sculpt"
	"github.com/soypat/sculpt/internal/config"
	"github.com/soypat/sculpt/internal/logger"
	"github.com/soypat/sculpt/render"
	"github.com/soypat/sculpt/view"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func main() {
	configPath := flag.String("config", "", "path to YAML job file (defaults apply when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(cfg.Logging.Level, logger.DefaultFileConfig(cfg.Logging.LogFile))
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("sculpt job failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	terr, err := sculpt.NewTerrain(cfg.Terrain.Size, cfg.Terrain.Segments, nil)
	if err != nil {
		return err
	}
	log.Info("terrain built",
		zap.Float64("size", cfg.Terrain.Size),
		zap.Int("segments", cfg.Terrain.Segments),
		zap.Int("vertices", len(terr.Vertices())),
	)

	cam := &view.Camera{
		Eye:    vec3(cfg.Camera.Eye),
		Center: vec3(cfg.Camera.Center),
		Up:     r3.Vec{Y: 1},
		FOV:    cfg.Camera.FOV,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
		Width:  cfg.Camera.Width,
		Height: cfg.Camera.Height,
	}

	for i, spec := range cfg.Strokes {
		points := make([]r2.Vec, len(spec.Points))
		for k, p := range spec.Points {
			points[k] = r2.Vec{X: p[0], Y: p[1]}
		}
		start, ok := view.PickTerrain(terr, cam, points[0])
		if !ok {
			return fmt.Errorf("stroke %d: start point misses the terrain", i)
		}
		end, ok := view.PickTerrain(terr, cam, points[len(points)-1])
		if !ok {
			return fmt.Errorf("stroke %d: end point misses the terrain", i)
		}
		begin := time.Now()
		err := terr.ApplyStroke(sculpt.Stroke{Points: points, View: cam}, start, end)
		if err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}
		log.Info("stroke applied",
			zap.Int("stroke", i),
			zap.Int("points", len(points)),
			zap.Duration("took", time.Since(begin)),
		)
	}

	bounds := terr.Bounds()
	log.Info("sculpt finished",
		zap.Int("strokes", len(cfg.Strokes)),
		zap.Float64("peak", bounds.Max.Y),
		zap.Float64("low", bounds.Min.Y),
	)

	if path := cfg.Output.GLB; path != "" {
		if err := render.SaveGLB(path, terr); err != nil {
			return err
		}
		log.Info("wrote GLB", zap.String("path", path))
	}
	if path := cfg.Output.STL; path != "" {
		if err := render.CreateSTL(path, terr); err != nil {
			return err
		}
		log.Info("wrote STL", zap.String("path", path))
	}
	if path := cfg.Output.Preview; path != "" {
		if err := render.SavePreviewPNG(path, terr, render.DefaultView()); err != nil {
			return err
		}
		log.Info("wrote preview", zap.String("path", path))
	}
	return nil
}

func vec3(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}
