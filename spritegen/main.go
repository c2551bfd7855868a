package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-sprite-raytracer/pkg/config"
	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/geometry"
	"github.com/df07/go-sprite-raytracer/pkg/loaders"
	"github.com/df07/go-sprite-raytracer/pkg/material"
	"github.com/df07/go-sprite-raytracer/pkg/renderer"
	"github.com/df07/go-sprite-raytracer/pkg/scene"
)

// meshAlbedo is the flat color given to every imported mesh
var meshAlbedo = core.NewVec3(0.0, 1.0, 1.0)

func main() {
	configPath := flag.String("config", "cfg.json", "Render settings file to watch")
	outputDir := flag.String("out", ".", "Directory for normal.png and diffuse.png")
	interval := flag.Duration("interval", config.DefaultPollInterval, "How often to check the settings file")
	once := flag.Bool("once", false, "Render once and exit instead of watching")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := renderer.NewDefaultLogger()

	if *once {
		settings, _, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := executionPass(ctx, *configPath, settings, *outputDir, *workers, logger); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger.Printf("Watching %s (Ctrl+C to stop)\n", *configPath)
	watcher := config.NewWatcher(*configPath, *interval, logger)
	err := watcher.Run(ctx, func(settings *config.RenderSettings) error {
		return executionPass(ctx, *configPath, settings, *outputDir, *workers, logger)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// executionPass loads the mesh and writes the normal and diffuse maps
func executionPass(ctx context.Context, configPath string, settings *config.RenderSettings, outputDir string, workers int, logger core.Logger) error {
	start := time.Now()

	meshPath := settings.MeshPath(configPath)
	faces, err := loaders.LoadOBJ(meshPath)
	if err != nil {
		return err
	}

	cameraConfig, err := settings.CameraSettings.CameraConfig()
	if err != nil {
		return fmt.Errorf("failed to build camera: %w", err)
	}

	mesh := geometry.NewMesh(faces, material.NewLambertian(meshAlbedo), settings.MeshOptions())
	s := scene.NewSpriteScene(mesh, cameraConfig, settings.ImageWidth, settings.ImageHeight)
	logger.Printf("Loaded %s: %d triangles\n", meshPath, mesh.TriangleCount())

	spriteRenderer := renderer.NewSpriteRenderer(s, renderer.SpriteOptions{
		BlackenNormalMap: settings.BlackenNormalMap,
		NumWorkers:       workers,
	}, core.NopLogger{})

	normal, diffuse, err := spriteRenderer.RenderBoth(ctx)
	if err != nil {
		return err
	}

	if err := loaders.SavePNG(filepath.Join(outputDir, "normal.png"), normal.ToRGBA()); err != nil {
		return err
	}
	if err := loaders.SavePNG(filepath.Join(outputDir, "diffuse.png"), diffuse.ToRGBA()); err != nil {
		return err
	}

	logger.Printf("Run time: %v\n", time.Since(start))
	return nil
}
