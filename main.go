package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/integrator"
	"github.com/df07/go-sprite-raytracer/pkg/loaders"
	"github.com/df07/go-sprite-raytracer/pkg/renderer"
	"github.com/df07/go-sprite-raytracer/pkg/scene"
)

// renderOptions holds the command line settings; zero values keep the
// scene's own defaults
type renderOptions struct {
	sceneName string
	width     int
	height    int
	samples   int
	maxDepth  int
	seed      int64
	workers   int
	outputDir string
}

func main() {
	// Parse command line flags
	opts := renderOptions{}
	flag.StringVar(&opts.sceneName, "scene", "default", "Scene type: "+strings.Join(scene.Names(), ", "))
	flag.IntVar(&opts.width, "width", 0, "Image width (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height (0 = scene default)")
	flag.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.maxDepth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flag.Int64Var(&opts.seed, "seed", 1, "Random seed")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto)")
	flag.StringVar(&opts.outputDir, "out", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sprite Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Five spheres with a hollow glass bubble")
		fmt.Println("  random  - Large grid of small random spheres")
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := run(ctx, opts, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the named scene and applies the overrides
func createScene(opts renderOptions) (*scene.Scene, error) {
	s, err := scene.Create(opts.sceneName, opts.seed)
	if err != nil {
		return nil, err
	}

	width, height := s.SamplingConfig.Width, s.SamplingConfig.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}
	if width != s.SamplingConfig.Width || height != s.SamplingConfig.Height {
		s.Resize(width, height)
	}

	if opts.samples > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.samples
	}
	if opts.maxDepth > 0 {
		s.SamplingConfig.MaxDepth = opts.maxDepth
	}

	return s, nil
}

// run renders one pass and writes it under outputDir/<scene>
func run(ctx context.Context, opts renderOptions, logger core.Logger) (string, error) {
	s, err := createScene(opts)
	if err != nil {
		return "", err
	}

	logger.Printf("Using %s scene (%d primitives)\n", opts.sceneName, s.PrimitiveCount())

	rt := renderer.NewRaytracer(s, integrator.NewPathTracingIntegrator(s.SamplingConfig), opts.workers, logger)
	fb, _, err := rt.RenderPass(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render: %w", err)
	}

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(opts.outputDir, opts.sceneName, fmt.Sprintf("render_%s.png", timestamp))

	if err := loaders.SavePNG(filename, fb.ToRGBA()); err != nil {
		return "", err
	}
	return filename, nil
}
