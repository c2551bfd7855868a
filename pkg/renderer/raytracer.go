package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/integrator"
	"github.com/df07/go-sprite-raytracer/pkg/scene"
)

// Raytracer handles the rendering process. All fields are read-only while
// a pass is running, so one Raytracer is shared by every worker.
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     scene.SamplingConfig
	numWorkers int
	logger     core.Logger
	opaque     bool // Force alpha to 1 on every pixel
}

// NewRaytracer creates a new raytracer using the scene's sampling config.
// numWorkers <= 0 uses one worker per CPU; a nil logger discards output.
func NewRaytracer(s *scene.Scene, integ integrator.Integrator, numWorkers int, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	rt := &Raytracer{
		scene:      s,
		integrator: integ,
		numWorkers: numWorkers,
		logger:     logger,
		opaque:     true,
	}
	rt.SetSamplingConfig(s.SamplingConfig)
	return rt
}

// SetSamplingConfig updates the sampling configuration. The bounce limit is
// forwarded to integrators that have one so the two never disagree.
func (rt *Raytracer) SetSamplingConfig(config scene.SamplingConfig) {
	rt.config = config
	if limited, ok := rt.integrator.(integrator.DepthLimited); ok {
		limited.SetMaxDepth(config.MaxDepth)
	}
}

// RenderPixel averages SamplesPerPixel integrator results for the pixel at
// column i and sample-space row j. Jitter is only applied when more than
// one sample is taken.
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Color {
	samples := rt.config.SamplesPerPixel
	uScale := float64(max(rt.config.Width-1, 1))
	vScale := float64(max(rt.config.Height-1, 1))

	colorAccum := core.Color{}
	for sample := 0; sample < samples; sample++ {
		var du, dv float64
		if samples > 1 {
			jitter := sampler.Get2D()
			du, dv = jitter.X, jitter.Y
		}

		u := (float64(i) + du) / uScale
		v := (float64(j) + dv) / vScale

		ray := rt.scene.Camera.GetRay(u, v, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, sampler))
	}

	pixel := colorAccum.Multiply(1.0 / float64(samples))
	if rt.opaque {
		pixel = pixel.WithAlpha(1.0)
	}
	return pixel
}

// RenderRow renders every pixel in sample-space row j
func (rt *Raytracer) RenderRow(j int, sampler core.Sampler) []core.Color {
	colors := make([]core.Color, rt.config.Width)
	for i := range colors {
		colors[i] = rt.RenderPixel(i, j, sampler)
	}
	return colors
}

// RenderPass renders the whole image across the worker pool. Row j of
// sample space is seeded with Seed+j, so the result is identical for any
// worker count or scheduling order. Cancellation is observed between row
// submissions; a cancelled pass returns no image.
func (rt *Raytracer) RenderPass(ctx context.Context) (*Framebuffer, RenderStats, error) {
	if err := rt.validate(); err != nil {
		return nil, RenderStats{}, err
	}

	width, height := rt.config.Width, rt.config.Height
	start := time.Now()

	pool := NewWorkerPool(rt, rt.numWorkers)
	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d, %d workers\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	pool.Start()
	for j := 0; j < height; j++ {
		if err := ctx.Err(); err != nil {
			pool.Stop()
			rt.logger.Printf("Render cancelled after %d of %d rows\n", j, height)
			return nil, RenderStats{}, err
		}
		pool.SubmitTask(RowTask{Row: j, Seed: rt.config.Seed + int64(j)})
	}
	pool.Stop()

	fb := NewFramebuffer(width, height)
	totalSamples := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		// Flip so sample-space row 0 lands on the bottom image row
		y := height - 1 - result.Row
		for i, c := range result.Colors {
			fb.Set(i, y, c)
		}
		totalSamples += result.Samples
	}

	stats := newRenderStats(fb, totalSamples, rt.config.SamplesPerPixel, time.Since(start))
	rt.logger.Printf("Render completed in %v (%d samples, mean luminance %.4f)\n",
		stats.Elapsed, stats.TotalSamples, stats.MeanLuminance)

	return fb, stats, nil
}

func (rt *Raytracer) validate() error {
	switch {
	case rt.scene == nil || rt.scene.Camera == nil:
		return fmt.Errorf("invalid render setup: scene has no camera")
	case rt.integrator == nil:
		return fmt.Errorf("invalid render setup: no integrator")
	case rt.config.Width <= 0 || rt.config.Height <= 0:
		return fmt.Errorf("invalid image size %dx%d", rt.config.Width, rt.config.Height)
	case rt.config.SamplesPerPixel <= 0:
		return fmt.Errorf("invalid samples per pixel %d", rt.config.SamplesPerPixel)
	}
	return nil
}
