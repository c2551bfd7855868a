package renderer

import (
	"context"
	"fmt"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/integrator"
	"github.com/df07/go-sprite-raytracer/pkg/scene"
)

// SpriteOptions controls sprite map post-processing
type SpriteOptions struct {
	BlackenNormalMap bool // Replace transparent normal map pixels with opaque black
	NumWorkers       int  // 0 = use CPU count
}

// SpriteRenderer bakes normal and diffuse maps of a sprite scene
type SpriteRenderer struct {
	scene   *scene.Scene
	options SpriteOptions
	logger  core.Logger
}

// NewSpriteRenderer creates a sprite renderer; a nil logger discards output
func NewSpriteRenderer(s *scene.Scene, options SpriteOptions, logger core.Logger) *SpriteRenderer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &SpriteRenderer{scene: s, options: options, logger: logger}
}

// Render produces one map. Pixels keep the integrator's alpha so misses
// stay transparent.
func (sr *SpriteRenderer) Render(ctx context.Context, mode integrator.ShadingMode) (*Framebuffer, error) {
	rt := NewRaytracer(sr.scene, integrator.NewSpriteIntegrator(mode), sr.options.NumWorkers, sr.logger)
	rt.opaque = false

	// One centered sample per pixel
	config := sr.scene.SamplingConfig
	config.SamplesPerPixel = 1
	rt.SetSamplingConfig(config)

	fb, _, err := rt.RenderPass(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render %v map: %w", mode, err)
	}

	switch mode {
	case integrator.ShadingNormal:
		if sr.options.BlackenNormalMap {
			fb.Apply(blackenTransparent)
		}
	case integrator.ShadingDiffuse:
		fb.Apply(halveRGB)
	}

	return fb, nil
}

// RenderBoth renders the normal map followed by the diffuse map
func (sr *SpriteRenderer) RenderBoth(ctx context.Context) (normal, diffuse *Framebuffer, err error) {
	normal, err = sr.Render(ctx, integrator.ShadingNormal)
	if err != nil {
		return nil, nil, err
	}
	diffuse, err = sr.Render(ctx, integrator.ShadingDiffuse)
	if err != nil {
		return nil, nil, err
	}
	return normal, diffuse, nil
}

func blackenTransparent(c core.Color) core.Color {
	if c.A == 0 {
		return core.NewColor(0, 0, 0, 1)
	}
	return c
}

// halveRGB darkens the flat diffuse colors, leaving alpha alone
func halveRGB(c core.Color) core.Color {
	return core.NewColor(c.R/2, c.G/2, c.B/2, c.A)
}
