package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about a finished render pass
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Samples taken for every pixel
	Elapsed         time.Duration // Wall clock time of the pass
	MeanLuminance   float64       // Mean pixel luminance
	StdDevLuminance float64       // Sample standard deviation of pixel luminance
}

// CalculateLuminanceStats returns the mean and sample standard deviation
// of pixel luminance. Fewer than two pixels have zero deviation.
func CalculateLuminanceStats(fb *Framebuffer) (mean, stdDev float64) {
	if len(fb.Pixels) == 0 {
		return 0, 0
	}

	luminances := make([]float64, len(fb.Pixels))
	for i, c := range fb.Pixels {
		luminances[i] = c.RGB().Luminance()
	}

	if len(luminances) < 2 {
		return luminances[0], 0
	}
	return stat.MeanStdDev(luminances, nil)
}

// newRenderStats summarizes a completed framebuffer
func newRenderStats(fb *Framebuffer, totalSamples, samplesPerPixel int, elapsed time.Duration) RenderStats {
	mean, stdDev := CalculateLuminanceStats(fb)
	return RenderStats{
		TotalPixels:     fb.Width * fb.Height,
		TotalSamples:    totalSamples,
		SamplesPerPixel: samplesPerPixel,
		Elapsed:         elapsed,
		MeanLuminance:   mean,
		StdDevLuminance: stdDev,
	}
}
