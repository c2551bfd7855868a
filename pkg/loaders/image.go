package loaders

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// SavePNG encodes img as PNG, creating parent directories as needed
func SavePNG(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}

// ImageData contains a decoded image as linear RGBA colors
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Color
}

// LoadImage loads a PNG image and converts it to a color array
func LoadImage(filename string) (*ImageData, error) {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Straight alpha, matching how framebuffers store color
			c := color.NRGBA64Model.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA64)
			pixels[y*width+x] = core.NewColor(
				float64(c.R)/65535.0,
				float64(c.G)/65535.0,
				float64(c.B)/65535.0,
				float64(c.A)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
