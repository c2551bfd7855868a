package core

import (
	"image/color"
	"math"
)

// Color is a linear RGBA color with each channel nominally in [0, 1]
type Color struct {
	R, G, B, A float64
}

// NewColor creates a new Color
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromVec3 builds a color from an RGB vector and an explicit alpha
func ColorFromVec3(v Vec3, alpha float64) Color {
	return Color{R: v.X, G: v.Y, B: v.Z, A: alpha}
}

// RGB returns the color channels as a vector, dropping alpha
func (c Color) RGB() Vec3 {
	return Vec3{X: c.R, Y: c.G, Z: c.B}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Multiply scales every channel, alpha included
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar, c.A * scalar}
}

// MultiplyColor returns the channel-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// WithAlpha returns a copy of the color with alpha replaced
func (c Color) WithAlpha(alpha float64) Color {
	c.A = alpha
	return c
}

// Clamp returns a color with every channel clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
		A: max(minVal, min(maxVal, c.A)),
	}
}

// ToRGBA converts to 8 bits per channel using round(clamp(v,0,1)*255)
func (c Color) ToRGBA() color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
