package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// LoadOBJ loads a Wavefront OBJ file and returns its faces as world-space
// vertex triples
func LoadOBJ(filename string) ([]r3.Triangle, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	triangles, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ file %s: %w", filename, err)
	}
	return triangles, nil
}

// ParseOBJ reads vertex positions and faces from OBJ text. Polygons are
// fan triangulated around their first vertex. Face elements may be written
// as v, v/vt, v//vn or v/vt/vn, and negative indices count back from the
// most recent vertex. All other statements are ignored.
func ParseOBJ(r io.Reader) ([]r3.Triangle, error) {
	var vertices []r3.Vec
	var triangles []r3.Triangle

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vertex, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			vertices = append(vertices, vertex)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNumber, len(fields)-1)
			}

			indices := make([]int, 0, len(fields)-1)
			for _, element := range fields[1:] {
				index, err := parseFaceIndex(element, len(vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNumber, err)
				}
				indices = append(indices, index)
			}

			for k := 1; k+1 < len(indices); k++ {
				triangles = append(triangles, r3.Triangle{
					vertices[indices[0]],
					vertices[indices[k]],
					vertices[indices[k+1]],
				})
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	return triangles, nil
}

// parseVertex reads x y z, ignoring an optional w component
func parseVertex(fields []string) (r3.Vec, error) {
	if len(fields) < 3 {
		return r3.Vec{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}

	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("invalid vertex coordinate %q: %w", fields[i], err)
		}
		coords[i] = value
	}

	return r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// parseFaceIndex converts the position part of a face element into a
// zero-based index into the vertices read so far
func parseFaceIndex(element string, vertexCount int) (int, error) {
	position, _, _ := strings.Cut(element, "/")

	index, err := strconv.Atoi(position)
	if err != nil {
		return 0, fmt.Errorf("invalid face element %q: %w", element, err)
	}

	switch {
	case index > 0 && index <= vertexCount:
		return index - 1, nil
	case index < 0 && -index <= vertexCount:
		return vertexCount + index, nil
	default:
		return 0, fmt.Errorf("face index %d out of range (have %d vertices)", index, vertexCount)
	}
}
