package main

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"
)

// Everything the application draws. A Scene is never modified after it has
// been handed to NewApp.
type Scene struct {
	Title          string
	Width, Height  int
	VertexSource   string
	FragmentSource string
	// Positions in normalized device coordinates
	Vertices []mgl32.Vec3
	// Triangle list over Vertices
	Indices    []uint32
	ClearColor mgl32.Vec4
	// The color quad.frag writes. Only used to check rendered output.
	FillColor mgl32.Vec4
}

func DefaultScene() Scene {
	return Scene{
		Title:          "LearnOpenGL",
		Width:          800,
		Height:         600,
		VertexSource:   Res_QuadVshSrc,
		FragmentSource: Res_QuadFshSrc,
		Vertices: []mgl32.Vec3{
			{0.5, 0.5, 0.0},   // top right
			{0.5, -0.5, 0.0},  // bottom right
			{-0.5, -0.5, 0.0}, // bottom left
			{-0.5, 0.5, 0.0},  // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
		ClearColor: mgl32.Vec4{0.2, 0.3, 0.3, 1.0},
		FillColor:  mgl32.Vec4{1.0, 0.5, 0.2, 1.0},
	}
}

var ErrEmptyGeometry = errors.New("scene has no geometry")

func (s Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Width, s.Height)
	}
	if len(s.Vertices) == 0 || len(s.Indices) == 0 {
		return ErrEmptyGeometry
	}
	if len(s.Indices)%3 != 0 {
		return fmt.Errorf("%d indices do not form a triangle list", len(s.Indices))
	}
	i := slices.IndexFunc(s.Indices, func(index uint32) bool {
		return int(index) >= len(s.Vertices)
	})
	if i != -1 {
		return fmt.Errorf("index %d at position %d is out of range for %d vertices", s.Indices[i], i, len(s.Vertices))
	}
	return nil
}

// Resolves the index list into triangles.
func (s Scene) Triangles() [][3]mgl32.Vec3 {
	tris := make([][3]mgl32.Vec3, len(s.Indices)/3)
	for i := range tris {
		for v := 0; v < 3; v++ {
			tris[i][v] = s.Vertices[s.Indices[i*3+v]]
		}
	}
	return tris
}
