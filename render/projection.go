// Package render draws training frames: the cities, the ring and its
// neurons, projected into a fixed-size raster image.
//
// A Projection maps object space to pixel space once and is then passed to
// every Draw call, so one run keeps a single, stable framing across frames.
package render

import (
	"errors"
	"math"

	"github.com/katalvlaran/ringsom/vec"
)

const (
	// DefaultWidth and DefaultHeight are the frame size in pixels.
	DefaultWidth  = 1024
	DefaultHeight = 768

	// markerRatio is the marker radius relative to the smaller canvas side.
	markerRatio = 0.005
)

var (
	// ErrBadCanvas indicates a non-positive width or height.
	ErrBadCanvas = errors.New("render: canvas size must be positive")

	// ErrNonFinite indicates a bounding box with NaN/Inf corners.
	ErrNonFinite = errors.New("render: non-finite bounding box")
)

// Projection is an immutable object-to-pixel mapping.
type Projection struct {
	origin vec.Vector
	scale  vec.Vector
	radius float64
	width  int
	height int
}

// NewProjection fits box into a width×height canvas, leaving a margin of two
// marker radii on each side. Y is flipped so that larger object Y is higher
// in the image. An axis of zero extent gets scale 1.
//
// Complexity: O(1).
func NewProjection(box vec.Box, width, height int) (Projection, error) {
	if width <= 0 || height <= 0 {
		return Projection{}, ErrBadCanvas
	}
	if !box.Min.IsFinite() || !box.Max.IsFinite() {
		return Projection{}, ErrNonFinite
	}

	var (
		r    = markerRatio * math.Min(float64(width), float64(height))
		size = box.Size()
	)

	return Projection{
		origin: box.Min,
		scale:  vec.New(axisScale(float64(width)-4*r, size.X), axisScale(float64(height)-4*r, size.Y)),
		radius: r,
		width:  width,
		height: height,
	}, nil
}

func axisScale(span, extent float64) float64 {
	if extent <= 0 {
		return 1
	}

	return span / extent
}

// Project maps an object-space point to pixel coordinates.
func (p Projection) Project(v vec.Vector) vec.Vector {
	return vec.New(
		p.scale.X*(v.X-p.origin.X)+2*p.radius,
		float64(p.height)-p.scale.Y*(v.Y-p.origin.Y)-2*p.radius,
	)
}

// Radius returns the marker radius in pixels.
func (p Projection) Radius() float64 { return p.radius }

// Scale returns the per-axis object-to-pixel scale.
func (p Projection) Scale() vec.Vector { return p.scale }

// Width returns the canvas width in pixels.
func (p Projection) Width() int { return p.width }

// Height returns the canvas height in pixels.
func (p Projection) Height() int { return p.height }
