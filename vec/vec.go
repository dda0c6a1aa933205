// Package vec provides the immutable 2D vector primitives used by the ring
// engine, the sample loaders and the renderer.
//
// Vector is a pure value type: every operation returns a new Vector and
// never mutates its receiver. Box is the axis-aligned bounding box of a
// point set (Min is the "top-left", Max the "bottom-right" corner in object
// space).
//
// Complexity: every operation is O(1) and allocation-free.
package vec

import (
	"fmt"
	"math"
)

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Vector is an immutable pair of double-precision coordinates.
type Vector struct {
	X float64
	Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vector { return Vector{X: x, Y: y} }

// Add returns u+v.
func (u Vector) Add(v Vector) Vector { return Vector{X: u.X + v.X, Y: u.Y + v.Y} }

// Sub returns u-v.
func (u Vector) Sub(v Vector) Vector { return Vector{X: u.X - v.X, Y: u.Y - v.Y} }

// Scale returns u*s.
func (u Vector) Scale(s float64) Vector { return Vector{X: u.X * s, Y: u.Y * s} }

// Dot returns the scalar product u·v.
func (u Vector) Dot(v Vector) float64 { return u.X*v.X + u.Y*v.Y }

// Len returns the Euclidean length |u|.
func (u Vector) Len() float64 { return math.Sqrt(u.X*u.X + u.Y*u.Y) }

// Dist returns the Euclidean distance |u-v|.
func (u Vector) Dist(v Vector) float64 { return u.Sub(v).Len() }

// Mid returns the midpoint of u and v, computed as u + (v-u)/2.
func (u Vector) Mid(v Vector) Vector { return u.Add(v.Sub(u).Scale(0.5)) }

// Rotate returns u rotated counter-clockwise by angle degrees around the origin.
func (u Vector) Rotate(angle float64) Vector {
	var (
		a   = angle * degToRad
		sin = math.Sin(a)
		cos = math.Cos(a)
	)

	return Vector{
		X: u.X*cos - u.Y*sin,
		Y: u.X*sin + u.Y*cos,
	}
}

// IsFinite reports whether both coordinates are neither NaN nor ±Inf.
func (u Vector) IsFinite() bool {
	return !math.IsNaN(u.X) && !math.IsNaN(u.Y) && !math.IsInf(u.X, 0) && !math.IsInf(u.Y, 0)
}

// String formats u as "(x, y)" with six decimals.
func (u Vector) String() string { return fmt.Sprintf("(%f, %f)", u.X, u.Y) }

// Box is an axis-aligned bounding box.
type Box struct {
	Min Vector
	Max Vector
}

// BoxAt returns the degenerate box containing only p.
func BoxAt(p Vector) Box { return Box{Min: p, Max: p} }

// Extend returns the smallest box containing b and p.
func (b Box) Extend(p Vector) Box {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}

	return b
}

// Center returns the centroid of the box.
func (b Box) Center() Vector { return b.Min.Mid(b.Max) }

// Size returns the extent (width, height) of the box.
func (b Box) Size() Vector { return b.Max.Sub(b.Min) }

// Contains reports whether p lies inside b (borders included).
func (b Box) Contains(p Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
