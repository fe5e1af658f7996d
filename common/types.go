// package common contains common types that are used throughout this library. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGB color with float32 components, conventionally in [0, 1].
type Color struct {
	// R is the red component.
	R float32
	// G is the green component.
	G float32
	// B is the blue component.
	B float32
}

// ColorA is an RGBA color with float32 components, conventionally in [0, 1].
type ColorA struct {
	// R is the red component.
	R float32
	// G is the green component.
	G float32
	// B is the blue component.
	B float32
	// A is the alpha component.
	A float32
}

// Box3 is an axis-aligned bounding box in 3D space.
// A freshly constructed empty box (via EmptyBox3) has inverted extremes
// (Min at +Inf, Max at -Inf) so that expanding it by any point produces a
// zero-volume box at that point. Such an inverted box reports IsValid false.
type Box3 struct {
	// Min is the minimum corner of the box.
	Min mgl32.Vec3
	// Max is the maximum corner of the box.
	Max mgl32.Vec3
}

// EmptyBox3 returns the degenerate "contains nothing" box with inverted
// extremes. It is the defined result of bounding an empty vertex buffer.
//
// Returns:
//   - Box3: a box with Min at +Inf and Max at -Inf on every axis
func EmptyBox3() Box3 {
	inf := math32.Inf(1)
	return Box3{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// IsValid reports whether the box encloses at least one point, i.e. whether
// Min <= Max on every axis. The EmptyBox3 sentinel is not valid.
//
// Returns:
//   - bool: true if the box is non-inverted on every axis
func (b Box3) IsValid() bool {
	return b.Min.X() <= b.Max.X() && b.Min.Y() <= b.Max.Y() && b.Min.Z() <= b.Max.Z()
}

// ExpandByPoint grows the box just enough to enclose the given point.
//
// Parameters:
//   - p: the point to enclose
//
// Returns:
//   - Box3: the expanded box
func (b Box3) ExpandByPoint(p mgl32.Vec3) Box3 {
	return Box3{
		Min: mgl32.Vec3{min(b.Min.X(), p.X()), min(b.Min.Y(), p.Y()), min(b.Min.Z(), p.Z())},
		Max: mgl32.Vec3{max(b.Max.X(), p.X()), max(b.Max.Y(), p.Y()), max(b.Max.Z(), p.Z())},
	}
}

// Size returns the extent of the box along each axis, or the zero vector for
// an invalid box.
//
// Returns:
//   - mgl32.Vec3: Max - Min, or the zero vector if the box is invalid
func (b Box3) Size() mgl32.Vec3 {
	if !b.IsValid() {
		return mgl32.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box, or the zero vector for an invalid box.
//
// Returns:
//   - mgl32.Vec3: (Min + Max) / 2, or the zero vector if the box is invalid
func (b Box3) Center() mgl32.Vec3 {
	if !b.IsValid() {
		return mgl32.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Rect is an axis-aligned bounding rectangle in 2D space. Like Box3, the
// empty sentinel has inverted extremes and reports IsValid false.
type Rect struct {
	// Min is the minimum corner of the rectangle.
	Min mgl32.Vec2
	// Max is the maximum corner of the rectangle.
	Max mgl32.Vec2
}

// EmptyRect returns the degenerate "contains nothing" rectangle with inverted
// extremes. It is the defined result of bounding an empty vertex buffer.
//
// Returns:
//   - Rect: a rectangle with Min at +Inf and Max at -Inf on both axes
func EmptyRect() Rect {
	inf := math32.Inf(1)
	return Rect{
		Min: mgl32.Vec2{inf, inf},
		Max: mgl32.Vec2{-inf, -inf},
	}
}

// IsValid reports whether the rectangle encloses at least one point.
//
// Returns:
//   - bool: true if the rectangle is non-inverted on both axes
func (r Rect) IsValid() bool {
	return r.Min.X() <= r.Max.X() && r.Min.Y() <= r.Max.Y()
}

// ExpandByPoint grows the rectangle just enough to enclose the given point.
//
// Parameters:
//   - p: the point to enclose
//
// Returns:
//   - Rect: the expanded rectangle
func (r Rect) ExpandByPoint(p mgl32.Vec2) Rect {
	return Rect{
		Min: mgl32.Vec2{min(r.Min.X(), p.X()), min(r.Min.Y(), p.Y())},
		Max: mgl32.Vec2{max(r.Max.X(), p.X()), max(r.Max.Y(), p.Y())},
	}
}

// Size returns the extent of the rectangle along each axis, or the zero
// vector for an invalid rectangle.
//
// Returns:
//   - mgl32.Vec2: Max - Min, or the zero vector if the rectangle is invalid
func (r Rect) Size() mgl32.Vec2 {
	if !r.IsValid() {
		return mgl32.Vec2{}
	}
	return r.Max.Sub(r.Min)
}
