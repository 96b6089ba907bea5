package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// SizeZero is the empty size.
var SizeZero = Size{}

// SizeInfinite is an unbounded size, used as the default fill of new limits.
var SizeInfinite = Size{Width: math.Inf(1), Height: math.Inf(1)}

// Pad grows the size by padding on every side.
func (s Size) Pad(padding float64) Size {
	return Size{Width: s.Width + padding*2, Height: s.Height + padding*2}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{Width: math.Max(s.Width, other.Width), Height: math.Max(s.Height, other.Height)}
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOffsetSize constructs a Rect at origin with the given size.
func RectFromOffsetSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether p lies inside the rectangle. Edges are inclusive.
func (r Rect) Contains(p Offset) bool {
	return r.Left <= p.X && p.X <= r.Right && r.Top <= p.Y && p.Y <= r.Bottom
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// ApproxEqual reports whether two rects match within floating-point tolerance.
func (r Rect) ApproxEqual(other Rect) bool {
	return floatEqual(r.Left, other.Left) &&
		floatEqual(r.Top, other.Top) &&
		floatEqual(r.Right, other.Right) &&
		floatEqual(r.Bottom, other.Bottom)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
