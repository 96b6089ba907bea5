package layout

import (
	"math"

	"github.com/go-drift/panes/pkg/graphics"
)

// Limits is an immutable box constraint handed to a widget during layout.
//
// Every transformation keeps min <= max on both axes and never produces
// negative space.
type Limits struct {
	min  graphics.Size
	max  graphics.Size
	fill graphics.Size
}

// NewLimits creates limits spanning minSize to maxSize. maxSize is raised to
// minSize where it is smaller.
func NewLimits(minSize, maxSize graphics.Size) Limits {
	minSize = nonNegative(minSize)
	return Limits{
		min:  minSize,
		max:  maxSize.Max(minSize),
		fill: graphics.SizeInfinite,
	}
}

// NoLimits places no bound on either axis.
var NoLimits = NewLimits(graphics.SizeZero, graphics.SizeInfinite)

// Min returns the minimum size.
func (l Limits) Min() graphics.Size {
	return l.min
}

// Max returns the maximum size.
func (l Limits) Max() graphics.Size {
	return l.max
}

// Fill returns the size the limits resolve to for fill lengths.
func (l Limits) Fill() graphics.Size {
	return l.fill
}

// Width applies a width policy.
func (l Limits) Width(width Length) Limits {
	switch {
	case width.Kind == LengthShrink:
		l.fill.Width = l.min.Width
	case width.IsFill():
		l.fill.Width = math.Min(l.fill.Width, l.max.Width)
	case width.Kind == LengthUnits:
		w := math.Max(math.Min(width.Value, l.max.Width), l.min.Width)
		l.min.Width, l.max.Width, l.fill.Width = w, w, w
	}
	return l
}

// Height applies a height policy.
func (l Limits) Height(height Length) Limits {
	switch {
	case height.Kind == LengthShrink:
		l.fill.Height = l.min.Height
	case height.IsFill():
		l.fill.Height = math.Min(l.fill.Height, l.max.Height)
	case height.Kind == LengthUnits:
		h := math.Max(math.Min(height.Value, l.max.Height), l.min.Height)
		l.min.Height, l.max.Height, l.fill.Height = h, h, h
	}
	return l
}

// MaxWidth lowers the maximum width, keeping it at or above the minimum.
func (l Limits) MaxWidth(width float64) Limits {
	l.max.Width = math.Max(math.Min(l.max.Width, width), l.min.Width)
	return l
}

// MaxHeight lowers the maximum height, keeping it at or above the minimum.
func (l Limits) MaxHeight(height float64) Limits {
	l.max.Height = math.Max(math.Min(l.max.Height, height), l.min.Height)
	return l
}

// Pad shrinks the limits by padding on every side.
func (l Limits) Pad(padding float64) Limits {
	return l.Shrink(graphics.Size{Width: padding * 2, Height: padding * 2})
}

// Shrink subtracts size from every bound, clamping at zero.
func (l Limits) Shrink(size graphics.Size) Limits {
	return Limits{
		min:  nonNegative(graphics.Size{Width: l.min.Width - size.Width, Height: l.min.Height - size.Height}),
		max:  nonNegative(graphics.Size{Width: l.max.Width - size.Width, Height: l.max.Height - size.Height}),
		fill: nonNegative(graphics.Size{Width: l.fill.Width - size.Width, Height: l.fill.Height - size.Height}),
	}
}

// Loose drops the minimum size.
func (l Limits) Loose() Limits {
	return Limits{min: graphics.SizeZero, max: l.max, fill: l.fill}
}

// Resolve turns an intrinsic size into a concrete one that satisfies the limits.
// Limits that never had a width or height policy applied fill their maximum.
func (l Limits) Resolve(intrinsic graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  resolveAxis(intrinsic.Width, l.min.Width, l.max.Width, l.fill.Width),
		Height: resolveAxis(intrinsic.Height, l.min.Height, l.max.Height, l.fill.Height),
	}
}

func resolveAxis(intrinsic, lo, hi, fill float64) float64 {
	v := math.Max(math.Min(intrinsic, hi), math.Min(fill, hi))
	return math.Max(v, lo)
}

// Hash writes the limits into h.
func (l Limits) Hash(h *Hasher) {
	h.WriteFloat64(l.min.Width)
	h.WriteFloat64(l.min.Height)
	h.WriteFloat64(l.max.Width)
	h.WriteFloat64(l.max.Height)
	h.WriteFloat64(l.fill.Width)
	h.WriteFloat64(l.fill.Height)
}

func nonNegative(s graphics.Size) graphics.Size {
	return graphics.Size{Width: math.Max(s.Width, 0), Height: math.Max(s.Height, 0)}
}
