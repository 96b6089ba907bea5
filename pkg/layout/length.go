package layout

import "fmt"

// LengthKind identifies how a Length resolves against limits.
type LengthKind uint8

const (
	// LengthShrink takes the smallest space the content needs.
	LengthShrink LengthKind = iota
	// LengthFill takes all the available space.
	LengthFill
	// LengthFillPortion takes a share of the available space relative to siblings.
	LengthFillPortion
	// LengthUnits takes a fixed amount of space.
	LengthUnits
)

// Length is a sizing policy for one axis of a widget.
type Length struct {
	Kind  LengthKind
	Value float64
}

var (
	// Shrink fits the content.
	Shrink = Length{Kind: LengthShrink}
	// Fill takes all available space.
	Fill = Length{Kind: LengthFill, Value: 1}
)

// FillPortion returns a fill policy weighted by portion.
func FillPortion(portion uint16) Length {
	return Length{Kind: LengthFillPortion, Value: float64(portion)}
}

// Units returns a fixed-size policy.
func Units(units float64) Length {
	return Length{Kind: LengthUnits, Value: units}
}

// FillFactor returns the weight of the length in fill distribution, or 0 if it
// does not fill.
func (l Length) FillFactor() float64 {
	switch l.Kind {
	case LengthFill:
		return 1
	case LengthFillPortion:
		return l.Value
	default:
		return 0
	}
}

// IsFill reports whether the length grows to use available space.
func (l Length) IsFill() bool {
	return l.FillFactor() > 0
}

// Hash writes the length into h.
func (l Length) Hash(h *Hasher) {
	h.WriteUint64(uint64(l.Kind))
	h.WriteFloat64(l.Value)
}

func (l Length) String() string {
	switch l.Kind {
	case LengthShrink:
		return "shrink"
	case LengthFill:
		return "fill"
	case LengthFillPortion:
		return fmt.Sprintf("fill(%g)", l.Value)
	case LengthUnits:
		return fmt.Sprintf("%gpx", l.Value)
	default:
		return fmt.Sprintf("Length(%d)", l.Kind)
	}
}
