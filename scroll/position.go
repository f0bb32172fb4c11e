// Package scroll provides position value objects for offset-based scrolling
// over query results.
package scroll

import "fmt"

// Position marks a location within a scrollable result set.
type Position interface {
	// IsInitial reports whether the position points before the first result.
	IsInitial() bool
}

// Offset is a Position based on the offset within query results. The zero
// value is the initial position, which does not point at a specific element.
// Offset values are comparable with ==.
type Offset struct {
	offset  int64
	present bool
}

// Initial returns the position before the first result.
func Initial() Offset { return Offset{} }

// At returns the position at the given offset. The offset must not be
// negative.
func At(offset int64) Offset {
	if offset < 0 {
		panic("scroll: offset must not be negative")
	}
	return Offset{offset: offset, present: true}
}

// IsInitial implements Position.
func (o Offset) IsInitial() bool { return !o.present }

// Value returns the offset. The initial position does not define an offset;
// check IsInitial first.
func (o Offset) Value() int64 {
	if !o.present {
		panic("scroll: initial position has no offset")
	}
	return o.offset
}

// AdvanceBy returns a position moved by delta. Negative deltas are
// constrained so the new offset is at least zero.
func (o Offset) AdvanceBy(delta int64) Offset {
	value := delta
	if o.present {
		value = o.offset + delta
	}
	if value < 0 {
		value = 0
	}
	return At(value)
}

// PositionFunc returns a function mapping a result index to its position,
// starting after the current offset. The initial position starts at zero.
func (o Offset) PositionFunc() func(int) Offset {
	if o.IsInitial() {
		return PositionFunc(0)
	}
	return PositionFunc(o.offset + 1)
}

// PositionFunc returns a function mapping a result index to the position at
// start+index. start must not be negative.
func PositionFunc(start int64) func(int) Offset {
	if start < 0 {
		panic("scroll: start offset must not be negative")
	}
	return func(index int) Offset {
		if index < 0 {
			panic("scroll: index must not be negative")
		}
		return At(start + int64(index))
	}
}

func (o Offset) String() string {
	if !o.present {
		return "Offset [initial]"
	}
	return fmt.Sprintf("Offset [%d]", o.offset)
}

var _ Position = Offset{}
