package numberline

import (
	"errors"
	"fmt"
)

// ErrInvertedRange is returned when a range is constructed with a lower
// bound above its upper bound.
var ErrInvertedRange = errors.New("lower bound cannot be bigger than upper bound")

// Range is a contiguous interval between two bounds.
type Range struct {
	Lower Bound
	Upper Bound
}

// NewRange builds a range and rejects inverted bound pairs. Note that two
// exclusive bounds at the same value do not form a valid range.
func NewRange(lower, upper Bound) (Range, error) {
	if !lower.smallerOrEq(upper) {
		return Range{}, fmt.Errorf("%w: %s > %s", ErrInvertedRange, formatValue(lower.Value), formatValue(upper.Value))
	}
	return Range{Lower: lower, Upper: upper}, nil
}

// EmptyRange returns the canonical empty interval.
func EmptyRange() Range {
	return Range{Lower: Infinity(), Upper: NegInfinity()}
}

// FullRange returns the interval covering every real number.
func FullRange() Range {
	return Range{Lower: NegInfinity(), Upper: Infinity()}
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return r.Lower.admitsAbove(v) && r.Upper.admitsBelow(v)
}

// IsEmpty reports whether the range admits no values at all.
func (r Range) IsEmpty() bool {
	return !r.Lower.smallerOrEq(r.Upper)
}

// Union merges two ranges. Overlapping or touching ranges collapse into a
// single range; disjoint ranges are returned unchanged as a pair. Two
// exclusive bounds meeting at the same value leave a gap, so such ranges
// stay disjoint.
func (r Range) Union(o Range) []Range {
	disjoint := r.Lower.Value > o.Upper.Value || r.Upper.Value < o.Lower.Value ||
		(r.Lower.Value == o.Upper.Value && !r.Lower.Inclusive && !o.Upper.Inclusive) ||
		(r.Upper.Value == o.Lower.Value && !r.Upper.Inclusive && !o.Lower.Inclusive)
	if disjoint {
		return []Range{r, o}
	}

	lower := r.Lower
	switch {
	case o.Lower.Value < r.Lower.Value:
		lower = o.Lower
	case o.Lower.Value == r.Lower.Value:
		lower = NewBound(r.Lower.Value, r.Lower.Inclusive || o.Lower.Inclusive)
	}

	upper := r.Upper
	switch {
	case o.Upper.Value > r.Upper.Value:
		upper = o.Upper
	case o.Upper.Value == r.Upper.Value:
		upper = NewBound(r.Upper.Value, r.Upper.Inclusive || o.Upper.Inclusive)
	}

	return []Range{{Lower: lower, Upper: upper}}
}

// Subtract removes o from r. Depending on how the ranges overlap the result
// holds zero, one or two ranges.
func (r Range) Subtract(o Range) []Range {
	// Complement bounds of the removed interval flip inclusivity.
	lower := NewBound(o.Lower.Value, !o.Lower.Inclusive)
	upper := NewBound(o.Upper.Value, !o.Upper.Inclusive)

	switch {
	case r.Lower.biggerOrEq(upper) || r.Upper.smallerOrEq(lower):
		return []Range{r}
	case r.Lower.smallerOrEq(lower) && r.Upper.biggerOrEq(upper):
		return []Range{
			{Lower: r.Lower, Upper: lower},
			{Lower: upper, Upper: r.Upper},
		}
	case r.Lower.smallerOrEq(lower) && r.Upper.smallerOrEq(o.Upper):
		return []Range{{Lower: r.Lower, Upper: lower}}
	case r.Lower.biggerOrEq(o.Lower) && r.Upper.biggerOrEq(upper):
		return []Range{{Lower: upper, Upper: r.Upper}}
	default:
		return nil
	}
}

func (r Range) String() string {
	open := "("
	if r.Lower.Inclusive && !r.Lower.IsInfinite() {
		open = "["
	}
	closing := ")"
	if r.Upper.Inclusive && !r.Upper.IsInfinite() {
		closing = "]"
	}
	return fmt.Sprintf("%s%s, %s%s", open, formatValue(r.Lower.Value), formatValue(r.Upper.Value), closing)
}
