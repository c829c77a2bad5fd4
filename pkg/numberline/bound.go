package numberline

import (
	"math"
	"strconv"
)

// Bound is one endpoint of a Range. Infinite bounds are always stored as
// inclusive so that comparisons between bounds stay total; they still print
// as mathematically open endpoints.
type Bound struct {
	Value     float64
	Inclusive bool
}

// NewBound returns a bound at value. Infinite values are forced inclusive.
func NewBound(value float64, inclusive bool) Bound {
	if math.IsInf(value, 0) {
		inclusive = true
	}
	return Bound{Value: value, Inclusive: inclusive}
}

// Infinity returns the positive infinite bound.
func Infinity() Bound {
	return Bound{Value: math.Inf(1), Inclusive: true}
}

// NegInfinity returns the negative infinite bound.
func NegInfinity() Bound {
	return Bound{Value: math.Inf(-1), Inclusive: true}
}

// IsInfinite reports whether the bound sits at either infinity.
func (b Bound) IsInfinite() bool {
	return math.IsInf(b.Value, 0)
}

// smallerOrEq reports whether b admits values below o, taking inclusivity
// into account: equal bound values only touch when both sides are inclusive.
func (b Bound) smallerOrEq(o Bound) bool {
	if b.Value < o.Value {
		return true
	}
	return b.Value == o.Value && b.Inclusive && o.Inclusive
}

// biggerOrEq is the mirror of smallerOrEq.
func (b Bound) biggerOrEq(o Bound) bool {
	if b.Value > o.Value {
		return true
	}
	return b.Value == o.Value && b.Inclusive && o.Inclusive
}

// admitsAbove reports whether a lower bound b admits the value v.
func (b Bound) admitsAbove(v float64) bool {
	if b.Value < v {
		return true
	}
	return b.Inclusive && b.Value == v
}

// admitsBelow reports whether an upper bound b admits the value v.
func (b Bound) admitsBelow(v float64) bool {
	if b.Value > v {
		return true
	}
	return b.Inclusive && b.Value == v
}

func formatValue(v float64) string {
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
