package numberline

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// NumberLine is a set of real numbers represented as a sorted union of
// non-overlapping ranges. The zero value is not usable; use the factory
// functions instead.
type NumberLine struct {
	ranges []Range
}

// New builds a number line from the given ranges, merging overlaps.
func New(ranges ...Range) *NumberLine {
	return &NumberLine{ranges: simplify(ranges)}
}

// Full returns the line covering every real number.
func Full() *NumberLine {
	return &NumberLine{ranges: []Range{FullRange()}}
}

// Empty returns the line containing no values.
func Empty() *NumberLine {
	return &NumberLine{}
}

// Between returns the line of all values between start and end.
func Between(start, end float64, startInclusive, endInclusive bool) (*NumberLine, error) {
	r, err := NewRange(NewBound(start, startInclusive), NewBound(end, endInclusive))
	if err != nil {
		return nil, err
	}
	return New(r), nil
}

// Outside returns the line of all values outside start and end.
func Outside(start, end float64, startInclusive, endInclusive bool) (*NumberLine, error) {
	inner, err := Between(start, end, startInclusive, endInclusive)
	if err != nil {
		return nil, err
	}
	return inner.Invert(), nil
}

// GreaterThan returns the line of all values above v.
func GreaterThan(v float64, inclusive bool) *NumberLine {
	return New(Range{Lower: NewBound(v, inclusive), Upper: Infinity()})
}

// LessThan returns the line of all values below v.
func LessThan(v float64, inclusive bool) *NumberLine {
	return New(Range{Lower: NegInfinity(), Upper: NewBound(v, inclusive)})
}

// Positive returns the line of positive values.
func Positive(includeZero bool) *NumberLine {
	return GreaterThan(0, includeZero)
}

// Negative returns the line of negative values.
func Negative(includeZero bool) *NumberLine {
	return LessThan(0, includeZero)
}

// Single returns the line containing exactly one value.
func Single(v float64) *NumberLine {
	b := NewBound(v, true)
	return New(Range{Lower: b, Upper: b})
}

// Contains reports whether v is on the line.
func (l *NumberLine) Contains(v float64) bool {
	for _, r := range l.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the line contains no values.
func (l *NumberLine) IsEmpty() bool {
	return len(l.ranges) == 0
}

// Ranges returns a copy of the simplified ranges making up the line.
func (l *NumberLine) Ranges() []Range {
	return slices.Clone(l.ranges)
}

// Add returns the union of two number lines.
func (l *NumberLine) Add(other *NumberLine) *NumberLine {
	if other == nil {
		return New(l.ranges...)
	}
	return New(append(slices.Clone(l.ranges), other.ranges...)...)
}

// AddRange returns the union of the line and a single range.
func (l *NumberLine) AddRange(r Range) *NumberLine {
	return New(append(slices.Clone(l.ranges), r)...)
}

// Subtract returns the line with every value of other removed.
func (l *NumberLine) Subtract(other *NumberLine) *NumberLine {
	if other == nil {
		return New(l.ranges...)
	}
	ranges := slices.Clone(l.ranges)
	for _, removed := range other.ranges {
		var next []Range
		for _, r := range ranges {
			next = append(next, r.Subtract(removed)...)
		}
		ranges = next
	}
	return New(ranges...)
}

// Intersect returns the values present on both lines.
func (l *NumberLine) Intersect(other *NumberLine) *NumberLine {
	if other == nil {
		return New(l.ranges...)
	}
	return l.Subtract(other.Invert())
}

// Invert returns the complement of the line.
func (l *NumberLine) Invert() *NumberLine {
	return Full().Subtract(l)
}

// Describe explains why v is rejected, phrased after the shape of the line.
// The result is meant to be embedded in a validation error message.
func (l *NumberLine) Describe(v float64) string {
	if len(l.ranges) == 1 {
		r := l.ranges[0]
		switch {
		case math.IsInf(r.Lower.Value, -1) && !math.IsInf(r.Upper.Value, 1):
			return fmt.Sprintf("%s should be smaller than %s%s", formatValue(v), orEqual(r.Upper.Inclusive), formatValue(r.Upper.Value))
		case math.IsInf(r.Upper.Value, 1) && !math.IsInf(r.Lower.Value, -1):
			return fmt.Sprintf("%s should be bigger than %s%s", formatValue(v), orEqual(r.Lower.Inclusive), formatValue(r.Lower.Value))
		default:
			return fmt.Sprintf("%s should be in the range %s", formatValue(v), r)
		}
	}
	return fmt.Sprintf("%s should be in: %s", formatValue(v), l)
}

func orEqual(inclusive bool) string {
	if inclusive {
		return "or equal to "
	}
	return ""
}

func (l *NumberLine) String() string {
	parts := make([]string, len(l.ranges))
	for i, r := range l.ranges {
		parts[i] = r.String()
	}
	return "NumberLine(" + strings.Join(parts, ", ") + ")"
}

// simplify drops empty ranges, merges overlapping ones and sorts the result
// by lower bound.
func simplify(ranges []Range) []Range {
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		// A point at infinity can be left over from subtracting an
		// unbounded range; it admits no real value.
		degenerate := r.Lower.IsInfinite() && r.Lower.Value == r.Upper.Value
		if !r.IsEmpty() && !degenerate {
			out = append(out, r)
		}
	}

	merged := true
	for merged {
		merged = false
		for i := 0; i < len(out)-1 && !merged; i++ {
			for j := i + 1; j < len(out); j++ {
				union := out[i].Union(out[j])
				if len(union) == 1 {
					out[i] = union[0]
					out = slices.Delete(out, j, j+1)
					merged = true
					break
				}
			}
		}
	}

	slices.SortFunc(out, func(a, b Range) int {
		switch {
		case a.Lower.Value < b.Lower.Value:
			return -1
		case a.Lower.Value > b.Lower.Value:
			return 1
		default:
			return 0
		}
	})
	return out
}
