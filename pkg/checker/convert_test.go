package checker_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkkit/pkg/checker"
)

func TestToInt(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   any
		want any
	}{
		{7, 7},
		{"42", 42},
		{"-3", -3},
		{5.0, 5},
		{int64(9), 9},
	}
	for _, tc := range cases {
		out, err := checker.ToInt(tc.in)
		require.NoError(t, err, "input %v", tc.in)
		assert.Equal(t, tc.want, out)
	}

	for _, in := range []any{"4.5", "abc", 1.5, true, nil, []int{1}} {
		_, err := checker.ToInt(in)
		assert.Error(t, err, "input %v", in)
	}

	t.Run("64-bit values beyond float64 precision convert exactly", func(t *testing.T) {
		out, err := checker.ToInt(int64(9007199254740993))
		require.NoError(t, err)
		assert.Equal(t, 9007199254740993, out)

		out, err = checker.ToInt(uint64(9007199254740995))
		require.NoError(t, err)
		assert.Equal(t, 9007199254740995, out)
	})

	t.Run("uint64 above the int range fails", func(t *testing.T) {
		_, err := checker.ToInt(uint64(math.MaxUint64))
		assert.Error(t, err)
	})
}

func TestToFloat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   any
		want float64
	}{
		{1.5, 1.5},
		{3, 3},
		{"2.25", 2.25},
		{"-4", -4},
	}
	for _, tc := range cases {
		out, err := checker.ToFloat(tc.in)
		require.NoError(t, err, "input %v", tc.in)
		assert.Equal(t, tc.want, out)
	}

	for _, in := range []any{"abc", true, nil} {
		_, err := checker.ToFloat(in)
		assert.Error(t, err, "input %v", in)
	}
}

func TestToString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   any
		want string
	}{
		{"hi", "hi"},
		{42, "42"},
		{-1.5, "-1.5"},
		{true, "true"},
	}
	for _, tc := range cases {
		out, err := checker.ToString(tc.in)
		require.NoError(t, err, "input %v", tc.in)
		assert.Equal(t, tc.want, out)
	}

	for _, in := range []any{nil, []int{1}, map[string]int{}} {
		_, err := checker.ToString(in)
		assert.Error(t, err, "input %v", in)
	}
}

func TestToBool(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"0", false},
		{"1", true},
	}
	for _, tc := range cases {
		out, err := checker.ToBool(tc.in)
		require.NoError(t, err, "input %v", tc.in)
		assert.Equal(t, tc.want, out)
	}

	for _, in := range []any{"yes", 1, nil} {
		_, err := checker.ToBool(in)
		assert.Error(t, err, "input %v", in)
	}
}
