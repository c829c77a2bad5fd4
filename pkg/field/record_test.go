package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkkit/pkg/checker"
	"github.com/dmitrymomot/checkkit/pkg/field"
)

func newItemRecord(t *testing.T) *field.Record {
	t.Helper()
	r := field.NewRecord()
	require.NoError(t, r.Define("name", field.New[string](checker.IsString())))
	require.NoError(t, r.Define("price", field.New[float64](checker.PositiveFloat(false, checker.WithConverter(checker.ToFloat)))))
	require.NoError(t, r.Define("quantity", field.New(checker.PositiveInt(true), field.WithDefault(0))))
	return r
}

func TestRecordDefine(t *testing.T) {
	t.Parallel()
	t.Run("names follow definition order", func(t *testing.T) {
		r := newItemRecord(t)
		assert.Equal(t, []string{"name", "price", "quantity"}, r.Names())
	})

	t.Run("duplicate definition fails", func(t *testing.T) {
		r := newItemRecord(t)
		err := r.Define("name", field.New[string](checker.IsString()))
		assert.ErrorIs(t, err, field.ErrFieldRedefined)
	})

	t.Run("bad default fails at definition time", func(t *testing.T) {
		r := field.NewRecord()
		err := r.Define("price", field.New(checker.PositiveFloat(false), field.WithDefault(-1.0)))
		require.Error(t, err)
		assert.True(t, checker.IsValidationError(err))
	})
}

func TestRecordSetGet(t *testing.T) {
	t.Parallel()
	r := newItemRecord(t)

	require.NoError(t, r.Set("name", "widget"))
	got, err := r.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "widget", got)

	t.Run("default is visible before assignment", func(t *testing.T) {
		got, err := r.Get("quantity")
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("rejected value keeps the old one", func(t *testing.T) {
		require.NoError(t, r.Set("price", 9.5))
		require.Error(t, r.Set("price", -1.0))

		got, err := r.Get("price")
		require.NoError(t, err)
		assert.Equal(t, 9.5, got)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := r.Set("color", "red")
		assert.ErrorIs(t, err, field.ErrUnknownField)

		_, err = r.Get("color")
		assert.ErrorIs(t, err, field.ErrUnknownField)
	})
}

func TestRecordFill(t *testing.T) {
	t.Parallel()
	t.Run("assigns every provided value", func(t *testing.T) {
		r := newItemRecord(t)
		require.NoError(t, r.Fill(map[string]any{
			"name":  "widget",
			"price": "19.99",
		}))

		price, err := r.Get("price")
		require.NoError(t, err)
		assert.Equal(t, 19.99, price)

		quantity, err := r.Get("quantity")
		require.NoError(t, err)
		assert.Equal(t, 0, quantity)
	})

	t.Run("aggregates all failures", func(t *testing.T) {
		r := newItemRecord(t)
		err := r.Fill(map[string]any{
			"name":  42,
			"price": -5.0,
			"color": "red",
		})
		require.Error(t, err)
		verrs := checker.Extract(err)
		require.Len(t, verrs, 3)
		assert.True(t, verrs.Has("name"))
		assert.True(t, verrs.Has("price"))
		assert.True(t, verrs.Has("color"))
		assert.Equal(t, []string{"unknown field"}, verrs.Get("color"))
	})
}
