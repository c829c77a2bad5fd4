package schema_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkkit/pkg/checker"
	"github.com/dmitrymomot/checkkit/pkg/schema"
)

const itemSchema = `
fields:
  name:
    types: [string]
  price:
    types: [float]
    convert: float
    min: 0
    exclusive_min: true
  quantity:
    types: [int]
    positive: true
    include_zero: true
    default: 0
  mode:
    literals: [fast, slow]
    default: fast
`

func TestParse(t *testing.T) {
	t.Parallel()
	t.Run("builds a checker per field", func(t *testing.T) {
		s, err := schema.Parse([]byte(itemSchema))
		require.NoError(t, err)
		assert.Equal(t, []string{"mode", "name", "price", "quantity"}, s.Names())

		price, ok := s.Checker("price")
		require.True(t, ok)

		out, err := price.Validate("19.99", "price")
		require.NoError(t, err)
		assert.Equal(t, 19.99, out)

		_, err = price.Validate(-1.0, "price")
		assert.Error(t, err)
		_, err = price.Validate(0.0, "price")
		assert.Error(t, err)

		mode, ok := s.Checker("mode")
		require.True(t, ok)
		_, err = mode.Validate("fast", "mode")
		assert.NoError(t, err)
		_, err = mode.Validate("turbo", "mode")
		assert.Error(t, err)

		out, err = mode.Validate(checker.NoValue, "mode")
		require.NoError(t, err)
		assert.Equal(t, "fast", out)
	})

	t.Run("missing checker", func(t *testing.T) {
		s, err := schema.Parse([]byte(itemSchema))
		require.NoError(t, err)
		_, ok := s.Checker("color")
		assert.False(t, ok)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := schema.Parse([]byte("fields: [not: a: map"))
		assert.ErrorIs(t, err, schema.ErrParseFailed)
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := schema.Parse([]byte("fields: {}"))
		assert.ErrorIs(t, err, schema.ErrNoFields)
	})

	t.Run("unknown type name", func(t *testing.T) {
		_, err := schema.Parse([]byte("fields:\n  v:\n    types: [decimal]\n"))
		require.ErrorIs(t, err, schema.ErrUnknownType)
		assert.Contains(t, err.Error(), `field "v"`)
	})

	t.Run("unknown converter name", func(t *testing.T) {
		_, err := schema.Parse([]byte("fields:\n  v:\n    convert: decimal\n"))
		assert.ErrorIs(t, err, schema.ErrUnknownConverter)
	})

	t.Run("conflicting signs", func(t *testing.T) {
		_, err := schema.Parse([]byte("fields:\n  v:\n    positive: true\n    negative: true\n"))
		assert.ErrorIs(t, err, schema.ErrConflictingSigns)
	})
}

func TestParseNumberAlias(t *testing.T) {
	t.Parallel()
	s, err := schema.Parse([]byte("fields:\n  v:\n    types: [number]\n"))
	require.NoError(t, err)

	c, ok := s.Checker("v")
	require.True(t, ok)
	_, err = c.Validate(1, "v")
	assert.NoError(t, err)
	_, err = c.Validate(1.5, "v")
	assert.NoError(t, err)
	_, err = c.Validate("1", "v")
	assert.Error(t, err)
}

func TestParseBrackets(t *testing.T) {
	t.Parallel()
	t.Run("min and max bound both sides", func(t *testing.T) {
		s, err := schema.Parse([]byte("fields:\n  v:\n    min: 1\n    max: 10\n"))
		require.NoError(t, err)

		c, _ := s.Checker("v")
		for _, v := range []any{1, 5, 10} {
			_, err := c.Validate(v, "v")
			assert.NoError(t, err, "value %v", v)
		}
		for _, v := range []any{0, 11} {
			_, err := c.Validate(v, "v")
			assert.Error(t, err, "value %v", v)
		}
	})

	t.Run("sign intersects with the bracket", func(t *testing.T) {
		s, err := schema.Parse([]byte("fields:\n  v:\n    positive: true\n    max: 10\n"))
		require.NoError(t, err)

		c, _ := s.Checker("v")
		_, err = c.Validate(5, "v")
		assert.NoError(t, err)
		_, err = c.Validate(0, "v")
		assert.Error(t, err)
		_, err = c.Validate(11, "v")
		assert.Error(t, err)
	})

	t.Run("non_zero punches out zero", func(t *testing.T) {
		s, err := schema.Parse([]byte("fields:\n  v:\n    non_zero: true\n"))
		require.NoError(t, err)

		c, _ := s.Checker("v")
		_, err = c.Validate(0, "v")
		assert.Error(t, err)
		_, err = c.Validate(-7, "v")
		assert.NoError(t, err)
	})
}

func TestRecord(t *testing.T) {
	t.Parallel()
	t.Run("fill and read back", func(t *testing.T) {
		s, err := schema.Parse([]byte(itemSchema))
		require.NoError(t, err)

		rec, err := s.Record()
		require.NoError(t, err)
		assert.Equal(t, []string{"mode", "name", "price", "quantity"}, rec.Names())

		require.NoError(t, rec.Fill(map[string]any{
			"name":  "widget",
			"price": "19.99",
		}))

		price, err := rec.Get("price")
		require.NoError(t, err)
		assert.Equal(t, 19.99, price)

		quantity, err := rec.Get("quantity")
		require.NoError(t, err)
		assert.Equal(t, 0, quantity)
	})

	t.Run("invalid values are aggregated", func(t *testing.T) {
		s, err := schema.Parse([]byte(itemSchema))
		require.NoError(t, err)

		rec, err := s.Record()
		require.NoError(t, err)

		err = rec.Fill(map[string]any{
			"name": 42,
			"mode": "turbo",
		})
		require.Error(t, err)
		verrs := checker.Extract(err)
		assert.True(t, verrs.Has("name"))
		assert.True(t, verrs.Has("mode"))
	})

	t.Run("explicit null fills an unconstrained field", func(t *testing.T) {
		s, err := schema.Parse([]byte("fields:\n  note: {}\n"))
		require.NoError(t, err)

		rec, err := s.Record()
		require.NoError(t, err)

		require.NoError(t, rec.Fill(map[string]any{"note": nil}))
		got, err := rec.Get("note")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("bad default fails record assembly", func(t *testing.T) {
		s, err := schema.Parse([]byte("fields:\n  v:\n    types: [int]\n    positive: true\n    default: -1\n"))
		require.NoError(t, err)

		_, err = s.Record()
		assert.Error(t, err)
	})
}

func TestWithLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := schema.Parse([]byte(itemSchema), schema.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "built checker from schema")

	t.Run("nil logger falls back to discard", func(t *testing.T) {
		_, err := schema.Parse([]byte(itemSchema), schema.WithLogger(nil))
		assert.NoError(t, err)
	})
}
