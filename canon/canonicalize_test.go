package canon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Canonicalize(t *testing.T) {
	t.Run("elements are formatted by type and joined with newlines", func(t *testing.T) {
		s, err := Canonicalize([]Param{Text("abc"), Int(42), Bool(true)})
		assert.NoError(t, err)
		assert.Equal(t, "abc\n42\ntrue", s)
	})

	t.Run("integers are formatted as base-10 with sign", func(t *testing.T) {
		s, err := Canonicalize([]Param{Int(0), Int(-17), Int(1000000)})
		assert.NoError(t, err)
		assert.Equal(t, "0\n-17\n1000000", s)
	})

	t.Run("line breaks in text are preserved verbatim", func(t *testing.T) {
		s, err := Canonicalize([]Param{Text("line one\nline two"), Text("x")})
		assert.NoError(t, err)
		assert.Equal(t, "line one\nline two\nx", s)
	})

	t.Run("symbols are included by name", func(t *testing.T) {
		s, err := Canonicalize([]Param{Symbol("Active"), Bool(false)})
		assert.NoError(t, err)
		assert.Equal(t, "Active\nfalse", s)
	})

	t.Run("instants are converted to UTC with seconds precision", func(t *testing.T) {
		// 2013-05-01 10:00 at UTC-5 is 15:00 UTC
		est := time.FixedZone("UTC-5", -5*60*60)
		s, err := Canonicalize([]Param{Instant(time.Date(2013, 5, 1, 10, 0, 0, 0, est))})
		assert.NoError(t, err)
		assert.Equal(t, "2013-05-01T15:00:00Z", s)
	})

	t.Run("sub-second components are discarded", func(t *testing.T) {
		s, err := Canonicalize([]Param{Instant(time.Date(2013, 5, 1, 15, 0, 0, 999999999, time.UTC))})
		assert.NoError(t, err)
		assert.Equal(t, "2013-05-01T15:00:00Z", s)
	})

	t.Run("map entries are sorted by key regardless of insertion order", func(t *testing.T) {
		s, err := Canonicalize([]Param{StringMap(map[string]string{"b": "2", "a": "1"})})
		assert.NoError(t, err)
		assert.Equal(t, "a=1\nb=2", s)

		s2, err := Canonicalize([]Param{StringMap(map[string]string{"a": "1", "b": "2"})})
		assert.NoError(t, err)
		assert.Equal(t, s, s2)
	})

	t.Run("map entries nest inside the outer join without escaping", func(t *testing.T) {
		s, err := Canonicalize([]Param{
			Text("before"),
			StringMap(map[string]string{"k1": "v1", "k2": "v2"}),
			Text("after"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "before\nk1=v1\nk2=v2\nafter", s)
	})

	t.Run("empty and nil parameters format as empty strings", func(t *testing.T) {
		s, err := Canonicalize([]Param{Text("a"), Empty(), nil, Text("b")})
		assert.NoError(t, err)
		assert.Equal(t, "a\n\n\nb", s)
	})

	t.Run("an empty sequence is valid and yields an empty string", func(t *testing.T) {
		s, err := Canonicalize([]Param{})
		assert.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("a nil sequence is a caller error", func(t *testing.T) {
		_, err := Canonicalize(nil)
		assert.ErrorIs(t, err, ErrNilParams)
	})

	t.Run("repeated calls produce identical output", func(t *testing.T) {
		params := []Param{
			Text("abc"),
			Int(-7),
			Bool(true),
			Symbol("Pending"),
			Instant(time.Date(2023, 12, 6, 21, 6, 4, 0, time.UTC)),
			StringMap(map[string]string{"z": "26", "m": "13", "a": "1"}),
			Empty(),
		}
		first, err := Canonicalize(params)
		assert.NoError(t, err)
		for i := 0; i < 100; i++ {
			s, err := Canonicalize(params)
			assert.NoError(t, err)
			assert.Equal(t, first, s)
		}
	})
}
