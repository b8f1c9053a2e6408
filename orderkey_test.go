package seqmarked_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-seqmarked"
)

func TestOrderKey_Projection(t *testing.T) {
	t.Parallel()

	key := norm(5, "payload").OrderKey()
	assert.Equal(t, uint64(5), key.Seq())
	assert.False(t, key.IsTombstone())

	key = ts[string](5).OrderKey()
	assert.Equal(t, uint64(5), key.Seq())
	assert.True(t, key.IsTombstone())

	assert.Equal(t, seqmarked.NewOrderKey(5, true), key)
}

func TestOrderKey_Bounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, seqmarked.ZeroKey(), seqmarked.OrderKey{}) //nolint:exhaustruct
	assert.Equal(t, uint64(math.MaxUint64), seqmarked.MaxKey().Seq())
	assert.True(t, seqmarked.MaxKey().IsTombstone())

	for _, v := range grid() {
		key := v.OrderKey()
		assert.LessOrEqual(t, seqmarked.ZeroKey().Compare(key), 0, "%s", key)
		assert.GreaterOrEqual(t, seqmarked.MaxKey().Compare(key), 0, "%s", key)
	}
}

func TestOrderKey_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        seqmarked.OrderKey
		b        seqmarked.OrderKey
		expected int
	}{
		{"lower seq", seqmarked.NewOrderKey(1, true), seqmarked.NewOrderKey(2, false), -1},
		{"higher seq", seqmarked.NewOrderKey(3, false), seqmarked.NewOrderKey(2, true), 1},
		{"tombstone wins tie", seqmarked.NewOrderKey(2, true), seqmarked.NewOrderKey(2, false), 1},
		{"normal loses tie", seqmarked.NewOrderKey(2, false), seqmarked.NewOrderKey(2, true), -1},
		{"same", seqmarked.NewOrderKey(2, true), seqmarked.NewOrderKey(2, true), 0},
		{"zero seq ignores tombstone", seqmarked.NewOrderKey(0, true), seqmarked.NewOrderKey(0, false), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.expected, tt.b.Compare(tt.a))
			assert.Equal(t, tt.expected < 0, tt.a.Less(tt.b))
			assert.Equal(t, tt.expected == 0, tt.a.Equal(tt.b))
		})
	}
}

func TestOrderKey_Sort(t *testing.T) {
	t.Parallel()

	keys := []seqmarked.OrderKey{
		seqmarked.NewOrderKey(3, false),
		seqmarked.NewOrderKey(2, true),
		seqmarked.MaxKey(),
		seqmarked.NewOrderKey(2, false),
		seqmarked.ZeroKey(),
	}

	slices.SortFunc(keys, seqmarked.OrderKey.Compare)

	assert.Equal(t, []seqmarked.OrderKey{
		seqmarked.ZeroKey(),
		seqmarked.NewOrderKey(2, false),
		seqmarked.NewOrderKey(2, true),
		seqmarked.NewOrderKey(3, false),
		seqmarked.MaxKey(),
	}, keys)
}

func TestOrderKey_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{seq=1, normal}", seqmarked.NewOrderKey(1, false).String())
	assert.Equal(t, "{seq=1, TOMBSTONE}", seqmarked.NewOrderKey(1, true).String())
}

func TestInternalSeq(t *testing.T) {
	t.Parallel()

	seq := seqmarked.NewInternalSeq(10)
	assert.Equal(t, uint64(10), seq.Uint64())
	assert.Equal(t, "ISeq(10)", seq.String())
	assert.Equal(t, seqmarked.NewInternalSeq(15), seq.Add(5))
	assert.Equal(t, uint64(10), seq.Uint64())

	assert.Equal(t, -1, seq.Compare(seq.Add(1)))
	assert.Equal(t, 0, seq.Compare(seqmarked.NewInternalSeq(10)))
	assert.Equal(t, 1, seq.Add(1).Compare(seq))
}
