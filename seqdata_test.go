package seqmarked_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-seqmarked"
)

func TestSeqData(t *testing.T) {
	t.Parallel()

	data := seqmarked.NewSeqData(4, "x")
	assert.Equal(t, uint64(4), data.Seq())
	assert.Equal(t, "x", data.Data())
	assert.Equal(t, uint64(4), data.UserSeq())
	assert.Equal(t, seqmarked.NewInternalSeq(4), data.InternalSeq())
	assert.Equal(t, seqmarked.NewOrderKey(4, false), data.OrderKey())
	assert.Equal(t, "{seq=4, (x)}", data.String())

	seq, d := data.Parts()
	assert.Equal(t, uint64(4), seq)
	assert.Equal(t, "x", d)

	assert.Equal(t, norm(4, "x"), data.ToSeqMarked())
	assert.Equal(t, data.OrderKey(), data.ToSeqMarked().OrderKey())

	mapped := seqmarked.MapData(data, func(s string) int { return len(s) })
	assert.Equal(t, seqmarked.NewSeqData(4, 1), mapped)
}

func TestSeqDataFromMarked(t *testing.T) {
	t.Parallel()

	opt := seqmarked.SeqDataFromMarked(norm(2, "a"))
	require.True(t, opt.IsSome())

	data, ok := opt.Get()
	require.True(t, ok)
	assert.Equal(t, seqmarked.NewSeqData(2, "a"), data)

	opt = seqmarked.SeqDataFromMarked(ts[string](2))
	assert.False(t, opt.IsSome())
}
