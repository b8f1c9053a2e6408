// Package seqv provides application level sequence-numbered values.
//
// Inside a storage engine a value is kept as a [seqmarked.SeqMarked], which
// may be a tombstone. Applications see a [SeqV] instead: a tombstone becomes
// an absent SeqV and its internal sequence number is discarded.
package seqv

import (
	"fmt"

	"github.com/tarantool/go-option"
)

// SeqV is a value bound with a sequence number and optional metadata.
type SeqV[M, T any] struct {
	seq  uint64
	meta option.Generic[M]
	data T
}

// New creates a SeqV without metadata.
func New[M, T any](seq uint64, data T) SeqV[M, T] {
	return SeqV[M, T]{seq: seq, meta: option.None[M](), data: data}
}

// NewWithMeta creates a SeqV with metadata.
func NewWithMeta[M, T any](seq uint64, meta option.Generic[M], data T) SeqV[M, T] {
	return SeqV[M, T]{seq: seq, meta: meta, data: data}
}

// Seq implements SeqValue.
func (v SeqV[M, T]) Seq() uint64 {
	return v.seq
}

// Meta implements SeqValue.
func (v SeqV[M, T]) Meta() option.Generic[M] {
	return v.meta
}

// Value implements SeqValue, a SeqV always has a value.
func (v SeqV[M, T]) Value() option.Generic[T] {
	return option.Some(v.data)
}

// Data returns the data.
func (v SeqV[M, T]) Data() T {
	return v.data
}

// WithSeq returns a copy of v with seq replaced.
func (v SeqV[M, T]) WithSeq(seq uint64) SeqV[M, T] {
	v.seq = seq
	return v
}

// WithMeta returns a copy of v with meta replaced.
func (v SeqV[M, T]) WithMeta(meta option.Generic[M]) SeqV[M, T] {
	v.meta = meta
	return v
}

// WithData returns a copy of v with data replaced.
func (v SeqV[M, T]) WithData(data T) SeqV[M, T] {
	v.data = data
	return v
}

// String does not print the data, it may be large or binary.
func (v SeqV[M, T]) String() string {
	meta, ok := v.meta.Get()
	if !ok {
		return fmt.Sprintf("SeqV{seq: %d, meta: None, data: [binary]}", v.seq)
	}

	return fmt.Sprintf("SeqV{seq: %d, meta: %v, data: [binary]}", v.seq, meta)
}

// Map converts data to type U and leaves seq and meta unchanged.
func Map[M, T, U any](v SeqV[M, T], f func(T) U) SeqV[M, U] {
	return SeqV[M, U]{seq: v.seq, meta: v.meta, data: f(v.data)}
}

// TryMap is like Map, but f may fail.
func TryMap[M, T, U any](v SeqV[M, T], f func(T) (U, error)) (SeqV[M, U], error) {
	data, err := f(v.data)
	if err != nil {
		return SeqV[M, U]{}, err //nolint:exhaustruct
	}

	return SeqV[M, U]{seq: v.seq, meta: v.meta, data: data}, nil
}
