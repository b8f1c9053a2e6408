package seqv

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-seqmarked"
)

// ErrInvalidUTF8 is returned when bytes can not be converted to a string.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Payload is what a storage engine keeps for an application value: the
// optional metadata and the data.
type Payload[M, T any] struct {
	Meta option.Generic[M]
	Data T
}

// Marked is a storage level SeqMarked seen as a SeqValue.
// The sequence number of a tombstone is reported as 0.
type Marked[M, T any] struct {
	seqmarked.SeqMarked[Payload[M, T]]
}

// Seq implements SeqValue.
func (m Marked[M, T]) Seq() uint64 {
	return m.UserSeq()
}

// Value implements SeqValue.
func (m Marked[M, T]) Value() option.Generic[T] {
	payload, ok := m.Data()
	if !ok {
		return option.None[T]()
	}

	return option.Some(payload.Data)
}

// Meta implements SeqValue.
func (m Marked[M, T]) Meta() option.Generic[M] {
	payload, ok := m.Data()
	if !ok {
		return option.None[M]()
	}

	return payload.Meta
}

// ToSeqMarked converts v into a normal SeqMarked.
func ToSeqMarked[M, T any](v SeqV[M, T]) seqmarked.SeqMarked[Payload[M, T]] {
	return seqmarked.NewNormal(v.seq, Payload[M, T]{Meta: v.meta, Data: v.data})
}

// FromSeqMarked converts a SeqMarked into an Opt. A tombstone or a value
// with seq 0 becomes None and its sequence number is discarded.
func FromSeqMarked[M, T any](s seqmarked.SeqMarked[Payload[M, T]]) Opt[M, T] {
	payload, ok := s.Data()
	if !ok {
		return None[M, T]()
	}

	return Some(NewWithMeta(s.Seq(), payload.Meta, payload.Data))
}

// BytesToString converts the data of a SeqMarked from bytes to string.
// It fails with ErrInvalidUTF8 if the data is not valid UTF-8.
func BytesToString[M any](
	s seqmarked.SeqMarked[Payload[M, []byte]],
) (seqmarked.SeqMarked[Payload[M, string]], error) {
	return seqmarked.TryMap(s, func(p Payload[M, []byte]) (Payload[M, string], error) {
		if !utf8.Valid(p.Data) {
			var zero Payload[M, string]
			return zero, fmt.Errorf("failed to convert bytes to string at seq %d: %w", s.Seq(), ErrInvalidUTF8)
		}

		return Payload[M, string]{Meta: p.Meta, Data: string(p.Data)}, nil
	})
}

// StringToBytes converts the data of a SeqMarked from string to bytes.
func StringToBytes[M any](s seqmarked.SeqMarked[Payload[M, string]]) seqmarked.SeqMarked[Payload[M, []byte]] {
	return seqmarked.Map(s, func(p Payload[M, string]) Payload[M, []byte] {
		return Payload[M, []byte]{Meta: p.Meta, Data: []byte(p.Data)}
	})
}
