package seqmarked

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-seqmarked/marked"
)

// NotFoundSeq is the reserved sequence number of a record that has never
// been written.
const NotFoundSeq uint64 = 0

// SeqMarked is a sequence-numbered marked value.
//
// Ordered by sequence number first, then tombstone > normal. The payload
// does not take part in the ordering.
type SeqMarked[D any] struct {
	seq    uint64
	marked marked.Marked[D]
}

// New creates a SeqMarked from a sequence number and marked data.
func New[D any](seq uint64, m marked.Marked[D]) SeqMarked[D] {
	return SeqMarked[D]{seq: seq, marked: m}
}

// NewNormal creates a normal value with sequence number seq.
func NewNormal[D any](seq uint64, data D) SeqMarked[D] {
	return New(seq, marked.NewNormal(data))
}

// NewTombstone creates a tombstone with sequence number seq.
func NewTombstone[D any](seq uint64) SeqMarked[D] {
	return New(seq, marked.NewTombStone[D]())
}

// NewNotFound represents an absent record, not even marked as deleted.
func NewNotFound[D any]() SeqMarked[D] {
	return NewTombstone[D](NotFoundSeq)
}

// Seq returns the sequence number.
func (s SeqMarked[D]) Seq() uint64 {
	return s.seq
}

// Marked returns the marked data.
func (s SeqMarked[D]) Marked() marked.Marked[D] {
	return s.marked
}

// Parts returns the sequence number and the marked data.
func (s SeqMarked[D]) Parts() (uint64, marked.Marked[D]) {
	return s.seq, s.marked
}

// IsNormal returns true if s holds data.
func (s SeqMarked[D]) IsNormal() bool {
	return s.marked.IsNormal()
}

// IsTombstone returns true if s is a deletion marker.
func (s SeqMarked[D]) IsTombstone() bool {
	return s.marked.IsTombStone()
}

// IsAbsent returns true if s is the not-found record created by NewNotFound.
func (s SeqMarked[D]) IsAbsent() bool {
	return s.seq == NotFoundSeq && s.IsTombstone()
}

// Data returns the payload and true.
// It returns false for a tombstone and for the reserved sequence number 0.
func (s SeqMarked[D]) Data() (D, bool) {
	if s.seq == NotFoundSeq {
		var zero D
		return zero, false
	}

	return s.marked.Data()
}

// DataOption is like Data, but returns the payload wrapped into an option.
func (s SeqMarked[D]) DataOption() option.Generic[D] {
	if s.seq == NotFoundSeq {
		return option.None[D]()
	}

	return s.marked.DataOption()
}

// OrderKey returns the ordering key: sequence number and tombstone state only.
func (s SeqMarked[D]) OrderKey() OrderKey {
	return OrderKey{seq: s.seq, tombstone: s.IsTombstone()}
}

// InternalSeq returns the sequence number for internal use,
// a tombstone also has a seq.
func (s SeqMarked[D]) InternalSeq() InternalSeq {
	return NewInternalSeq(s.seq)
}

// UserSeq returns the sequence number for application use,
// a tombstone always has seq 0.
func (s SeqMarked[D]) UserSeq() uint64 {
	if s.IsTombstone() {
		return NotFoundSeq
	}

	return s.seq
}

// String returns "{seq=<seq>, <marked>}".
func (s SeqMarked[D]) String() string {
	return "{seq=" + formatUint(s.seq) + ", " + s.marked.String() + "}"
}

// Map converts the data of s with f, keeping the sequence number
// and the tombstone state. f is not called for a tombstone.
func Map[D, U any](s SeqMarked[D], f func(D) U) SeqMarked[U] {
	return New(s.seq, marked.Map(s.marked, f))
}

// TryMap is like Map, but f may fail.
func TryMap[D, U any](s SeqMarked[D], f func(D) (U, error)) (SeqMarked[U], error) {
	m, err := marked.TryMap(s.marked, f)
	if err != nil {
		return SeqMarked[U]{}, err //nolint:exhaustruct
	}

	return New(s.seq, m), nil
}
