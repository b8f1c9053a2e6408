package seqmarked

import (
	"fmt"

	"github.com/tarantool/go-option"
)

// SeqData is sequence-numbered data that can not be a tombstone.
// It is the subset of SeqMarked that holds normal values only.
type SeqData[D any] struct {
	seq  uint64
	data D
}

// NewSeqData creates a SeqData.
func NewSeqData[D any](seq uint64, data D) SeqData[D] {
	return SeqData[D]{seq: seq, data: data}
}

// SeqDataFromMarked converts a SeqMarked into SeqData, None for a tombstone.
func SeqDataFromMarked[D any](s SeqMarked[D]) option.Generic[SeqData[D]] {
	data, ok := s.marked.Data()
	if !ok {
		return option.None[SeqData[D]]()
	}

	return option.Some(NewSeqData(s.seq, data))
}

// Seq returns the sequence number.
func (s SeqData[D]) Seq() uint64 {
	return s.seq
}

// Data returns the data.
func (s SeqData[D]) Data() D {
	return s.data
}

// Parts returns the sequence number and the data.
func (s SeqData[D]) Parts() (uint64, D) {
	return s.seq, s.data
}

// OrderKey returns the ordering key of a normal value with the same seq.
func (s SeqData[D]) OrderKey() OrderKey {
	return NewOrderKey(s.seq, false)
}

// InternalSeq returns the sequence number for internal use.
func (s SeqData[D]) InternalSeq() InternalSeq {
	return NewInternalSeq(s.seq)
}

// UserSeq returns the sequence number for application use.
func (s SeqData[D]) UserSeq() uint64 {
	return s.seq
}

// ToSeqMarked converts s into a normal SeqMarked.
func (s SeqData[D]) ToSeqMarked() SeqMarked[D] {
	return NewNormal(s.seq, s.data)
}

// String returns "{seq=<seq>, (<data>)}".
func (s SeqData[D]) String() string {
	return fmt.Sprintf("{seq=%d, (%v)}", s.seq, s.data)
}

// MapData converts the data of s with f, keeping the sequence number.
func MapData[D, U any](s SeqData[D], f func(D) U) SeqData[U] {
	return NewSeqData(s.seq, f(s.data))
}
