package seqmarked

import (
	"fmt"
)

// InternalSeq is the sequence number used inside a storage engine.
//
// Unlike SeqMarked.UserSeq, where a tombstone always has seq 0, an
// InternalSeq of a tombstone keeps its positive sequence number.
type InternalSeq struct {
	seq uint64
}

// NewInternalSeq creates an InternalSeq.
func NewInternalSeq(seq uint64) InternalSeq {
	return InternalSeq{seq: seq}
}

// Uint64 returns the raw sequence number.
func (s InternalSeq) Uint64() uint64 {
	return s.seq
}

// Add returns s advanced by n.
func (s InternalSeq) Add(n uint64) InternalSeq {
	return InternalSeq{seq: s.seq + n}
}

// Compare returns -1, 0 or +1.
func (s InternalSeq) Compare(other InternalSeq) int {
	switch {
	case s.seq < other.seq:
		return -1
	case s.seq > other.seq:
		return 1
	default:
		return 0
	}
}

// String returns "ISeq(<seq>)".
func (s InternalSeq) String() string {
	return fmt.Sprintf("ISeq(%d)", s.seq)
}
