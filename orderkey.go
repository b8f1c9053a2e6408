package seqmarked

import (
	"math"
	"strconv"
)

// OrderKey is a payload-free projection of a SeqMarked used to compare
// and sort versions without touching their data.
//
// The zero value is ZeroKey.
type OrderKey struct {
	seq       uint64
	tombstone bool
}

// NewOrderKey creates an OrderKey.
func NewOrderKey(seq uint64, tombstone bool) OrderKey {
	return OrderKey{seq: seq, tombstone: tombstone}
}

// ZeroKey returns the smallest order key: seq 0, normal.
func ZeroKey() OrderKey {
	return OrderKey{seq: 0, tombstone: false}
}

// MaxKey returns the greatest order key: the maximum seq, tombstone.
func MaxKey() OrderKey {
	return OrderKey{seq: math.MaxUint64, tombstone: true}
}

// Seq returns the sequence number.
func (k OrderKey) Seq() uint64 {
	return k.seq
}

// IsTombstone returns true if the key belongs to a tombstone.
func (k OrderKey) IsTombstone() bool {
	return k.tombstone
}

// Compare returns -1, 0 or +1. See the package level Compare for the rules.
func (k OrderKey) Compare(other OrderKey) int {
	switch {
	case k.seq < other.seq:
		return -1
	case k.seq > other.seq:
		return 1
	case k.seq == NotFoundSeq:
		// Never written: tombstone state does not matter.
		return 0
	case k.tombstone == other.tombstone:
		return 0
	case k.tombstone:
		return 1
	default:
		return -1
	}
}

// Less reports whether k is ordered before other.
func (k OrderKey) Less(other OrderKey) bool {
	return k.Compare(other) < 0
}

// Equal reports whether k and other are equal for ordering purposes.
// Use == to compare the raw fields.
func (k OrderKey) Equal(other OrderKey) bool {
	return k.Compare(other) == 0
}

// String returns "{seq=<seq>, normal}" or "{seq=<seq>, TOMBSTONE}".
func (k OrderKey) String() string {
	if k.tombstone {
		return "{seq=" + formatUint(k.seq) + ", TOMBSTONE}"
	}

	return "{seq=" + formatUint(k.seq) + ", normal}"
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
