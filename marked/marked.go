// Package marked provides Marked, a value that either holds data or marks
// a deletion (tombstone).
package marked

import (
	"cmp"
	"fmt"

	"github.com/tarantool/go-option"
)

// Marked is data that can be marked as tombstone.
//
// A tombstone never carries a payload. Tombstones always compare greater
// than normal values, independent of the ordering of D.
//
// The zero value is a normal value holding the zero value of D.
type Marked[D any] struct {
	data      D
	tombstone bool
}

// NewNormal creates a normal value holding data.
func NewNormal[D any](data D) Marked[D] {
	return Marked[D]{data: data, tombstone: false}
}

// NewTombStone creates a deletion marker.
func NewTombStone[D any]() Marked[D] {
	var zero D

	return Marked[D]{data: zero, tombstone: true}
}

// IsNormal returns true if m holds data.
func (m Marked[D]) IsNormal() bool {
	return !m.tombstone
}

// IsTombStone returns true if m is a deletion marker.
func (m Marked[D]) IsTombStone() bool {
	return m.tombstone
}

// Data returns the payload and true for a normal value.
// For a tombstone it returns the zero value of D and false.
func (m Marked[D]) Data() (D, bool) {
	if m.tombstone {
		var zero D
		return zero, false
	}

	return m.data, true
}

// DataOption returns the payload wrapped into an option,
// None for a tombstone.
func (m Marked[D]) DataOption() option.Generic[D] {
	if m.tombstone {
		return option.None[D]()
	}

	return option.Some(m.data)
}

// String returns "(<data>)" for a normal value and "TOMBSTONE" otherwise.
func (m Marked[D]) String() string {
	if m.tombstone {
		return "TOMBSTONE"
	}

	return fmt.Sprintf("(%v)", m.data)
}

// Map converts the payload of a normal value with f.
// A tombstone stays a tombstone and f is not called.
func Map[D, U any](m Marked[D], f func(D) U) Marked[U] {
	if m.tombstone {
		return NewTombStone[U]()
	}

	return NewNormal(f(m.data))
}

// TryMap is like Map, but f may fail. The error of f is returned as is.
func TryMap[D, U any](m Marked[D], f func(D) (U, error)) (Marked[U], error) {
	if m.tombstone {
		return NewTombStone[U](), nil
	}

	out, err := f(m.data)
	if err != nil {
		return Marked[U]{}, err //nolint:exhaustruct
	}

	return NewNormal(out), nil
}

// CompareFunc compares a and b using cmpData for two normal values.
// A tombstone is greater than any normal value and equal to another tombstone.
// The result is -1, 0 or +1 like in cmp.Compare.
func CompareFunc[D any](a, b Marked[D], cmpData func(D, D) int) int {
	switch {
	case a.tombstone && b.tombstone:
		return 0
	case a.tombstone:
		return 1
	case b.tombstone:
		return -1
	default:
		return sign(cmpData(a.data, b.data))
	}
}

// Compare compares a and b using the natural order of D.
func Compare[D cmp.Ordered](a, b Marked[D]) int {
	return CompareFunc(a, b, cmp.Compare[D])
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
