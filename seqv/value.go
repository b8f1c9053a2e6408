package seqv

import (
	"math"

	"github.com/tarantool/go-option"
)

// Expirable is implemented by metadata that can carry an expiration time.
type Expirable interface {
	// ExpiresAtMsOpt returns the absolute expiration time in milliseconds
	// since the Unix epoch, None if there is no expiration time.
	ExpiresAtMsOpt() option.Generic[uint64]
}

// SeqValue is a value with a sequence number and metadata.
//
// SeqValue is intended for application use and has no tombstone concept,
// unlike seqmarked.SeqMarked which is for storage internals.
type SeqValue[M, V any] interface {
	// Seq returns the sequence number of the value, 0 if absent.
	Seq() uint64
	// Value returns the value.
	Value() option.Generic[V]
	// Meta returns the metadata of the value.
	Meta() option.Generic[M]
}

var (
	_ SeqValue[struct{}, []byte] = SeqV[struct{}, []byte]{}   //nolint:exhaustruct
	_ SeqValue[struct{}, []byte] = Opt[struct{}, []byte]{}    //nolint:exhaustruct
	_ SeqValue[struct{}, []byte] = Marked[struct{}, []byte]{} //nolint:exhaustruct
)

// Unpack returns the sequence number and the value of v.
func Unpack[M, V any](v SeqValue[M, V]) (uint64, option.Generic[V]) {
	return v.Seq(), v.Value()
}

// ExpiresAtMsOpt returns the expiration time of v, None if v has no
// metadata or the metadata has no expiration time.
func ExpiresAtMsOpt[M Expirable, V any](v SeqValue[M, V]) option.Generic[uint64] {
	meta, ok := v.Meta().Get()
	if !ok {
		return option.None[uint64]()
	}

	return meta.ExpiresAtMsOpt()
}

// ExpiresAtMs returns the expiration time of v in milliseconds since the
// Unix epoch. If there is no expiration time math.MaxUint64 is returned,
// meaning the value never expires.
func ExpiresAtMs[M Expirable, V any](v SeqValue[M, V]) uint64 {
	return ExpiresAtMsOpt(v).UnwrapOr(math.MaxUint64)
}

// IsExpired reports whether v is expired at nowMs, milliseconds since the
// Unix epoch.
func IsExpired[M Expirable, V any](v SeqValue[M, V], nowMs uint64) bool {
	return ExpiresAtMs(v) < nowMs
}

// Opt is a SeqV that may be absent, e.g. the result of reading a key that
// does not exist or was deleted.
type Opt[M, T any] struct {
	option.Generic[SeqV[M, T]]
}

// Some creates a present Opt.
func Some[M, T any](v SeqV[M, T]) Opt[M, T] {
	return Opt[M, T]{Generic: option.Some(v)}
}

// None creates an absent Opt.
func None[M, T any]() Opt[M, T] {
	return Opt[M, T]{Generic: option.None[SeqV[M, T]]()}
}

// Seq implements SeqValue, 0 if absent.
func (o Opt[M, T]) Seq() uint64 {
	v, ok := o.Get()
	if !ok {
		return 0
	}

	return v.Seq()
}

// Value implements SeqValue.
func (o Opt[M, T]) Value() option.Generic[T] {
	v, ok := o.Get()
	if !ok {
		return option.None[T]()
	}

	return v.Value()
}

// Meta implements SeqValue.
func (o Opt[M, T]) Meta() option.Generic[M] {
	v, ok := o.Get()
	if !ok {
		return option.None[M]()
	}

	return v.Meta()
}
