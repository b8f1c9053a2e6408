// Package kv provides keyed versions of sequence-marked values and the
// resolution of the authoritative version of every key.
package kv

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/tarantool/go-seqmarked"
	"github.com/tarantool/go-seqmarked/internal/options"
)

// KeyValue is one version of a key.
type KeyValue struct {
	// Key is the serialized representation of the key.
	Key []byte
	// Value is the version: data or tombstone with the sequence number of
	// the write that produced it.
	Value seqmarked.SeqMarked[[]byte]
}

// Put creates a normal version of key written at seq.
func Put(key []byte, seq uint64, value []byte) KeyValue {
	return KeyValue{Key: key, Value: seqmarked.NewNormal(seq, value)}
}

// Delete creates a tombstone of key written at seq.
func Delete(key []byte, seq uint64) KeyValue {
	return KeyValue{Key: key, Value: seqmarked.NewTombstone[[]byte](seq)}
}

// String returns "<key>@<version>".
func (kv KeyValue) String() string {
	return fmt.Sprintf("%q@%s", kv.Key, kv.Value.OrderKey())
}

// Compare orders versions by key ascending, then the newest version of a
// key first. This is the order in which a merge visits versions.
func Compare(a, b KeyValue) int {
	if c := bytes.Compare(a.Key, b.Key); c != 0 {
		return c
	}

	return seqmarked.Compare(b.Value, a.Value)
}

// resolveOptions contains configuration options for Resolve.
type resolveOptions struct {
	KeepTombstones bool // Keep keys whose newest version is a tombstone.
	KeepAbsent     bool // Keep versions with the reserved sequence number 0.
}

// Option is a function that configures Resolve.
type Option func(*resolveOptions)

// WithTombstones keeps deleted keys in the result of Resolve.
func WithTombstones() Option {
	return func(opts *resolveOptions) {
		opts.KeepTombstones = true
	}
}

// WithAbsent keeps keys that have never been written, i.e. whose newest
// version has sequence number 0.
func WithAbsent() Option {
	return func(opts *resolveOptions) {
		opts.KeepAbsent = true
	}
}

func defaultResolveOptions() resolveOptions {
	return resolveOptions{KeepTombstones: false, KeepAbsent: false}
}

func applyResolveOptions(opts []Option) resolveOptions {
	callbacks := make([]options.OptionCallback[resolveOptions], 0, len(opts))
	for _, opt := range opts {
		callbacks = append(callbacks, options.OptionCallback[resolveOptions](opt))
	}

	return options.ApplyOptions(defaultResolveOptions, callbacks)
}

// Resolve returns the authoritative version of every key in versions,
// sorted by key. The newest version of a key wins; a tombstone wins over a
// normal value with the same sequence number. If several versions of a key
// are equal, the first one in versions wins.
//
// By default keys whose newest version is a tombstone or has sequence
// number 0 are left out. versions is not modified.
func Resolve(versions []KeyValue, opts ...Option) []KeyValue {
	cfg := applyResolveOptions(opts)

	sorted := slices.Clone(versions)
	slices.SortStableFunc(sorted, Compare)

	out := make([]KeyValue, 0, len(sorted))

	for i, kv := range sorted {
		if i > 0 && bytes.Equal(sorted[i-1].Key, kv.Key) {
			continue
		}

		switch {
		case kv.Value.Seq() == seqmarked.NotFoundSeq && !cfg.KeepAbsent:
			continue
		case kv.Value.IsTombstone() && !cfg.KeepTombstones:
			continue
		}

		out = append(out, kv)
	}

	return out
}

// Get returns the authoritative version of key among versions,
// a not-found version if there is none.
func Get(versions []KeyValue, key []byte) seqmarked.SeqMarked[[]byte] {
	latest := seqmarked.NewNotFound[[]byte]()

	for _, kv := range versions {
		if bytes.Equal(kv.Key, key) && seqmarked.Compare(kv.Value, latest) > 0 {
			latest = kv.Value
		}
	}

	return latest
}
