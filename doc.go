// Package seqmarked provides sequence-numbered values with tombstone support
// for LSM trees and other versioned key-value stores.
//
// A [SeqMarked] couples a [marked.Marked] value with the sequence number of the
// write that produced it. Versions of the same key are totally ordered: by
// sequence number first, then a tombstone is greater than a normal value with
// the same sequence number. Sequence number 0 is reserved: it means "never
// written" and is always the smallest value, whatever the marked content.
//
// The types are immutable values and are safe to share between goroutines.
//
// See the [github.com/tarantool/go-seqmarked/yamlcodec] and
// [github.com/tarantool/go-seqmarked/msgpackcodec] packages for the
// structured and compact encodings.
package seqmarked
