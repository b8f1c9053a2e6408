// Package marshaller defines the interface shared by the encodings of
// sequence-marked values and the errors they return.
//
// Concrete encodings live in their own packages, so a program links only
// the encodings it imports:
//   - [github.com/tarantool/go-seqmarked/yamlcodec]: structured, self-describing.
//   - [github.com/tarantool/go-seqmarked/msgpackcodec]: compact, positional.
package marshaller

// TypedMarshaller is a generic interface for typed marshalling operations.
// Unmarshal(Marshal(v)) must reproduce v exactly.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}
