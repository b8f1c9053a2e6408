// Package msgpackcodec implements the compact binary encoding of
// sequence-marked values on top of MessagePack.
//
// The layout is positional and does not tolerate schema changes:
//
//	normal:    [seq, 0, data]
//	tombstone: [seq, 1]
//
// Integers use the shortest MessagePack representation.
package msgpackcodec

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/tarantool/go-seqmarked"
	"github.com/tarantool/go-seqmarked/marshaller"
)

// Format is the name of the encoding reported in marshaller errors.
const Format = "msgpack"

// Kind is the second element of an encoded value.
type Kind uint8

const (
	// KindNormal marks a value holding data.
	KindNormal Kind = 0
	// KindTombstone marks a deletion.
	KindTombstone Kind = 1
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "Normal"
	case KindTombstone:
		return "TombStone"
	default:
		return "Unknown"
	}
}

const (
	// normalArrayLen is the length of the array that is used to encode a normal value.
	normalArrayLen = 3
	// tombstoneArrayLen is the length of the array that is used to encode a tombstone.
	tombstoneArrayLen = 2
)

// Value wraps a SeqMarked to make it a msgpack.CustomEncoder and
// msgpack.CustomDecoder, so it can be embedded into other msgpack messages.
type Value[D any] struct {
	seqmarked.SeqMarked[D]
}

var (
	_ msgpack.CustomEncoder = Value[string]{}  //nolint:exhaustruct
	_ msgpack.CustomDecoder = &Value[string]{} //nolint:exhaustruct
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (v Value[D]) EncodeMsgpack(encoder *msgpack.Encoder) error {
	data, isNormal := v.Marked().Data()

	arrayLen, kind := tombstoneArrayLen, KindTombstone
	if isNormal {
		arrayLen, kind = normalArrayLen, KindNormal
	}

	err := encoder.EncodeArrayLen(arrayLen)
	if err != nil {
		return newEncodingError("array length", err)
	}

	err = encoder.EncodeUint(v.Seq())
	if err != nil {
		return newEncodingError("seq", err)
	}

	err = encoder.EncodeUint(uint64(kind))
	if err != nil {
		return newEncodingError("kind", err)
	}

	if !isNormal {
		return nil
	}

	err = encoder.Encode(data)
	if err != nil {
		return newEncodingError("data", err)
	}

	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (v *Value[D]) DecodeMsgpack(decoder *msgpack.Decoder) error {
	arrayLen, err := decoder.DecodeArrayLen()
	if err != nil {
		return newDecodingError("array length", err)
	}

	if arrayLen != normalArrayLen && arrayLen != tombstoneArrayLen {
		return newDecodingError("array length", fmt.Errorf("%w: %d", ErrInvalidArrayLen, arrayLen))
	}

	seq, err := decodeUint(decoder, "seq")
	if err != nil {
		return err
	}

	rawKind, err := decodeUint(decoder, "kind")
	if err != nil {
		return err
	}

	switch rawKind {
	case uint64(KindTombstone):
		if arrayLen != tombstoneArrayLen {
			return newDecodingError("data", ErrTombstoneWithData)
		}

		v.SeqMarked = seqmarked.NewTombstone[D](seq)

		return nil
	case uint64(KindNormal):
		if arrayLen != normalArrayLen {
			return newDecodingError("data", ErrMissingData)
		}
	default:
		return newDecodingError("kind", fmt.Errorf("%w: %d", ErrUnknownKind, rawKind))
	}

	var data D

	err = decoder.Decode(&data)
	if err != nil {
		return newDecodingError("data", err)
	}

	v.SeqMarked = seqmarked.NewNormal(seq, data)

	return nil
}

// decodeUint reads an unsigned integer. Signed and nil codes are rejected
// instead of being converted.
func decodeUint(decoder *msgpack.Decoder, field string) (uint64, error) {
	code, err := decoder.PeekCode()
	if err != nil {
		return 0, newDecodingError(field, err)
	}

	switch {
	case code <= msgpcode.PosFixedNumHigh:
	case code == msgpcode.Uint8, code == msgpcode.Uint16, code == msgpcode.Uint32, code == msgpcode.Uint64:
	default:
		return 0, newDecodingError(field, fmt.Errorf("%w: code 0x%02x", ErrInvalidInteger, code))
	}

	value, err := decoder.DecodeUint64()
	if err != nil {
		return 0, newDecodingError(field, err)
	}

	return value, nil
}

// Marshaller encodes SeqMarked values as MessagePack arrays.
type Marshaller[D any] struct{}

var _ marshaller.TypedMarshaller[seqmarked.SeqMarked[string]] = Marshaller[string]{}

// New creates a new MessagePack Marshaller for SeqMarked[D].
func New[D any]() Marshaller[D] {
	return Marshaller[D]{}
}

// Marshal serializes value into MessagePack.
func (m Marshaller[D]) Marshal(value seqmarked.SeqMarked[D]) ([]byte, error) {
	var buf bytes.Buffer

	err := Value[D]{SeqMarked: value}.EncodeMsgpack(msgpack.NewEncoder(&buf))
	if err != nil {
		return nil, marshaller.NewMarshalError(Format, err)
	}

	return buf.Bytes(), nil
}

// Unmarshal deserializes exactly one MessagePack encoded value.
func (m Marshaller[D]) Unmarshal(data []byte) (seqmarked.SeqMarked[D], error) {
	var out Value[D]

	reader := bytes.NewReader(data)

	err := out.DecodeMsgpack(msgpack.NewDecoder(reader))
	if err != nil {
		return seqmarked.SeqMarked[D]{}, marshaller.NewUnmarshalError(Format, err) //nolint:exhaustruct
	}

	if reader.Len() != 0 {
		err = fmt.Errorf("%w: %d bytes", ErrTrailingData, reader.Len())
		return seqmarked.SeqMarked[D]{}, marshaller.NewUnmarshalError(Format, err) //nolint:exhaustruct
	}

	return out.SeqMarked, nil
}
