// Package yamlcodec implements the structured, self-describing encoding of
// sequence-marked values on top of YAML.
//
// A normal value is encoded as
//
//	seq: 1
//	data: <data>
//
// and a tombstone as
//
//	seq: 1
//	tombstone: true
//
// Byte slices are written as !!binary scalars and nil data as an explicit
// null.
//
// Unknown fields are ignored on decoding, so documents written by newer
// versions can still be read.
package yamlcodec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/tarantool/go-seqmarked"
	"github.com/tarantool/go-seqmarked/marshaller"
)

// Format is the name of the encoding reported in marshaller errors.
const Format = "yaml"

var (
	// ErrEmptyDocument is returned when there is nothing to decode.
	ErrEmptyDocument = errors.New("empty document")
	// ErrNotMapping is returned when the document is not a mapping.
	ErrNotMapping = errors.New("document is not a mapping")
	// ErrMissingSeq is returned when the seq field is absent.
	ErrMissingSeq = errors.New("missing seq field")
	// ErrTombstoneWithData is returned when a tombstone carries data.
	ErrTombstoneWithData = errors.New("tombstone must not carry data")
	// ErrMissingData is returned when a normal value has no data field.
	ErrMissingData = errors.New("missing data field")
)

const (
	binaryTag = "!!binary"
	nullTag   = "!!null"
)

type normalDocument struct {
	Seq  uint64     `yaml:"seq"`
	Data *yaml.Node `yaml:"data"`
}

type tombstoneDocument struct {
	Seq       uint64 `yaml:"seq"`
	Tombstone bool   `yaml:"tombstone"`
}

type rawDocument struct {
	Seq       *uint64   `yaml:"seq"`
	Tombstone bool      `yaml:"tombstone"`
	Data      yaml.Node `yaml:"data"`
}

// Value wraps a SeqMarked to make it a yaml.Marshaler and yaml.Unmarshaler,
// so it can be embedded into other YAML documents.
type Value[D any] struct {
	seqmarked.SeqMarked[D]
}

var (
	_ yaml.Marshaler   = Value[string]{}  //nolint:exhaustruct
	_ yaml.Unmarshaler = &Value[string]{} //nolint:exhaustruct
)

// MarshalYAML implements yaml.Marshaler.
func (v Value[D]) MarshalYAML() (any, error) {
	data, ok := v.Marked().Data()
	if !ok {
		return tombstoneDocument{Seq: v.Seq(), Tombstone: true}, nil
	}

	node, err := encodeData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode data: %w", err)
	}

	return normalDocument{Seq: v.Seq(), Data: node}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value[D]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return ErrNotMapping
	}

	var raw rawDocument

	err := node.Decode(&raw)
	if err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	switch {
	case raw.Seq == nil:
		return ErrMissingSeq
	case raw.Tombstone && raw.Data.Kind != 0:
		return ErrTombstoneWithData
	case raw.Tombstone:
		v.SeqMarked = seqmarked.NewTombstone[D](*raw.Seq)
		return nil
	case raw.Data.Kind == 0:
		return ErrMissingData
	}

	var data D

	err = decodeData(&raw.Data, &data)
	if err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}

	v.SeqMarked = seqmarked.NewNormal(*raw.Seq, data)

	return nil
}

// encodeData writes byte slices as !!binary scalars and nil slices, maps
// and pointers as an explicit null, so that they decode back unchanged.
func encodeData(data any) (*yaml.Node, error) {
	if isNil(data) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: nullTag, Value: "null"}, nil //nolint:exhaustruct
	}

	if raw, ok := data.([]byte); ok {
		return &yaml.Node{ //nolint:exhaustruct
			Kind:  yaml.ScalarNode,
			Tag:   binaryTag,
			Value: base64.StdEncoding.EncodeToString(raw),
		}, nil
	}

	var node yaml.Node

	err := node.Encode(data)
	if err != nil {
		return nil, err
	}

	return &node, nil
}

func decodeData[D any](node *yaml.Node, out *D) error {
	raw, ok := any(out).(*[]byte)
	if !ok || node.Kind != yaml.ScalarNode {
		return node.Decode(out)
	}

	switch node.ShortTag() {
	case nullTag:
		*raw = nil
	case binaryTag:
		decoded, err := base64.StdEncoding.DecodeString(node.Value)
		if err != nil {
			return fmt.Errorf("invalid !!binary data: %w", err)
		}

		*raw = decoded
	default:
		*raw = []byte(node.Value)
	}

	return nil
}

func isNil(data any) bool {
	if data == nil {
		return true
	}

	value := reflect.ValueOf(data)

	switch value.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}

// Marshaller encodes SeqMarked values as YAML documents.
type Marshaller[D any] struct{}

var _ marshaller.TypedMarshaller[seqmarked.SeqMarked[string]] = Marshaller[string]{}

// New creates a new YAML Marshaller for SeqMarked[D].
func New[D any]() Marshaller[D] {
	return Marshaller[D]{}
}

// Marshal serializes value into a YAML document.
func (m Marshaller[D]) Marshal(value seqmarked.SeqMarked[D]) ([]byte, error) {
	out, err := yaml.Marshal(Value[D]{SeqMarked: value})
	if err != nil {
		return nil, marshaller.NewMarshalError(Format, err)
	}

	return out, nil
}

// Unmarshal deserializes a YAML document into a SeqMarked.
func (m Marshaller[D]) Unmarshal(data []byte) (seqmarked.SeqMarked[D], error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return seqmarked.SeqMarked[D]{}, marshaller.NewUnmarshalError(Format, err) //nolint:exhaustruct
	}

	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return seqmarked.SeqMarked[D]{}, marshaller.NewUnmarshalError(Format, ErrEmptyDocument) //nolint:exhaustruct
	}

	var out Value[D]

	err = doc.Decode(&out)
	if err != nil {
		return seqmarked.SeqMarked[D]{}, marshaller.NewUnmarshalError(Format, err) //nolint:exhaustruct
	}

	return out.SeqMarked, nil
}
