// Package etcdkv converts etcd key-values and watch events into keyed
// sequence-marked versions.
//
// The sequence number of a version is the etcd ModRevision of the write. A
// PUT event becomes a normal version and a DELETE event a tombstone at the
// revision of the deletion, so the versions can be merged with
// [kv.Resolve] like any other source.
package etcdkv

import (
	"errors"
	"fmt"

	"go.etcd.io/etcd/api/v3/mvccpb"
	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-seqmarked"
	"github.com/tarantool/go-seqmarked/kv"
)

var (
	// ErrNilKeyValue is returned when a key-value or an event without one is converted.
	ErrNilKeyValue = errors.New("nil key-value")
	// ErrNegativeRevision is returned when a revision can not be used as a sequence number.
	ErrNegativeRevision = errors.New("negative revision")
	// ErrUnknownEventType is returned for events that are neither PUT nor DELETE.
	ErrUnknownEventType = errors.New("unknown event type")
)

func revisionToSeq(rev int64) (uint64, error) {
	if rev < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeRevision, rev)
	}

	return uint64(rev), nil
}

// FromKeyValue converts an etcd key-value into a normal version.
func FromKeyValue(keyValue *mvccpb.KeyValue) (kv.KeyValue, error) {
	if keyValue == nil {
		return kv.KeyValue{}, ErrNilKeyValue //nolint:exhaustruct
	}

	seq, err := revisionToSeq(keyValue.ModRevision)
	if err != nil {
		return kv.KeyValue{}, err //nolint:exhaustruct
	}

	return kv.KeyValue{
		Key:   keyValue.Key,
		Value: seqmarked.NewNormal(seq, keyValue.Value),
	}, nil
}

// FromEvent converts a watch event into a version.
func FromEvent(event *etcd.Event) (kv.KeyValue, error) {
	if event == nil || event.Kv == nil {
		return kv.KeyValue{}, ErrNilKeyValue //nolint:exhaustruct
	}

	switch event.Type {
	case etcd.EventTypePut:
		return FromKeyValue(event.Kv)
	case etcd.EventTypeDelete:
		seq, err := revisionToSeq(event.Kv.ModRevision)
		if err != nil {
			return kv.KeyValue{}, err //nolint:exhaustruct
		}

		return kv.KeyValue{
			Key:   event.Kv.Key,
			Value: seqmarked.NewTombstone[[]byte](seq),
		}, nil
	default:
		return kv.KeyValue{}, fmt.Errorf("%w: %s", ErrUnknownEventType, event.Type) //nolint:exhaustruct
	}
}

// FromGetResponse converts the key-values of a range response.
func FromGetResponse(resp *etcd.GetResponse) ([]kv.KeyValue, error) {
	if resp == nil {
		return nil, nil
	}

	out := make([]kv.KeyValue, 0, len(resp.Kvs))

	for _, keyValue := range resp.Kvs {
		converted, err := FromKeyValue(keyValue)
		if err != nil {
			return nil, fmt.Errorf("failed to convert key-value: %w", err)
		}

		out = append(out, converted)
	}

	return out, nil
}

// FromWatchResponse converts the events of a watch response.
// The error of a canceled or compacted watch is wrapped, so it still
// matches the etcd error with errors.Is.
func FromWatchResponse(resp etcd.WatchResponse) ([]kv.KeyValue, error) {
	err := resp.Err()
	if err != nil {
		return nil, fmt.Errorf("watch failed: %w", err)
	}

	out := make([]kv.KeyValue, 0, len(resp.Events))

	for _, event := range resp.Events {
		converted, err := FromEvent(event)
		if err != nil {
			return nil, fmt.Errorf("failed to convert event: %w", err)
		}

		out = append(out, converted)
	}

	return out, nil
}
