package etcdkv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/etcd/api/v3/mvccpb"
	"go.etcd.io/etcd/api/v3/v3rpc/rpctypes"
	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-seqmarked"
	"github.com/tarantool/go-seqmarked/etcdkv"
	"github.com/tarantool/go-seqmarked/kv"
)

func keyValue(key string, modRevision int64, value string) *mvccpb.KeyValue {
	return &mvccpb.KeyValue{
		Key:            []byte(key),
		CreateRevision: 1,
		ModRevision:    modRevision,
		Version:        1,
		Value:          []byte(value),
		Lease:          0,
	}
}

func putEvent(key string, modRevision int64, value string) *etcd.Event {
	return &etcd.Event{Type: etcd.EventTypePut, Kv: keyValue(key, modRevision, value), PrevKv: nil}
}

func deleteEvent(key string, modRevision int64) *etcd.Event {
	return &etcd.Event{Type: etcd.EventTypeDelete, Kv: keyValue(key, modRevision, ""), PrevKv: nil}
}

func TestFromKeyValue(t *testing.T) {
	t.Parallel()

	got, err := etcdkv.FromKeyValue(keyValue("/a", 7, "v"))
	require.NoError(t, err)
	assert.Equal(t, kv.Put([]byte("/a"), 7, []byte("v")), got)

	_, err = etcdkv.FromKeyValue(nil)
	require.ErrorIs(t, err, etcdkv.ErrNilKeyValue)

	_, err = etcdkv.FromKeyValue(keyValue("/a", -1, "v"))
	require.ErrorIs(t, err, etcdkv.ErrNegativeRevision)
}

func TestFromEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		event    *etcd.Event
		expected kv.KeyValue
		err      error
	}{
		{
			name:     "put",
			event:    putEvent("/a", 3, "v"),
			expected: kv.Put([]byte("/a"), 3, []byte("v")),
			err:      nil,
		},
		{
			name:     "delete",
			event:    deleteEvent("/a", 4),
			expected: kv.Delete([]byte("/a"), 4),
			err:      nil,
		},
		{
			name:     "nil event",
			event:    nil,
			expected: kv.KeyValue{}, //nolint:exhaustruct
			err:      etcdkv.ErrNilKeyValue,
		},
		{
			name:     "event without key-value",
			event:    &etcd.Event{Type: etcd.EventTypePut, Kv: nil, PrevKv: nil},
			expected: kv.KeyValue{}, //nolint:exhaustruct
			err:      etcdkv.ErrNilKeyValue,
		},
		{
			name:     "delete with negative revision",
			event:    deleteEvent("/a", -4),
			expected: kv.KeyValue{}, //nolint:exhaustruct
			err:      etcdkv.ErrNegativeRevision,
		},
		{
			name:     "unknown type",
			event:    &etcd.Event{Type: mvccpb.Event_EventType(42), Kv: keyValue("/a", 1, ""), PrevKv: nil},
			expected: kv.KeyValue{}, //nolint:exhaustruct
			err:      etcdkv.ErrUnknownEventType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := etcdkv.FromEvent(tt.event)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromGetResponse(t *testing.T) {
	t.Parallel()

	got, err := etcdkv.FromGetResponse(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	resp := &etcd.GetResponse{ //nolint:exhaustruct
		Kvs: []*mvccpb.KeyValue{
			keyValue("/a", 2, "a"),
			keyValue("/b", 3, "b"),
		},
	}

	got, err = etcdkv.FromGetResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, []kv.KeyValue{
		kv.Put([]byte("/a"), 2, []byte("a")),
		kv.Put([]byte("/b"), 3, []byte("b")),
	}, got)

	resp.Kvs = append(resp.Kvs, nil)

	_, err = etcdkv.FromGetResponse(resp)
	require.ErrorIs(t, err, etcdkv.ErrNilKeyValue)
}

func TestFromWatchResponse(t *testing.T) {
	t.Parallel()

	resp := etcd.WatchResponse{ //nolint:exhaustruct
		Events: []*etcd.Event{
			putEvent("/a", 5, "a5"),
			deleteEvent("/a", 6),
			putEvent("/b", 6, "b6"),
		},
	}

	got, err := etcdkv.FromWatchResponse(resp)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, seqmarked.NewTombstone[[]byte](6), kv.Get(got, []byte("/a")))
	assert.Equal(t, []kv.KeyValue{kv.Put([]byte("/b"), 6, []byte("b6"))}, kv.Resolve(got))

	_, err = etcdkv.FromWatchResponse(etcd.WatchResponse{CompactRevision: 3}) //nolint:exhaustruct
	require.ErrorIs(t, err, rpctypes.ErrCompacted)
	require.Contains(t, err.Error(), "watch failed")

	resp.Events = append(resp.Events, nil)

	_, err = etcdkv.FromWatchResponse(resp)
	require.ErrorIs(t, err, etcdkv.ErrNilKeyValue)
}
