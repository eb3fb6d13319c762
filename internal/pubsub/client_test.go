package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestNew_WithoutProjectIsNoop(t *testing.T) {
	c := New(context.Background(), "")
	_, ok := c.(noop)
	require.True(t, ok)

	assert.NoError(t, c.SendMessage(context.Background(), EventPlayerCreated, NewEvent(EventPlayerCreated, 1, nil)))
	assert.NoError(t, c.Close())
}

func TestEncode_EventPayload(t *testing.T) {
	sent := NewEvent(EventPassportsReplaced, 12, []int{7, 8})
	data, err := encode(sent)
	require.NoError(t, err)

	var got Event
	require.NoError(t, msgpack.Unmarshal(data, &got))
	assert.Equal(t, sent.ID, got.ID)
	assert.Equal(t, EventPassportsReplaced, got.Type)
	assert.Equal(t, 12, got.PlayerID)
	assert.Equal(t, []int{7, 8}, got.PassportIDs)
	assert.True(t, sent.At.Equal(got.At))
}
