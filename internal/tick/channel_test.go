package tick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/overworld/internal/errutil"
)

func TestChannelEmitAndDrain(t *testing.T) {
	ch := NewChannel(DefaultCapacity)
	assert.Equal(t, 0, ch.Len())
	assert.Nil(t, ch.Drain())

	require.NoError(t, ch.Emit(Event{}))
	require.NoError(t, ch.Emit(Event{}))
	assert.Equal(t, 2, ch.Len())

	drained := ch.Drain()
	assert.Len(t, drained, 2)
	assert.Equal(t, 0, ch.Len(), "drain must empty the channel")
	assert.Nil(t, ch.Drain(), "no event survives a drain")
}

func TestChannelBounded(t *testing.T) {
	ch := NewChannel(2)
	require.NoError(t, ch.Emit(Event{}))
	require.NoError(t, ch.Emit(Event{}))

	err := ch.Emit(Event{})
	errutil.AssertErrorCode(t, err, ErrCodeChannelFull)
	assert.Equal(t, 2, ch.Len())

	ch.Clear()
	assert.Equal(t, 0, ch.Len())
	require.NoError(t, ch.Emit(Event{}))
}

func TestNewChannelDefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewChannel(0).Cap())
	assert.Equal(t, 8, NewChannel(8).Cap())
}
