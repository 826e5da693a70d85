package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReceivesEvent(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(UpdatedEvent, "sample.go")

	msg := ListenCmd(ctx, ch)()

	event, ok := msg.(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "sample.go", event.Payload)
	require.Equal(t, UpdatedEvent, event.Type)
}

func TestListenCmd_ContextCancelled(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)

	cancel()
	time.Sleep(20 * time.Millisecond) // Wait for cleanup

	msg := ListenCmd(ctx, ch)()
	require.Nil(t, msg, "should return nil when context cancelled")
}

func TestListenCmd_ChannelClosed(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)

	msg := ListenCmd(context.Background(), ch)()
	require.Nil(t, msg, "should return nil when channel closed")
}

func TestContinuousListener_DeliversInOrder(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker)

	broker.Publish(CreatedEvent, 1)
	broker.Publish(UpdatedEvent, 2)
	broker.Publish(DeletedEvent, 3)

	want := []struct {
		payload int
		typ     EventType
	}{
		{1, CreatedEvent},
		{2, UpdatedEvent},
		{3, DeletedEvent},
	}

	for _, w := range want {
		msg := listener.Listen()()
		event, ok := msg.(Event[int])
		require.True(t, ok, "msg should be Event[int]")
		require.Equal(t, w.payload, event.Payload)
		require.Equal(t, w.typ, event.Type)
	}
}
