package event

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchTopic(t *testing.T) {
	assert.Equal(t, "branch:7", BranchTopic(7))
}

func TestBroadcastReachesTopicSubscribers(t *testing.T) {
	sender := NewSSEServer()
	go sender.Run()

	client := make(chan Event, 1)
	sender.Register(BranchTopic(1), client)
	defer sender.Unregister(BranchTopic(1), client)

	other := make(chan Event, 1)
	sender.Register(BranchTopic(2), other)
	defer sender.Unregister(BranchTopic(2), other)

	sender.Broadcast(Event{
		Topic: BranchTopic(1),
		Type:  EventTypeFeedUpdated,
	})

	select {
	case ev := <-client:
		assert.Equal(t, EventTypeFeedUpdated, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	require.Empty(t, other)
}

func TestConcurrentRegisterUnregister(t *testing.T) {
	sender := NewSSEServer()
	go sender.Run()

	// Many goroutines churning subscriptions on the same topics must not
	// trip the race detector on the client count logs.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			topic := BranchTopic(int64(n % 3))
			client := make(chan Event, 1)
			sender.Register(topic, client)
			sender.Broadcast(Event{Topic: topic, Type: EventTypeLowStockAlert, Data: fmt.Sprintf("alert %d", n)})
			sender.Unregister(topic, client)
		}(i)
	}
	wg.Wait()
}
