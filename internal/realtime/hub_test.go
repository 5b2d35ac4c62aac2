package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/EventGate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub(4)

	a, unsubA := hub.Subscribe()
	defer unsubA()
	b, unsubB := hub.Subscribe()
	defer unsubB()

	change := domain.EventChange{Op: "insert", ID: 1, EventCode: "EVT123"}
	assert.Equal(t, 2, hub.Publish(change))

	assert.Equal(t, change, <-a)
	assert.Equal(t, change, <-b)
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(1)

	ch, unsubscribe := hub.Subscribe()
	unsubscribe()
	unsubscribe()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Subscribers())
	assert.Equal(t, 0, hub.Publish(domain.EventChange{Op: "update"}))
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(1)

	_, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(domain.EventChange{Op: "update", ID: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestHub_ConcurrentSubscribeAndPublish(t *testing.T) {
	hub := NewHub(8)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, unsubscribe := hub.Subscribe()
			unsubscribe()
		}()
		go func(i int) {
			defer wg.Done()
			hub.Publish(domain.EventChange{Op: "insert", ID: int64(i)})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Subscribers())
}

func TestDecodeChange(t *testing.T) {
	change, err := DecodeChange(`{"op":"delete","id":7,"eventCode":"GALA"}`)
	require.NoError(t, err)
	assert.Equal(t, domain.EventChange{Op: "delete", ID: 7, EventCode: "GALA"}, change)

	_, err = DecodeChange(`not json`)
	assert.Error(t, err)

	_, err = DecodeChange(`{"id":7}`)
	assert.Error(t, err)
}
