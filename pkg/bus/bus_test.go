package bus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.C():
		require.True(t, ok, "subscription channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestPublishDeliversToTopicSubscriber(t *testing.T) {
	b := New()
	sub := b.Subscribe(TopicTaskQueued)
	defer sub.Close()

	b.Publish(TopicTaskQueued, map[string]string{"task_id": "t1"})

	ev := receive(t, sub)
	assert.Equal(t, TopicTaskQueued, ev.Topic)
	assert.Equal(t, map[string]string{"task_id": "t1"}, ev.Payload)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestPublishFiltersByTopic(t *testing.T) {
	b := New()
	locks := b.Subscribe(TopicLockAcquired, TopicLockReleased)
	defer locks.Close()

	b.Publish(TopicUsageAlert, "ignored")
	b.Publish(TopicLockReleased, "seen")

	ev := receive(t, locks)
	assert.Equal(t, TopicLockReleased, ev.Topic)
}

func TestSubscribeAllTopics(t *testing.T) {
	b := New()
	all := b.Subscribe()
	defer all.Close()

	b.Publish(TopicAgentSpawned, nil)
	b.Publish(TopicApprovalExpired, nil)

	assert.Equal(t, TopicAgentSpawned, receive(t, all).Topic)
	assert.Equal(t, TopicApprovalExpired, receive(t, all).Topic)
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	b := New()
	slow := b.Subscribe(TopicAgentOutput)

	// Never read: fill the queue past its capacity.
	for i := 0; i < subscriberQueueCap+1; i++ {
		b.Publish(TopicAgentOutput, i)
	}

	assert.Equal(t, 0, b.SubscriberCount())
	assert.Equal(t, int64(1), b.Dropped())

	// Channel is closed after the buffered events drain.
	drained := 0
	for range slow.C() {
		drained++
	}
	assert.Equal(t, subscriberQueueCap, drained)
}

func TestSlowSubscriberDoesNotBlockOthers(t *testing.T) {
	b := New()
	slow := b.Subscribe(TopicAgentOutput)
	_ = slow // intentionally never read
	healthy := b.Subscribe(TopicAgentOutput)
	defer healthy.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberQueueCap+10; i++ {
			b.Publish(TopicAgentOutput, i)
			<-healthy.C()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publisher blocked by slow subscriber")
	}
	assert.Equal(t, 1, b.SubscriberCount())
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New()
	sub := b.Subscribe(TopicTaskQueued)
	sub.Close()
	sub.Close()

	assert.Equal(t, 0, b.SubscriberCount())
	assert.Equal(t, int64(0), b.Dropped())

	// Publishing after close must not panic.
	b.Publish(TopicTaskQueued, nil)
}

func TestConcurrentCloseAndPublish(t *testing.T) {
	// Subscriptions closing while a publisher is mid-fan-out must never
	// panic with a send on a closed channel.
	b := New()

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				b.Publish(TopicTaskQueued, nil)
			}
		}
	}()

	for i := 0; i < 200; i++ {
		subs := make([]*Subscription, 32)
		for j := range subs {
			subs[j] = b.Subscribe(TopicTaskQueued)
		}
		for _, sub := range subs {
			go sub.Close()
		}
	}

	close(stop)
	wg.Wait()
	require.Eventually(t, func() bool { return b.SubscriberCount() == 0 }, 5*time.Second, 10*time.Millisecond)
}
