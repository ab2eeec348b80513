// Package bus provides the in-process publish-subscribe surface that binds
// the kernel components to external fan-out (WebSocket, logs). Delivery is
// best-effort fire-and-forget; the bus never persists events.
package bus

import (
	"log/slog"
	"sync"
	"time"
)

// Topic is one of the fixed event topics.
type Topic string

// Kernel event topics.
const (
	TopicAgentSpawned    Topic = "agent:spawned"
	TopicAgentStatus     Topic = "agent:status"
	TopicAgentOutput     Topic = "agent:output"
	TopicAgentError      Topic = "agent:error"
	TopicAgentCompleted  Topic = "agent:completed"
	TopicAgentTerminated Topic = "agent:terminated"

	TopicTaskQueued     Topic = "task:queued"
	TopicTaskDispatched Topic = "task:dispatched"
	TopicTaskProgress   Topic = "task:progress"
	TopicTaskCompleted  Topic = "task:completed"
	TopicTaskFailed     Topic = "task:failed"
	TopicTaskCancelled  Topic = "task:cancelled"

	TopicApprovalRequired Topic = "approval:required"
	TopicApprovalDecided  Topic = "approval:decided"
	TopicApprovalGranted  Topic = "approval:granted"
	TopicApprovalRejected Topic = "approval:rejected"
	TopicApprovalExpired  Topic = "approval:expired"
	TopicApprovalBypassed Topic = "approval:bypassed"

	TopicLockAcquired         Topic = "lock:acquired"
	TopicLockReleased         Topic = "lock:released"
	TopicLockGrantedFromQueue Topic = "lock:granted-from-queue"

	TopicUsageTracked Topic = "usage:tracked"
	TopicUsageAlert   Topic = "usage:alert"
)

// subscriberQueueCap bounds the per-subscriber pending event queue. A
// subscriber that falls further behind is dropped with a logged warning.
const subscriberQueueCap = 1024

// Event is a single published message.
type Event struct {
	Topic     Topic     `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// Subscription is a registered subscriber. Events arrive on C until the
// subscription is closed, either by Close or by the bus dropping a slow
// subscriber.
type Subscription struct {
	id     int
	topics map[Topic]bool
	ch     chan Event

	closeOnce sync.Once
	bus       *Bus
}

// C returns the subscription's event channel. The channel is closed when the
// subscription ends.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Close unregisters the subscription and closes its channel.
func (s *Subscription) Close() {
	s.bus.unsubscribe(s, "")
}

// Bus is the in-process topic bus.
type Bus struct {
	mu      sync.RWMutex
	subs    map[int]*Subscription
	nextID  int
	dropped int64
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[int]*Subscription)}
}

// Subscribe registers a subscriber for the given topics. With no topics the
// subscriber receives every event.
func (b *Bus) Subscribe(topics ...Topic) *Subscription {
	sub := &Subscription{
		topics: make(map[Topic]bool, len(topics)),
		ch:     make(chan Event, subscriberQueueCap),
		bus:    b,
	}
	for _, t := range topics {
		sub.topics[t] = true
	}

	b.mu.Lock()
	b.nextID++
	sub.id = b.nextID
	b.subs[sub.id] = sub
	b.mu.Unlock()
	return sub
}

// Publish delivers an event to every matching subscriber. It never blocks:
// a subscriber whose queue is full is dropped.
func (b *Bus) Publish(topic Topic, payload any) {
	ev := Event{Topic: topic, Timestamp: time.Now(), Payload: payload}

	// Sends stay under the read lock: unsubscribe closes a channel only
	// after holding the write lock, so a send can never hit a closed
	// channel. The sends are non-blocking, so holding the lock is cheap.
	var slow []*Subscription
	b.mu.RLock()
	for _, sub := range b.subs {
		if len(sub.topics) == 0 || sub.topics[topic] {
			select {
			case sub.ch <- ev:
			default:
				slow = append(slow, sub)
			}
		}
	}
	b.mu.RUnlock()

	for _, sub := range slow {
		b.unsubscribe(sub, string(topic))
	}
}

// SubscriberCount returns the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dropped returns how many subscribers have been dropped for falling behind.
func (b *Bus) Dropped() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}

// unsubscribe removes a subscription and closes its channel exactly once.
// The close runs only after the removal is visible to publishers, which send
// under the read lock. A non-empty topic marks the removal as a
// slow-subscriber drop.
func (b *Bus) unsubscribe(sub *Subscription, topic string) {
	b.mu.Lock()
	_, present := b.subs[sub.id]
	delete(b.subs, sub.id)
	if present && topic != "" {
		b.dropped++
	}
	b.mu.Unlock()

	if present && topic != "" {
		slog.Warn("Dropping slow event bus subscriber",
			"subscriber_id", sub.id,
			"topic", topic,
			"queue_cap", subscriberQueueCap)
	}
	sub.closeOnce.Do(func() { close(sub.ch) })
}
