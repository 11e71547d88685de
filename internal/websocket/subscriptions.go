package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
)

// SubscriptionIndex maps a topic (product id) to the set of connections
// interested in its review stream.
type SubscriptionIndex struct {
	mu     sync.RWMutex
	topics map[uint]map[*Client]struct{}
}

func NewSubscriptionIndex() *SubscriptionIndex {
	return &SubscriptionIndex{
		topics: make(map[uint]map[*Client]struct{}),
	}
}

// Subscribe adds c to topic. It reports false if c was already subscribed.
func (s *SubscriptionIndex) Subscribe(topic uint, c *Client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.topics[topic]
	if set == nil {
		set = make(map[*Client]struct{})
		s.topics[topic] = set
	}
	if _, ok := set[c]; ok {
		return false
	}
	set[c] = struct{}{}
	return true
}

// Publish queues payload on every open subscriber of topic and returns how
// many accepted it. Closed or failing subscribers are skipped here and left
// for RemoveConnection to clean up.
func (s *SubscriptionIndex) Publish(topic uint, payload []byte) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	delivered := 0
	for c := range s.topics[topic] {
		if !c.IsOpen() {
			continue
		}
		if err := c.Send(payload); err == nil {
			delivered++
		}
	}
	return delivered
}

// PublishJSON encodes v once and publishes the same bytes to every subscriber.
func (s *SubscriptionIndex) PublishJSON(topic uint, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("failed to encode topic %d payload: %w", topic, err)
	}
	return s.Publish(topic, payload), nil
}

// RemoveConnection drops c from every topic, pruning emptied topics, and
// returns the number of topics it was removed from.
func (s *SubscriptionIndex) RemoveConnection(c *Client) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for topic, set := range s.topics {
		if _, ok := set[c]; !ok {
			continue
		}
		delete(set, c)
		removed++
		if len(set) == 0 {
			delete(s.topics, topic)
		}
	}
	return removed
}

func (s *SubscriptionIndex) SubscriberCount(topic uint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.topics[topic])
}

func (s *SubscriptionIndex) TopicCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.topics)
}
