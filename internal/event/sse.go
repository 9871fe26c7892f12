package event

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type SSEServer struct {
	clients map[string]map[chan Event]bool
	events  chan Event
	mu      sync.Mutex
}

func NewSSEServer() EventSender {
	return &SSEServer{
		clients: make(map[string]map[chan Event]bool),
		events:  make(chan Event, 64),
	}
}

// Register subscribes a client channel to a topic.
func (s *SSEServer) Register(topic string, client chan Event) {
	s.mu.Lock()
	if _, ok := s.clients[topic]; !ok {
		s.clients[topic] = make(map[chan Event]bool)
	}
	s.clients[topic][client] = true
	total := len(s.clients[topic])
	s.mu.Unlock()
	log.Info().Msgf("New client registered to topic %s. Total clients: %d", topic, total)
}

// Unregister removes a client channel from a topic and closes it.
func (s *SSEServer) Unregister(topic string, client chan Event) {
	s.mu.Lock()
	if clients, ok := s.clients[topic]; ok {
		if _, registered := clients[client]; registered {
			delete(clients, client)
			close(client)
		}
		if len(clients) == 0 {
			delete(s.clients, topic)
		}
	}
	remaining := len(s.clients[topic])
	s.mu.Unlock()
	log.Info().Msgf("Client unregistered from topic %s. Remaining clients: %d", topic, remaining)
}

// Broadcast queues an event for delivery to all clients of its topic.
func (s *SSEServer) Broadcast(event Event) {
	s.events <- event
}

// Run delivers the event stream. Slow clients are skipped after a short
// timeout rather than blocking the whole topic.
func (s *SSEServer) Run() {
	for event := range s.events {
		// Deliver under the lock so a concurrent Unregister cannot close a
		// channel mid-send.
		s.mu.Lock()
		for client := range s.clients[event.Topic] {
			select {
			case client <- event:
			case <-time.After(100 * time.Millisecond):
				log.Warn().Str("topic", event.Topic).Msg("dropping event for slow client")
			}
		}
		s.mu.Unlock()
	}
}
