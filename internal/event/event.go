package event

import (
	"fmt"
)

// Event represents a push event delivered to clients watching a topic.
type Event struct {
	Topic string      // e.g. "branch:3"
	Type  string      // feed_updated, low_stock_alert, request_resolved
	Data  interface{} // event payload, depends on the type
}

const (
	EventTypeFeedUpdated     = "feed_updated"
	EventTypeLowStockAlert   = "low_stock_alert"
	EventTypeRequestResolved = "request_resolved"
)

// BranchTopic returns the topic clients subscribe to for a branch feed.
func BranchTopic(branchID int64) string {
	return fmt.Sprintf("branch:%d", branchID)
}

// EventSender is the interface for the server pushing events to clients.
type EventSender interface {
	Register(topic string, client chan Event)
	Unregister(topic string, client chan Event)
	Broadcast(event Event)
	Run()
}
