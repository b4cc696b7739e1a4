package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType defines the type of event
type EventType string

const (
	EventAgencyCreated   EventType = "agency_created"
	EventAgencyUpdated   EventType = "agency_updated"
	EventAgencyDeleted   EventType = "agency_deleted"
	EventRealtorCreated  EventType = "realtor_created"
	EventRealtorUpdated  EventType = "realtor_updated"
	EventRealtorDeleted  EventType = "realtor_deleted"
	EventPropertyCreated EventType = "property_created"
	EventPropertyUpdated EventType = "property_updated"
	EventPropertyDeleted EventType = "property_deleted"
	EventCatalogImported EventType = "catalog_imported"
)

// Event represents a change to the catalog
type Event struct {
	ID       string    `json:"id"`
	Type     EventType `json:"type"`
	Entity   string    `json:"entity"`
	RecordID int64     `json:"record_id,omitempty"`
	Time     time.Time `json:"time"`
}

// NewEvent stamps an event with a fresh id and the current time
func NewEvent(t EventType, entity string, recordID int64) Event {
	return Event{
		ID:       uuid.NewString(),
		Type:     t,
		Entity:   entity,
		RecordID: recordID,
		Time:     time.Now().UTC(),
	}
}

// EventBus allows publishing and subscribing to events
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers = append(eb.subscribers, ch)
}

// Unsubscribe removes a subscriber. The channel is not closed.
func (eb *EventBus) Unsubscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	for i, sub := range eb.subscribers {
		if sub == ch {
			eb.subscribers = append(eb.subscribers[:i], eb.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers. A nil bus drops the event.
func (eb *EventBus) Publish(event Event) {
	if eb == nil {
		return
	}
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
		}
	}
}
