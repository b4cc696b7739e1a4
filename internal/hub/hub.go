// Package hub streams catalog change events to browsers over Server-Sent
// Events.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"realestate/internal/service"
)

// KeepAliveInterval is how often an idle stream gets a comment line
var KeepAliveInterval = 30 * time.Second

// subscriber is one open /events stream. entities restricts delivery to
// those record kinds; empty means everything.
type subscriber struct {
	id       string
	entities map[string]bool
	frames   chan []byte
}

func (s *subscriber) wants(entity string) bool {
	return len(s.entities) == 0 || s.entities[entity]
}

// Hub fans catalog events out to every open stream
type Hub struct {
	mu    sync.RWMutex
	subs  map[*subscriber]struct{}
	join  chan *subscriber
	leave chan *subscriber
	queue chan service.Event
	done  chan struct{}
}

// New creates a hub. Call Run before serving streams.
func New() *Hub {
	return &Hub{
		subs:  make(map[*subscriber]struct{}),
		join:  make(chan *subscriber),
		leave: make(chan *subscriber),
		queue: make(chan service.Event, 256),
		done:  make(chan struct{}),
	}
}

// Run owns the subscriber set. It returns when ctx is cancelled, after
// ending every open stream.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for s := range h.subs {
				delete(h.subs, s)
				close(s.frames)
			}
			h.mu.Unlock()
			return

		case s := <-h.join:
			h.mu.Lock()
			h.subs[s] = struct{}{}
			n := len(h.subs)
			h.mu.Unlock()
			log.Printf("Event stream %s opened (open: %d)", s.id, n)

		case s := <-h.leave:
			h.mu.Lock()
			if _, ok := h.subs[s]; ok {
				delete(h.subs, s)
				close(s.frames)
			}
			n := len(h.subs)
			h.mu.Unlock()
			log.Printf("Event stream %s closed (open: %d)", s.id, n)

		case e := <-h.queue:
			frame, err := encodeFrame(e)
			if err != nil {
				log.Printf("Failed to encode %s event: %v", e.Type, err)
				continue
			}
			h.deliver(e.Entity, frame)
		}
	}
}

func (h *Hub) deliver(entity string, frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		if !s.wants(entity) {
			continue
		}
		select {
		case s.frames <- frame:
		default:
			log.Printf("Event stream %s is behind, dropping frame", s.id)
		}
	}
}

// encodeFrame renders e as one SSE message. The event id doubles as the
// SSE id and the event type names the SSE event.
func encodeFrame(e service.Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("id: %s\nevent: %s\ndata: %s\n\n", e.ID, e.Type, data)), nil
}

// Publish queues e for delivery. A full queue drops the event; callers are
// request handlers and never wait on slow browsers.
func (h *Hub) Publish(e service.Event) {
	select {
	case h.queue <- e:
	default:
		log.Printf("Event queue full, dropping %s", e.Type)
	}
}

// Forward publishes everything received on events until ctx is cancelled
// or the channel is closed
func (h *Hub) Forward(ctx context.Context, events <-chan service.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			h.Publish(e)
		}
	}
}

// Open returns the number of open streams
func (h *Hub) Open() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// ServeHTTP serves GET /events. ?entity=agency,property limits the stream
// to those record kinds.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	s := &subscriber{
		id:       uuid.NewString(),
		entities: parseEntities(r.URL.Query().Get("entity")),
		frames:   make(chan []byte, 64),
	}

	select {
	case h.join <- s:
	case <-h.done:
		http.Error(w, "event stream closed", http.StatusServiceUnavailable)
		return
	case <-r.Context().Done():
		return
	}
	defer func() {
		select {
		case h.leave <- s:
		case <-h.done:
		}
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	// Streams outlive the server's write timeout.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		log.Printf("Event stream %s keeps the server write timeout: %v", s.id, err)
	}

	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ticker := time.NewTicker(KeepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case frame, ok := <-s.frames:
			if !ok {
				return
			}
			if _, err := w.Write(frame); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func parseEntities(v string) map[string]bool {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	out := make(map[string]bool)
	for _, part := range strings.Split(v, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out[p] = true
		}
	}
	return out
}
